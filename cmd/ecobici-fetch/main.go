package main

import (
	"flag"
	"fmt"
	"os"

	ecobici "github.com/lab-movilidad/ecobici"
	"github.com/lab-movilidad/ecobici/config"
	"github.com/lab-movilidad/ecobici/formatter"
)

func main() {
	ds := flag.String("dataset", "users", "users|trips")
	year := flag.Int("year", 0, "publication year of the dataset")
	month := flag.Int("month", 0, "calendar month filter 1-12 (users: 0 = whole year; trips: required)")
	enrich := flag.Bool("enrich", false, "derive categorical columns (users only)")
	format := flag.String("format", "", "json|csv (overrides config)")
	baseURL := flag.String("baseURL", "", "open-data endpoint (overrides config)")
	flag.Parse()

	ecobici.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}

	cfg := config.Config.Source
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	out := config.Config.Output.Format
	if *format != "" {
		out = *format
	}
	if *year == 0 {
		fmt.Fprintln(os.Stderr, "-year is required")
		os.Exit(2)
	}

	f := ecobici.NewFetcher(cfg)

	switch *ds {
	case "users":
		users, err := f.FetchUsers(*year, *month, *enrich)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if out == "csv" {
			os.Stdout.Write(formatter.BuildCSV(users))
		} else {
			os.Stdout.Write(formatter.BuildJSON(users.Rows))
			fmt.Println()
		}
	case "trips":
		if *month < 1 || *month > 12 {
			fmt.Fprintln(os.Stderr, "-month 1-12 is required for trips")
			os.Exit(2)
		}
		trips, err := f.FetchTrips(*year, *month)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if out == "csv" {
			os.Stdout.Write(formatter.BuildTripsCSV(trips))
		} else {
			os.Stdout.Write(formatter.BuildJSON(trips))
			fmt.Println()
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown dataset %q\n", *ds)
		os.Exit(2)
	}
}
