package ecobici

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/lab-movilidad/ecobici/config"
	"github.com/lab-movilidad/ecobici/dataset"
)

// Fetcher downloads and prepares the yearly Ecobici datasets. It holds no
// state between calls; two Fetchers with the same configuration are
// interchangeable.
type Fetcher struct {
	baseURL        string
	httpClient     *http.Client
	archiveTimeout time.Duration
}

// NewFetcher creates a Fetcher for the configured source.
func NewFetcher(cfg config.SourceConfig) *Fetcher {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if cfg.TimeoutMS == 0 {
		timeout = config.DefaultTimeoutMS * time.Millisecond
	}
	archiveTimeout := time.Duration(cfg.ArchiveTimeoutMS) * time.Millisecond
	if cfg.ArchiveTimeoutMS == 0 {
		archiveTimeout = config.DefaultArchiveTimeoutMS * time.Millisecond
	}
	return &Fetcher{
		baseURL:        baseURL,
		httpClient:     &http.Client{Timeout: timeout},
		archiveTimeout: archiveTimeout,
	}
}

// FetchUsers downloads the user registry for a year and returns it with
// normalized column names. month filters rows by the calendar month of
// fecha_alta; 0 keeps the whole year. enrich adds the derived categorical
// columns (genero, mes_nombre, hora, momento_dia, dia_semana,
// rango_etario).
//
// The year is not range-checked: an unpublished year simply fails the
// download and surfaces as a *DownloadError.
func (f *Fetcher) FetchUsers(year, month int, enrich bool) (*dataset.Dataset, error) {
	url := fmt.Sprintf("%s/usuarios_ecobici_%d.csv", f.baseURL, year)
	log.Printf("downloading user registry from %s", url)

	resp, err := f.httpClient.Get(url)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, &DownloadError{URL: url, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	ds, err := dataset.FromCSV(resp.Body)
	if err != nil {
		return nil, &DownloadError{URL: url, Err: err}
	}
	ds.NormalizeColumns()

	if month != 0 {
		if err := ds.RequireColumns("fecha_alta"); err != nil {
			return nil, err
		}
		ds = ds.Filter(func(row dataset.Row) bool {
			alta, err := parseDateLoose(row["fecha_alta"])
			return err == nil && int(alta.Month()) == month
		})
	}

	if enrich {
		if err := enrichUsers(ds); err != nil {
			return nil, err
		}
	}
	return ds, nil
}
