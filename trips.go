package ecobici

import (
	"fmt"
	"strconv"
	"time"
)

// TripRecord is the fixed projection returned by FetchTrips. Timestamp
// fields are nil when the source value did not match the expected layout;
// DuracionSegundos is nil whenever either end is missing.
type TripRecord struct {
	IDUsuario           string     `json:"id_usuario"`
	FechaOrigen         *time.Time `json:"fecha_origen"`
	FechaDestino        *time.Time `json:"fecha_destino"`
	DuracionSegundos    *int64     `json:"duracion_segundos"`
	DiaLabel            string     `json:"dia_label"`
	LongEstacionOrigen  float64    `json:"long_estacion_origen"`
	LongEstacionDestino float64    `json:"long_estacion_destino"`
}

// FetchTrips downloads the trip-history archive for a year, extracts its
// CSV, and returns the records whose origin timestamp falls in the given
// calendar month. Unlike FetchUsers, month is mandatory here.
func (f *Fetcher) FetchTrips(year, month int) ([]TripRecord, error) {
	url := fmt.Sprintf("%s/recorridos-realizados-%d.zip", f.baseURL, year)
	ds, err := f.loadCSVFromZip(url)
	if err != nil {
		return nil, err
	}
	ds.NormalizeColumns()

	if err := ds.RequireColumns(
		"id_usuario",
		"fecha_origen_recorrido",
		"fecha_destino_recorrido",
		"long_estacion_origen",
		"long_estacion_destino",
	); err != nil {
		return nil, err
	}

	records := make([]TripRecord, 0, ds.Len())
	for _, row := range ds.Rows {
		origen := parseTripTime(row["fecha_origen_recorrido"])
		if origen == nil || int(origen.Month()) != month {
			continue
		}
		destino := parseTripTime(row["fecha_destino_recorrido"])

		var duracion *int64
		if destino != nil {
			d := int64(destino.Sub(*origen) / time.Second)
			duracion = &d
		}

		longOrigen, _ := strconv.ParseFloat(row["long_estacion_origen"], 64)
		longDestino, _ := strconv.ParseFloat(row["long_estacion_destino"], 64)

		records = append(records, TripRecord{
			IDUsuario:           row["id_usuario"],
			FechaOrigen:         origen,
			FechaDestino:        destino,
			DuracionSegundos:    duracion,
			DiaLabel:            diaSemana(origen.Weekday()),
			LongEstacionOrigen:  longOrigen,
			LongEstacionDestino: longDestino,
		})
	}
	return records, nil
}
