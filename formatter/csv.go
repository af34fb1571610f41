package formatter

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	ecobici "github.com/lab-movilidad/ecobici"
	"github.com/lab-movilidad/ecobici/dataset"
)

// BuildCSV serializes a dataset back to CSV, header first, preserving the
// normalized column order.
func BuildCSV(ds *dataset.Dataset) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(ds.Columns)
	rec := make([]string, len(ds.Columns))
	for _, row := range ds.Rows {
		for i, col := range ds.Columns {
			rec[i] = row[col]
		}
		_ = w.Write(rec)
	}
	w.Flush()
	return buf.Bytes()
}

var tripHeader = []string{
	"id_usuario", "fecha_origen", "fecha_destino", "duracion_segundos",
	"dia_label", "long_estacion_origen", "long_estacion_destino",
}

// BuildTripsCSV serializes trip records with the fixed projection header.
// Nil timestamps and durations render as empty fields.
func BuildTripsCSV(records []ecobici.TripRecord) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(tripHeader)
	for _, r := range records {
		rec := []string{
			r.IDUsuario,
			formatTime(r.FechaOrigen),
			formatTime(r.FechaDestino),
			formatDuration(r.DuracionSegundos),
			r.DiaLabel,
			strconv.FormatFloat(r.LongEstacionOrigen, 'f', -1, 64),
			strconv.FormatFloat(r.LongEstacionDestino, 'f', -1, 64),
		}
		_ = w.Write(rec)
	}
	w.Flush()
	return buf.Bytes()
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatDuration(d *int64) string {
	if d == nil {
		return ""
	}
	return strconv.FormatInt(*d, 10)
}
