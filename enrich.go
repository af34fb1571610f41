package ecobici

import (
	"strconv"

	"github.com/lab-movilidad/ecobici/dataset"
)

// Derived column names added by enrichUsers, in header order.
var enrichedColumns = []string{
	"genero", "mes_nombre", "hora", "momento_dia", "dia_semana", "rango_etario",
}

// generoLabel maps the two known source values, case-sensitive. Anything
// else (unknowns, empty values, other categories) is "Otro".
func generoLabel(src string) string {
	switch src {
	case "MALE":
		return "Masculino"
	case "FEMALE":
		return "Femenino"
	default:
		return "Otro"
	}
}

// rangoEtario buckets an age into one of 10 ordered labels. The numeric
// prefix makes the labels sort correctly as text. Boundaries are half-open
// [prev, next); ages below 15, including negatives, land in the first
// bucket and 55 and above in the last.
func rangoEtario(edad int) string {
	switch {
	case edad < 15:
		return "1. Menores de 15"
	case edad < 20:
		return "2. 15 a 20"
	case edad < 25:
		return "3. 20 a 25"
	case edad < 30:
		return "4. 25 a 30"
	case edad < 35:
		return "5. 30 a 35"
	case edad < 40:
		return "6. 35 a 40"
	case edad < 45:
		return "7. 40 a 45"
	case edad < 50:
		return "8. 45 a 50"
	case edad < 55:
		return "9. 50 a 55"
	default:
		return "10. Mayores de 55"
	}
}

// momentoDia buckets an hour of day into the four time-of-day labels.
func momentoDia(hora int) string {
	switch {
	case hora >= 0 && hora <= 5:
		return "Madrugada"
	case hora <= 11:
		return "Mañana"
	case hora <= 18:
		return "Tarde"
	case hora <= 23:
		return "Noche"
	default:
		return ""
	}
}

// enrichUsers computes the six derived columns on every row. The fields
// are independent except momento_dia, which uses the hora computed in the
// same pass. Unparseable source values leave the derived value empty for
// that row only.
func enrichUsers(ds *dataset.Dataset) error {
	if err := ds.RequireColumns("genero_usuario", "edad_usuario", "fecha_alta", "hora_alta"); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		row["genero"] = generoLabel(row["genero_usuario"])

		if alta, err := parseDateLoose(row["fecha_alta"]); err == nil {
			row["mes_nombre"] = mesNombre(alta.Month())
			row["dia_semana"] = diaSemana(alta.Weekday())
		} else {
			row["mes_nombre"] = ""
			row["dia_semana"] = ""
		}

		if h, ok := parseHour(row["hora_alta"]); ok {
			row["hora"] = strconv.Itoa(h)
			row["momento_dia"] = momentoDia(h)
		} else {
			row["hora"] = ""
			row["momento_dia"] = ""
		}

		if edad, err := strconv.Atoi(row["edad_usuario"]); err == nil {
			row["rango_etario"] = rangoEtario(edad)
		} else {
			row["rango_etario"] = ""
		}
	}
	ds.AddColumns(enrichedColumns...)
	return nil
}
