package ecobici

import "time"

// The source datasets render month and weekday names in Spanish. The
// tables are pinned here so output never depends on the ambient system
// locale.

var mesesES = [...]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

var diasES = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
}

func mesNombre(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return mesesES[m]
}

func diaSemana(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return diasES[d]
}
