package dataset

import (
	"errors"
	"strings"
	"testing"
)

func TestFromCSV(t *testing.T) {
	in := "a,b,c\n1,2,3\n4,5,6\n"
	ds, err := FromCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("FromCSV failed: %v", err)
	}
	if got, want := len(ds.Columns), 3; got != want {
		t.Errorf("columns = %d, want %d", got, want)
	}
	if got, want := ds.Len(), 2; got != want {
		t.Errorf("rows = %d, want %d", got, want)
	}
	if ds.Rows[1]["c"] != "6" {
		t.Errorf("row[1][c] = %q, want %q", ds.Rows[1]["c"], "6")
	}
}

func TestFromCSV_Empty(t *testing.T) {
	if _, err := FromCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestNormalizeColumnName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fecha_Alta", "fecha_alta"},
		{"GENERO USUARIO", "genero_usuario"},
		{"edad--usuario", "edad_usuario"},
		{"Long. Estacion Origen", "long_estacion_origen"},
		{"  hora_alta  ", "hora_alta"},
		{"ID_Usuario", "id_usuario"},
		{"fecha_origen_recorrido", "fecha_origen_recorrido"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeColumnName(tt.in); got != tt.want {
				t.Errorf("NormalizeColumnName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeColumns_RekeysRows(t *testing.T) {
	in := "ID_Usuario,Fecha Alta\n7,2024-06-10\n"
	ds, err := FromCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("FromCSV failed: %v", err)
	}
	ds.NormalizeColumns()

	if ds.Columns[0] != "id_usuario" || ds.Columns[1] != "fecha_alta" {
		t.Errorf("columns = %v", ds.Columns)
	}
	if ds.Rows[0]["id_usuario"] != "7" {
		t.Errorf("row not re-keyed: %v", ds.Rows[0])
	}
	if _, ok := ds.Rows[0]["ID_Usuario"]; ok {
		t.Error("stale raw key left in row")
	}
}

func TestRequireColumns(t *testing.T) {
	ds := &Dataset{Columns: []string{"fecha_alta", "edad_usuario"}}

	if err := ds.RequireColumns("fecha_alta"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := ds.RequireColumns("fecha_alta", "genero_usuario")
	var cnf *ColumnNotFoundError
	if !errors.As(err, &cnf) {
		t.Fatalf("expected *ColumnNotFoundError, got %v", err)
	}
	if cnf.Column != "genero_usuario" {
		t.Errorf("Column = %q, want %q", cnf.Column, "genero_usuario")
	}
}

func TestFilter(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"v"},
		Rows:    []Row{{"v": "1"}, {"v": "2"}, {"v": "1"}},
	}
	got := ds.Filter(func(r Row) bool { return r["v"] == "1" })
	if got.Len() != 2 {
		t.Errorf("filtered rows = %d, want 2", got.Len())
	}
	if ds.Len() != 3 {
		t.Errorf("receiver mutated: rows = %d", ds.Len())
	}
}

func TestProject(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"a", "b", "c"},
		Rows:    []Row{{"a": "1", "b": "2", "c": "3"}},
	}
	got, err := ds.Project("c", "a")
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if len(got.Columns) != 2 || got.Columns[0] != "c" {
		t.Errorf("columns = %v", got.Columns)
	}
	if _, ok := got.Rows[0]["b"]; ok {
		t.Error("dropped column survived projection")
	}

	if _, err := ds.Project("missing"); err == nil {
		t.Error("expected error for missing column")
	}
}
