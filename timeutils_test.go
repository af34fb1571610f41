package ecobici

import (
	"testing"
	"time"
)

func TestParseTripTime(t *testing.T) {
	got := parseTripTime("2024-03-05 08:10:00")
	if got == nil {
		t.Fatal("expected parsed timestamp")
	}
	want := time.Date(2024, time.March, 5, 8, 10, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parsed %v, want %v", got, want)
	}

	for _, bad := range []string{"", "2024-03-05", "05/03/2024 08:10:00", "not a date"} {
		if parseTripTime(bad) != nil {
			t.Errorf("parseTripTime(%q) should be nil", bad)
		}
	}
}

func TestParseDateLoose(t *testing.T) {
	tests := []struct {
		in        string
		wantMonth time.Month
		wantErr   bool
	}{
		{"2024-06-10", time.June, false},
		{"2023-12-01 09:30:00", time.December, false},
		{"10/06/2024", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseDateLoose(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDateLoose(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDateLoose(%q): %v", tt.in, err)
			continue
		}
		if got.Month() != tt.wantMonth {
			t.Errorf("parseDateLoose(%q) month = %v, want %v", tt.in, got.Month(), tt.wantMonth)
		}
	}
}

func TestParseHour(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"14:30:00", 14, true},
		{"00:00:00", 0, true},
		{"23:59:59", 23, true},
		{"7", 7, true},
		{"24", 0, false},
		{"", 0, false},
		{"later", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseHour(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("parseHour(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
