package monitor

import (
	"testing"
	"time"
)

func TestHoursGate(t *testing.T) {
	gate := HoursGate(time.UTC, 7, 12, 19)

	tests := []struct {
		hour int
		want bool
	}{
		{6, false},
		{7, true},
		{12, true},
		{13, false},
		{19, true},
		{23, false},
	}

	for _, tt := range tests {
		ts := time.Date(2026, time.July, 4, tt.hour, 30, 0, 0, time.UTC)
		if got := gate(ts); got != tt.want {
			t.Errorf("gate at hour %d = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestHourRangeGate(t *testing.T) {
	gate := HourRangeGate(time.UTC, 6, 23)

	tests := []struct {
		hour int
		want bool
	}{
		{0, false},
		{5, false},
		{6, true},
		{14, true},
		{23, true},
	}

	for _, tt := range tests {
		ts := time.Date(2026, time.July, 4, tt.hour, 0, 0, 0, time.UTC)
		if got := gate(ts); got != tt.want {
			t.Errorf("gate at hour %d = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestHoursGateConvertsTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Vancouver")
	if err != nil {
		t.Fatalf("loading timezone: %v", err)
	}

	gate := HoursGate(loc, 7)

	// 14:00 UTC in July is 07:00 Pacific.
	ts := time.Date(2026, time.July, 4, 14, 0, 0, 0, time.UTC)
	if !gate(ts) {
		t.Error("gate should evaluate the hour in the configured timezone")
	}
}

func TestAlwaysNever(t *testing.T) {
	now := time.Now()
	if !Always(now) {
		t.Error("Always should admit any timestamp")
	}
	if Never(now) {
		t.Error("Never should reject any timestamp")
	}
}
