package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"full timestamp", "2026-05-01T14:30:00", time.Date(2026, 5, 1, 14, 30, 0, 0, time.UTC), false},
		{"bare day", "2026-05-01", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"garbage", "tomorrow", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDateTime(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestDateMarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2026, 5, 1, 14, 30, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(b) != `"2026-05-01"` {
		t.Errorf(`Expected "2026-05-01", got %s`, b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	d := DateTime{time.Date(2026, 5, 1, 14, 30, 5, 0, time.UTC)}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(b) != `"2026-05-01T14:30:05"` {
		t.Errorf(`Expected "2026-05-01T14:30:05", got %s`, b)
	}
}
