package main

import (
	"testing"
	"time"
)

func TestParseWhen(t *testing.T) {
	loc := time.Local
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, loc)

	testCases := []struct {
		Name    string
		Input   string
		Want    time.Time
		WantErr bool
	}{
		{Name: "Now", Input: "now", Want: now},
		{Name: "Epoch Seconds", Input: "1673291850", Want: time.Unix(1673291850, 0)},
		{Name: "Full DateTime", Input: "2026-08-28 09:15", Want: time.Date(2026, 8, 28, 9, 15, 0, 0, loc)},
		{Name: "DateTime With Seconds", Input: "2026-08-28 09:15:30", Want: time.Date(2026, 8, 28, 9, 15, 30, 0, loc)},
		{Name: "Date Only", Input: "2026-08-01", Want: time.Date(2026, 8, 1, 0, 0, 0, 0, loc)},
		{Name: "Clock Time Means Today", Input: "09:15", Want: time.Date(2026, 8, 28, 9, 15, 0, 0, loc)},
		{Name: "Negative Duration", Input: "-2h", Want: now.Add(-2 * time.Hour)},
		{Name: "Duration Ago", Input: "90m ago", Want: now.Add(-90 * time.Minute)},
		{Name: "Empty", Input: "", WantErr: true},
		{Name: "Garbage", Input: "next thursday-ish", WantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := ParseWhen(tc.Input, now)
			if tc.WantErr {
				if err == nil {
					t.Errorf("ParseWhen(%q) succeeded with %v; want error", tc.Input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWhen(%q): %v", tc.Input, err)
			}
			if !got.Equal(tc.Want) {
				t.Errorf("ParseWhen(%q) = %v; want %v", tc.Input, got, tc.Want)
			}
		})
	}
}

func TestHumanizeSince(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

	testCases := []struct {
		Name  string
		Epoch int64
		Want  string
	}{
		{Name: "Just Now", Epoch: now.Add(-10 * time.Second).Unix(), Want: "just now"},
		{Name: "Minutes", Epoch: now.Add(-5 * time.Minute).Unix(), Want: "5m ago"},
		{Name: "Hours", Epoch: now.Add(-3 * time.Hour).Unix(), Want: "3h ago"},
		{Name: "Days", Epoch: now.Add(-49 * time.Hour).Unix(), Want: "2d ago"},
		{Name: "Future", Epoch: now.Add(time.Hour).Unix(), Want: "in the future"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := HumanizeSince(tc.Epoch, now); got != tc.Want {
				t.Errorf("HumanizeSince = %q; want %q", got, tc.Want)
			}
		})
	}
}
