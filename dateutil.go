// Copyright 2026 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// dateutil.go
// Time parsing and formatting helpers for timeline queries.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Accepted absolute layouts for user-supplied moments, most specific
// first.
var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseWhen turns a user-supplied point in time into a time.Time.
// Accepted forms:
//
//	1673291850            raw unix epoch seconds
//	2026-08-28 15:04      local date/time (seconds optional)
//	2026-08-28            midnight local time
//	15:04                 that time today
//	2h ago / -2h          relative to now
func ParseWhen(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time specification")
	}
	if s == "now" {
		return now, nil
	}

	// Raw epoch seconds
	if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(epoch, 0), nil
	}

	// Relative: "-90m", "2h ago"
	rel := s
	ago := strings.HasSuffix(rel, " ago")
	rel = strings.TrimSuffix(rel, " ago")
	if d, err := time.ParseDuration(rel); err == nil {
		if ago && d > 0 {
			d = -d
		}
		return now.Add(d), nil
	}

	// Bare clock time means today
	if t, err := time.ParseInLocation("15:04", s, now.Location()); err == nil {
		return time.Date(now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), 0, 0, now.Location()), nil
	}
	if t, err := time.ParseInLocation("15:04:05", s, now.Location()); err == nil {
		return time.Date(now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, now.Location()), nil
	}

	for _, layout := range whenLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse time %q (try an epoch, \"2006-01-02 15:04\", \"15:04\" or \"2h ago\")", s)
}

// FormatEpoch renders a recorded second for display.
func FormatEpoch(epoch int64) string {
	return time.Unix(epoch, 0).Format("Mon, 02 Jan 2006 15:04:05")
}

// FormatEpochShort is the compact list-row form.
func FormatEpochShort(epoch int64) string {
	return time.Unix(epoch, 0).Format("2006-01-02 15:04:05")
}

// HumanizeSince describes how long ago a recorded second was, roughly.
func HumanizeSince(epoch int64, now time.Time) string {
	d := now.Sub(time.Unix(epoch, 0))
	switch {
	case d < 0:
		return "in the future"
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
