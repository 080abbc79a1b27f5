// report.go

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

package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
)

type programCount struct {
	Program string
	Count   int
}

// buildActivityReport summarizes a timeline as markdown: overall span,
// busiest hours of the day, and the most-run programs. It only talks
// to the timeline's query surface, never to tree internals.
func buildActivityReport(tl *Timeline, topPrograms int) string {
	var b strings.Builder

	b.WriteString("# Shell activity report\n\n")

	first, last, ok := tl.Span()
	if !ok {
		b.WriteString("No timestamped history found. ")
		b.WriteString("Enable extended history (zsh) or HISTTIMEFORMAT (bash) and try again.\n")
		return b.String()
	}

	totalCommands := 0
	hourly := [24]int{}
	for _, tm := range tl.All() {
		n := len(tm.Moment.Commands)
		totalCommands += n
		hourly[time.Unix(tm.Epoch, 0).Hour()] += n
	}

	fmt.Fprintf(&b, "- First recorded command: **%s**\n", FormatEpoch(first))
	fmt.Fprintf(&b, "- Last recorded command: **%s**\n", FormatEpoch(last))
	fmt.Fprintf(&b, "- Active moments (distinct seconds): **%d**\n", tl.Moments())
	fmt.Fprintf(&b, "- Commands on the timeline: **%d**\n", totalCommands)
	if tl.Skipped() > 0 {
		fmt.Fprintf(&b, "- Commands without timestamps (not placed): %d\n", tl.Skipped())
	}
	b.WriteString("\n")

	b.WriteString("## Busiest hours\n\n")
	b.WriteString("| Hour | Commands |\n|---|---|\n")
	type hourCount struct{ hour, count int }
	busiest := make([]hourCount, 0, 24)
	for h, c := range hourly {
		if c > 0 {
			busiest = append(busiest, hourCount{h, c})
		}
	}
	sort.Slice(busiest, func(i, j int) bool { return busiest[i].count > busiest[j].count })
	if len(busiest) > 5 {
		busiest = busiest[:5]
	}
	for _, hc := range busiest {
		fmt.Fprintf(&b, "| %02d:00–%02d:59 | %d |\n", hc.hour, hc.hour, hc.count)
	}
	b.WriteString("\n")

	b.WriteString("## Top programs\n\n")
	b.WriteString("| Program | Runs |\n|---|---|\n")
	for _, pc := range topProgramCounts(tl.ProgramCounts(), topPrograms) {
		fmt.Fprintf(&b, "| `%s` | %d |\n", pc.Program, pc.Count)
	}

	return b.String()
}

// topProgramCounts sorts program totals descending, ties broken by
// name for stable output.
func topProgramCounts(counts map[string]int, limit int) []programCount {
	out := make([]programCount, 0, len(counts))
	for prog, count := range counts {
		out = append(out, programCount{Program: prog, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Program < out[j].Program
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// renderActivityReport renders the markdown report for the terminal.
func renderActivityReport(tl *Timeline, topPrograms int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(buildActivityReport(tl, topPrograms))
}
