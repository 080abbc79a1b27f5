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
	"log"
	"time"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func loadTimeline() (*Timeline, *Config) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = &defaultConfig
	}

	events, err := readShellHistory(config.History.Shell)
	if err != nil {
		log.Fatalf("Error reading history: %v", err)
	}
	return NewTimeline(events, config.History.ShowProgress), config
}

func printMoment(tm TimedMoment) {
	fmt.Printf("%s\n", FormatEpoch(tm.Epoch))
	for _, cmd := range tm.Moment.Commands {
		fmt.Printf("  $ %s\n", cmd)
	}
}

func main() {
	asciiLogo := `
██████╗ ███████╗████████╗██████╗  █████╗  ██████╗███████╗
██╔══██╗██╔════╝╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██╔════╝
██████╔╝█████╗     ██║   ██████╔╝███████║██║     █████╗
██╔══██╗██╔══╝     ██║   ██╔══██╗██╔══██║██║     ██╔══╝
██║  ██║███████╗   ██║   ██║  ██║██║  ██║╚██████╗███████╗
╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚══════╝
When did I run what? Walk your shell history as a timeline [Version: %s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, version)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launch the interactive timeline browser",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Run opens the retrace TUI: jump to a moment, inspect, copy or re-run."),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			tl, _ := loadTimeline()
			renderCache := NewRenderCache()

			selected, err := runTUI(tl, renderCache)
			if err != nil {
				log.Fatalf("Error running UI: %v", err)
			}
			if selected != "" {
				fmt.Printf("$ %s\n", selected)
				if err := rerunInPTY(selected); err != nil {
					log.Printf("Command finished with error: %v", err)
				}
			}
		},
	}

	var cmdAt = &cobra.Command{
		Use:   "at <when>",
		Short: "Show what ran closest to a moment",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `At accepts "15:04", "2026-08-28 09:00", "2h ago" or raw epoch seconds.`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			when, err := ParseWhen(args[0], time.Now())
			if err != nil {
				log.Fatalf("%v", err)
			}

			tl, _ := loadTimeline()
			epoch, moment, ok := tl.ClosestTo(when)
			if !ok {
				fmt.Println("No timestamped history recorded yet.")
				return
			}
			printMoment(TimedMoment{Epoch: epoch, Moment: moment})

			if before, ok := tl.JustBefore(time.Unix(epoch, 0)); ok {
				fmt.Printf("\nBefore that (%s):\n", HumanizeSince(before.Epoch, time.Now()))
				printMoment(before)
			}
			if after, ok := tl.JustAfter(time.Unix(epoch, 0)); ok {
				fmt.Printf("\nAfter that (%s):\n", HumanizeSince(after.Epoch, time.Now()))
				printMoment(after)
			}
		},
	}

	var cmdBetween = &cobra.Command{
		Use:   "between <from> <to>",
		Short: "List everything that ran inside a time window",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			now := time.Now()
			from, err := ParseWhen(args[0], now)
			if err != nil {
				log.Fatalf("%v", err)
			}
			to, err := ParseWhen(args[1], now)
			if err != nil {
				log.Fatalf("%v", err)
			}

			tl, _ := loadTimeline()
			moments := tl.Between(from, to)
			if len(moments) == 0 {
				fmt.Println("Nothing ran in that window.")
				return
			}
			for _, tm := range moments {
				printMoment(tm)
			}
			fmt.Printf("\n%d commands across %d moments\n", tl.CountBetween(from, to), len(moments))
		},
	}

	var cmdNth = &cobra.Command{
		Use:   "nth <n>",
		Short: "Show the n-th earliest (or latest) recorded moment",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var n int
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
				log.Fatalf("not a number: %q", args[0])
			}

			tl, _ := loadTimeline()
			latest, _ := cmd.Flags().GetBool("latest")

			var tm TimedMoment
			var ok bool
			if latest {
				tm, ok = tl.NthLatest(n)
			} else {
				tm, ok = tl.NthEarliest(n)
			}
			if !ok {
				fmt.Printf("Only %d moments recorded.\n", tl.Moments())
				return
			}
			printMoment(tm)
		},
	}
	cmdNth.Flags().Bool("latest", false, "count from the most recent end")

	var cmdRan = &cobra.Command{
		Use:   "ran <command>",
		Short: "Check whether a command or program ever ran",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			tl, _ := loadTimeline()
			if tl.Ran(args[0]) {
				fmt.Printf("yes: %q is in your history\n", args[0])
			} else {
				fmt.Printf("no trace of %q\n", args[0])
			}
		},
	}

	var cmdReport = &cobra.Command{
		Use:   "report",
		Short: "Render a shell activity report",
		Run: func(cmd *cobra.Command, args []string) {
			tl, config := loadTimeline()
			out, err := renderActivityReport(tl, config.Report.TopPrograms)
			if err != nil {
				// Fall back to the raw markdown when the terminal
				// cannot be styled
				out = buildActivityReport(tl, config.Report.TopPrograms)
			}
			fmt.Println(out)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show (and initialize) the retrace configuration",
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print retrace version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "retrace",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the TUI when no subcommand is provided
			cmdRun.Run(cmd, args)
		},
	}
	rootCmd.AddCommand(cmdRun, cmdAt, cmdBetween, cmdNth, cmdRan, cmdReport, cmdSettings, cmdVersion)
	rootCmd.Execute()
}
