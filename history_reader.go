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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// HistoryEvent is one command execution pulled out of a shell history
// file. Events without a recorded timestamp are kept but cannot be
// placed on the timeline.
type HistoryEvent struct {
	Command   string
	Timestamp *time.Time
}

// parseZshHistory reads zsh extended-history lines of the form
// ": 1673291850:0;ls -la". Lines without the metadata prefix are
// treated as plain untimestamped commands.
func parseZshHistory(r io.Reader) ([]HistoryEvent, error) {
	var events []HistoryEvent

	scanner := bufio.NewScanner(r)
	// Large buffer: multi-line commands produce long history lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ": ") {
			events = append(events, HistoryEvent{Command: line})
			continue
		}

		// ": epoch:elapsed;command" -> ["", " epoch", "elapsed;command"]
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 3 {
			continue
		}

		epoch, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			events = append(events, HistoryEvent{Command: line})
			continue
		}
		t := time.Unix(epoch, 0)

		subParts := strings.SplitN(parts[2], ";", 2)
		if len(subParts) < 2 {
			events = append(events, HistoryEvent{Timestamp: &t})
			continue
		}
		events = append(events, HistoryEvent{Timestamp: &t, Command: subParts[1]})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// parseBashHistory reads bash history where a "#epoch" line (written
// when HISTTIMEFORMAT is set) precedes each command line.
func parseBashHistory(r io.Reader) ([]HistoryEvent, error) {
	var events []HistoryEvent
	var lastTimestamp *time.Time

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "#") {
			epochStr := strings.TrimSpace(strings.TrimPrefix(line, "#"))
			if epoch, err := strconv.ParseInt(epochStr, 10, 64); err == nil {
				t := time.Unix(epoch, 0)
				lastTimestamp = &t
			} else {
				lastTimestamp = nil
			}
			continue
		}

		events = append(events, HistoryEvent{
			Command:   line,
			Timestamp: lastTimestamp,
		})
		// One timestamp line covers one command
		lastTimestamp = nil
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func historyFilePath(shell string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch shell {
	case "zsh":
		return filepath.Join(homeDir, ".zsh_history"), nil
	case "bash":
		return filepath.Join(homeDir, ".bash_history"), nil
	default:
		return "", fmt.Errorf("unknown shell %q: only zsh and bash histories are supported", shell)
	}
}

// detectCurrentShell detects the type of Unix shell: bash, zsh etc.
func detectCurrentShell() string {
	currentShellPath, ok := os.LookupEnv("SHELL")
	if !ok {
		// Default to bash when SHELL is not set
		return "bash"
	}
	return filepath.Base(currentShellPath)
}

// readShellHistory opens and parses the history file for the given
// shell ("" means autodetect from $SHELL).
func readShellHistory(shell string) ([]HistoryEvent, error) {
	if shell == "" {
		shell = detectCurrentShell()
	}

	path, err := historyFilePath(shell)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s history file not found: run some commands to create %s, then try again", shell, path)
		}
		return nil, err
	}
	defer file.Close()

	switch shell {
	case "zsh":
		return parseZshHistory(file)
	default:
		return parseBashHistory(file)
	}
}
