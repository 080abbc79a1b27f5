// command_help.go

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
	"os"
	"os/exec"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
)

// getCommandHelp retrieves help text for a command the user once ran,
// so the TUI detail pane can show documentation next to the timeline.
// Git gets special handling because its help lives under subcommands.
func getCommandHelp(cmdParts []string) (string, error) {
	if len(cmdParts) == 0 {
		return "", fmt.Errorf("no command provided")
	}

	baseCmd := cmdParts[0]
	fullCmdName := strings.Join(cmdParts, " ")

	runCmd := func(name string, args ...string) (string, error) {
		out, err := exec.Command(name, args...).CombinedOutput()
		return string(out), err
	}

	if baseCmd == "git" && len(cmdParts) >= 2 {
		subCmd := cmdParts[1]
		helpCmd := exec.Command("git", "help", subCmd)
		helpCmd.Env = append(os.Environ(), "GIT_PAGER=cat")
		if out, err := helpCmd.CombinedOutput(); err == nil {
			return string(out), nil
		}
		if out, err := runCmd("git", subCmd, "--help"); err == nil {
			return out, nil
		}
		return "", fmt.Errorf("failed to get help for command %q", fullCmdName)
	}

	if out, err := runCmd(baseCmd, "--help"); err == nil {
		return out, nil
	}
	if out, err := runCmd(baseCmd, "-h"); err == nil {
		return out, nil
	}
	// Last resort: the man page with the pager forced off
	manCmd := exec.Command("man", baseCmd)
	manCmd.Env = append(os.Environ(), "MANPAGER=cat", "PAGER=cat")
	if out, err := manCmd.CombinedOutput(); err == nil {
		return string(out), nil
	}

	return "", fmt.Errorf("no help found for command %q", fullCmdName)
}

// splitCommand splits a full command string into shell words.
func splitCommand(fullCmd string) ([]string, error) {
	args, err := shellwords.Parse(fullCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", fullCmd, err)
	}
	return args, nil
}

// helpFor fetches (or replays from cache) help text for a command.
func helpFor(c *cache.Cache, command string) string {
	if cached := GetRendered(c, "help:"+command); cached != "" {
		return cached
	}

	parts, err := splitCommand(command)
	if err != nil {
		return ""
	}
	helpTxt, err := getCommandHelp(parts)
	if err != nil {
		helpTxt = fmt.Sprintf("No documentation found.\n%s", err.Error())
	}
	CacheRendered(c, "help:"+command, helpTxt)
	return helpTxt
}
