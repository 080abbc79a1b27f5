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
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
)

// rerunInPTY replays a historical command in a pseudo-terminal so
// interactive programs behave the way they did the first time around.
// The child's exit error (if any) comes back to the caller; this
// function never terminates the process itself.
func rerunInPTY(command string) error {
	cmd := exec.Command("sh", "-c", command)

	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start PTY: %w", err)
	}
	defer ptyFile.Close()

	// Forward SIGINT/SIGTERM to the child's process group for as long
	// as it runs.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(sigChan)
		close(sigChan)
	}()
	go func() {
		for sig := range sigChan {
			if cmd.Process == nil {
				continue
			}
			err := syscall.Kill(-cmd.Process.Pid, sig.(syscall.Signal))
			if err != nil && err != syscall.ESRCH && err != syscall.EPERM {
				fmt.Fprintf(os.Stderr, "failed to forward signal %v: %v\n", sig, err)
			}
		}
	}()

	// Mirror the child's output onto the real terminal.
	go func() {
		_, _ = io.Copy(os.Stdout, ptyFile)
	}()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%q: %w", command, err)
	}
	return nil
}
