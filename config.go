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
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type HistoryConfig struct {
	// Shell overrides $SHELL autodetection ("zsh" or "bash").
	Shell string `yaml:"shell"`
	// ShowProgress draws an indexing bar while the history loads.
	ShowProgress bool `yaml:"show_progress"`
}

type ReportConfig struct {
	// TopPrograms caps the per-program table in the activity report.
	TopPrograms int `yaml:"top_programs"`
}

type Config struct {
	History HistoryConfig `yaml:"history"`
	Report  ReportConfig  `yaml:"report"`
}

var defaultConfig = Config{
	History: HistoryConfig{
		Shell:        "",
		ShowProgress: false,
	},
	Report: ReportConfig{
		TopPrograms: 10,
	},
}

func LoadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &defaultConfig, nil
	}

	configPath := filepath.Join(homeDir, ".retrace.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	config := defaultConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return &defaultConfig, nil
	}
	if config.Report.TopPrograms < 1 {
		config.Report.TopPrograms = defaultConfig.Report.TopPrograms
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".retrace.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("Failed to get config path: %v\n", err)
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Configuration file not found. Creating default configuration...\n")
		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("Retrace configuration (%s)\n\n", configPath)

	shell := config.History.Shell
	if shell == "" {
		shell = fmt.Sprintf("autodetect (currently %s)", detectCurrentShell())
	}
	fmt.Printf("  history.shell:          %s\n", shell)
	fmt.Printf("  history.show_progress:  %v\n", config.History.ShowProgress)
	fmt.Printf("  report.top_programs:    %d\n", config.Report.TopPrograms)
}
