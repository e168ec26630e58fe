// Copyright 2025 Naren Yellavula
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

type SortConfig struct {
	BloomFilterSize   uint `yaml:"bloom_filter_size"`
	BloomFilterHashes uint `yaml:"bloom_filter_hashes"`
}

type BenchConfig struct {
	Elements int `yaml:"elements"`
}

type BrowseConfig struct {
	CaseInsensitive bool `yaml:"case_insensitive"`
}

type Config struct {
	Sort   SortConfig   `yaml:"sort"`
	Bench  BenchConfig  `yaml:"bench"`
	Browse BrowseConfig `yaml:"browse"`
}

var defaultConfig = Config{
	Sort: SortConfig{
		BloomFilterSize:   100000,
		BloomFilterHashes: 5,
	},
	Bench: BenchConfig{
		Elements: 100000,
	},
	Browse: BrowseConfig{
		CaseInsensitive: true,
	},
}

// LoadConfig reads ~/.treeline.yaml. Any failure (no home directory,
// missing or unreadable file, bad yaml) falls back to the defaults, so
// there is no error to return.
func LoadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &defaultConfig
	}

	data, err := os.ReadFile(filepath.Join(homeDir, ".treeline.yaml"))
	if err != nil {
		return &defaultConfig
	}

	return parseConfig(data)
}

// parseConfig overlays the file contents on the defaults; fields the
// file does not set keep their default values.
func parseConfig(data []byte) *Config {
	config := defaultConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return &defaultConfig
	}
	return &config
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".treeline.yaml"), nil
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

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config := LoadConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Treeline Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")
	fmt.Printf("📍 Config file: %s\n\n", configPath)

	fmt.Printf("🔍 %sSort:%s\n", Green, Reset)
	fmt.Printf("  • %sbloom_filter_size%s: %d\n", Green, Reset, config.Sort.BloomFilterSize)
	fmt.Printf("  • %sbloom_filter_hashes%s: %d\n", Green, Reset, config.Sort.BloomFilterHashes)
	fmt.Printf("    Sizing of the --unique pre-filter\n\n")

	fmt.Printf("⏱  %sBench:%s\n", Green, Reset)
	fmt.Printf("  • %selements%s: %d\n", Green, Reset, config.Bench.Elements)
	fmt.Printf("    Default element count when -n is not given\n\n")

	fmt.Printf("🌲 %sBrowse:%s\n", Green, Reset)
	fmt.Printf("  • %scase_insensitive%s: %v\n", Green, Reset, config.Browse.CaseInsensitive)
	fmt.Printf("    Whether browser search ignores letter case\n\n")

	fmt.Printf("📚 For more information, see: https://github.com/cybrota/treeline#configuration\n")
}
