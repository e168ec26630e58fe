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

import "testing"

type ConfigTestCase struct {
	Name             string
	Data             string
	ExpectedElements int
	ExpectedBloom    uint
	ExpectedCaseless bool
}

func TestParseConfig(t *testing.T) {
	testCases := []ConfigTestCase{
		{
			Name:             "Partial Override Keeps Defaults",
			Data:             "bench:\n  elements: 500\n",
			ExpectedElements: 500,
			ExpectedBloom:    defaultConfig.Sort.BloomFilterSize,
			ExpectedCaseless: defaultConfig.Browse.CaseInsensitive,
		},
		{
			Name:             "Full Override",
			Data:             "sort:\n  bloom_filter_size: 42\nbench:\n  elements: 7\nbrowse:\n  case_insensitive: false\n",
			ExpectedElements: 7,
			ExpectedBloom:    42,
			ExpectedCaseless: false,
		},
		{
			Name:             "Invalid Yaml Falls Back To Defaults",
			Data:             "bench: [not a mapping",
			ExpectedElements: defaultConfig.Bench.Elements,
			ExpectedBloom:    defaultConfig.Sort.BloomFilterSize,
			ExpectedCaseless: defaultConfig.Browse.CaseInsensitive,
		},
		{
			Name:             "Empty File Falls Back To Defaults",
			Data:             "",
			ExpectedElements: defaultConfig.Bench.Elements,
			ExpectedBloom:    defaultConfig.Sort.BloomFilterSize,
			ExpectedCaseless: defaultConfig.Browse.CaseInsensitive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			config := parseConfig([]byte(tc.Data))
			if config == nil {
				t.Fatal("parseConfig returned nil")
			}
			if config.Bench.Elements != tc.ExpectedElements {
				t.Errorf("Bench.Elements = %d, want %d", config.Bench.Elements, tc.ExpectedElements)
			}
			if config.Sort.BloomFilterSize != tc.ExpectedBloom {
				t.Errorf("Sort.BloomFilterSize = %d, want %d", config.Sort.BloomFilterSize, tc.ExpectedBloom)
			}
			if config.Browse.CaseInsensitive != tc.ExpectedCaseless {
				t.Errorf("Browse.CaseInsensitive = %v, want %v", config.Browse.CaseInsensitive, tc.ExpectedCaseless)
			}
		})
	}
}
