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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/willf/bloom"

	"github.com/cybrota/treeline"
)

// readLines loads one value per line, skipping blank lines.
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	// Large buffer for long lines (minified files, logs)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

// dedupeLines drops lines the bloom filter has already seen. The
// filter can rarely report a false positive and drop a genuinely new
// line; the tree rejects exact duplicates regardless, so --unique only
// trades that small risk for skipping the insertion work on repeats.
func dedupeLines(lines []string, size, hashes uint) []string {
	filter := bloom.New(size, hashes)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if filter.TestString(line) {
			continue
		}
		filter.AddString(line)
		out = append(out, line)
	}
	return out
}

// sortLines routes the lines through the balanced tree and returns the
// in-order (ascending) sequence, without duplicates.
func sortLines(lines []string) []string {
	tree := treeline.NewOrdered[string]()
	for _, line := range lines {
		tree.Insert(line)
	}

	out := make([]string, 0, tree.Len())
	tree.Ascend(func(v string) bool {
		out = append(out, v)
		return true
	})
	return out
}

func runSort(path string, unique bool) error {
	var in io.Reader = os.Stdin
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	lines, err := readLines(in)
	if err != nil {
		return err
	}

	if unique {
		config := LoadConfig()
		lines = dedupeLines(lines, config.Sort.BloomFilterSize, config.Sort.BloomFilterHashes)
	}

	for _, line := range sortLines(lines) {
		fmt.Println(line)
	}
	return nil
}
