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
	"math"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/treeline"
)

// runBench inserts n pseudo-random values, removes a third of them
// through find+remove iterators, and reports timings, height against
// the theoretical AVL bound and the invariant check result.
func runBench(n int) error {
	if n <= 0 {
		n = LoadConfig().Bench.Elements
	}

	tree := treeline.NewOrdered[int]()
	values := rand.Perm(n)

	bar := progressbar.Default(int64(n), "inserting")
	start := time.Now()
	for _, v := range values {
		tree.Insert(v)
		bar.Add(1)
	}
	insertTook := time.Since(start)

	removals := n / 3
	bar = progressbar.Default(int64(removals), "removing")
	start = time.Now()
	for _, v := range rand.Perm(n)[:removals] {
		it := tree.Find(func(x int) bool { return x == v })
		if it.AtEnd() {
			return fmt.Errorf("value %d missing from tree", v)
		}
		if _, err := tree.Remove(it); err != nil {
			return fmt.Errorf("remove %d: %w", v, err)
		}
		bar.Add(1)
	}
	removeTook := time.Since(start)

	// worst-case AVL height is 1.44*log2(n+2)
	bound := int(1.44*math.Log2(float64(tree.Len()+2))) + 1

	fmt.Printf("\n%sTree report%s\n", Green, Reset)
	fmt.Printf("  elements:    %d (after %d removals)\n", tree.Len(), removals)
	fmt.Printf("  height:      %d (AVL bound %d)\n", tree.Height(), bound)
	fmt.Printf("  insert time: %v\n", insertTook)
	fmt.Printf("  remove time: %v\n", removeTook)

	if err := tree.Check(); err != nil {
		fmt.Printf("  invariants:  %sFAILED%s: %v\n", Red, Reset, err)
		return err
	}
	fmt.Printf("  invariants:  %sOK%s\n", Green, Reset)
	return nil
}
