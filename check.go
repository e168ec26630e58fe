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

package treeline

import "fmt"

// Check walks the whole tree and verifies its structural invariants:
// every cached height is exact, every node satisfies the AVL balance
// bound, and the in-order value sequence is strictly increasing. A
// healthy tree always passes; Check exists for tests and diagnostics.
func (t *Tree[T]) Check() error {
	if _, err := checkNode(t.root); err != nil {
		return err
	}

	ordered := true
	var prev *T
	count := 0
	t.root.ascend(func(n *node[T]) bool {
		count++
		if prev != nil && t.compare(*prev, n.value) >= 0 {
			ordered = false
			return false
		}
		v := n.value
		prev = &v
		return true
	})
	if !ordered {
		return fmt.Errorf("treeline: in-order sequence is not strictly increasing")
	}
	if count != t.count {
		return fmt.Errorf("treeline: element count mismatch: cached %d, walked %d", t.count, count)
	}
	return nil
}

// checkNode verifies the subtree bottom-up and returns its true height.
func checkNode[T any](n *node[T]) (int, error) {
	if n == nil {
		return emptyHeight, nil
	}
	lh, err := checkNode(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := checkNode(n.right)
	if err != nil {
		return 0, err
	}
	if want := 1 + max(lh, rh); n.height != want {
		return 0, fmt.Errorf("treeline: stale height cache: have %d, want %d", n.height, want)
	}
	if d := lh - rh; d < -1 || d > 1 {
		return 0, fmt.Errorf("treeline: balance factor %d out of range", d)
	}
	return n.height, nil
}
