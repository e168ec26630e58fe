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

import "testing"

func TestIteratorForwardWalk(t *testing.T) {
	tree := NewOrdered[int]()
	keys := []int{4, 2, 6, 1, 3, 5, 7}
	for _, k := range keys {
		tree.Insert(k)
	}

	it := tree.Begin()
	for want := 1; want <= 7; want++ {
		got, err := it.Value()
		if err != nil {
			t.Fatalf("Value at %d failed: %v", want, err)
		}
		if got != want {
			t.Errorf("Value = %d, want %d", got, want)
		}
		var stepErr error
		it, stepErr = it.Next()
		if stepErr != nil {
			t.Fatalf("Next after %d failed: %v", want, stepErr)
		}
	}
	if !it.AtEnd() {
		t.Error("iterator not at end after walking all elements")
	}
	if !it.Eq(tree.End()) {
		t.Error("end-of-walk iterator should equal End")
	}
}

func TestIteratorBackwardWalk(t *testing.T) {
	tree := NewOrdered[int]()
	for _, k := range []int{1, 2, 3} {
		tree.Insert(k)
	}

	it, err := tree.End().Prev()
	if err != nil {
		t.Fatalf("Prev from End failed: %v", err)
	}
	for want := 3; want >= 1; want-- {
		got, valErr := it.Value()
		if valErr != nil {
			t.Fatalf("Value at %d failed: %v", want, valErr)
		}
		if got != want {
			t.Errorf("Value = %d, want %d", got, want)
		}
		if want > 1 {
			it, err = it.Prev()
			if err != nil {
				t.Fatalf("Prev before %d failed: %v", want, err)
			}
		}
	}
}

func TestIteratorEndDereference(t *testing.T) {
	tree := NewOrdered[int]()
	tree.Insert(1)

	if _, err := tree.End().Value(); err != ErrElementNotFound {
		t.Errorf("Value at End: err = %v, want ErrElementNotFound", err)
	}
	if _, err := tree.End().Next(); err != ErrIllegalOperation {
		t.Errorf("Next at End: err = %v, want ErrIllegalOperation", err)
	}
}

func TestIteratorPrevAtFirst(t *testing.T) {
	tree := NewOrdered[int]()
	for _, k := range []int{1, 2, 3} {
		tree.Insert(k)
	}

	it := tree.Begin()
	same, err := it.Prev()
	if err != ErrIllegalOperation {
		t.Fatalf("Prev at first: err = %v, want ErrIllegalOperation", err)
	}
	// the position survives the failed call
	got, err := same.Value()
	if err != nil || got != 1 {
		t.Errorf("position after failed Prev: value = %d, err = %v, want 1", got, err)
	}
}

func TestIteratorPrevOnEmptyTree(t *testing.T) {
	tree := NewOrdered[int]()
	if _, err := tree.End().Prev(); err != ErrIllegalOperation {
		t.Errorf("Prev on empty tree: err = %v, want ErrIllegalOperation", err)
	}
}

func TestRemoveForeignIterator(t *testing.T) {
	a := NewOrdered[int]()
	b := NewOrdered[int]()
	for _, k := range []int{1, 2, 3} {
		a.Insert(k)
		b.Insert(k)
	}

	it := b.Find(func(v int) bool { return v == 2 })
	if _, err := a.Remove(it); err != ErrInvalidIterator {
		t.Fatalf("Remove with foreign iterator: err = %v, want ErrInvalidIterator", err)
	}
	// both trees must be untouched
	verifyInOrder(t, a, []int{1, 2, 3})
	verifyInOrder(t, b, []int{1, 2, 3})
}

func TestRemoveEndIterator(t *testing.T) {
	tree := NewOrdered[int]()
	tree.Insert(1)
	if _, err := tree.Remove(tree.End()); err != ErrInvalidIterator {
		t.Errorf("Remove(End): err = %v, want ErrInvalidIterator", err)
	}

	empty := NewOrdered[int]()
	if _, err := empty.Remove(empty.End()); err != ErrInvalidIterator {
		t.Errorf("Remove on empty tree: err = %v, want ErrInvalidIterator", err)
	}
}

func TestRemoveAdvancesToSuccessor(t *testing.T) {
	tree := NewOrdered[int]()
	for _, k := range []int{1, 2, 3} {
		tree.Insert(k)
	}

	it := tree.Find(func(v int) bool { return v == 2 })
	next, err := tree.Remove(it)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	got, err := next.Value()
	if err != nil || got != 3 {
		t.Errorf("iterator after Remove(2): value = %d, err = %v, want 3", got, err)
	}
	verifyInOrder(t, tree, []int{1, 3})

	// removing the maximum yields the end sentinel
	it = tree.Find(func(v int) bool { return v == 3 })
	next, err = tree.Remove(it)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !next.AtEnd() {
		t.Error("iterator after removing the maximum should be at End")
	}
	if err := tree.Check(); err != nil {
		t.Errorf("invariants broken: %v", err)
	}
}

// Removing a value whose node has two children relocates the
// successor's value; the returned iterator must still denote the
// in-order successor of the removed value.
func TestRemoveTwoChildrenAdvance(t *testing.T) {
	tree := NewOrdered[int]()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(k)
	}

	it := tree.Find(func(v int) bool { return v == 4 })
	next, err := tree.Remove(it)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	got, err := next.Value()
	if err != nil || got != 5 {
		t.Errorf("iterator after Remove(4): value = %d, err = %v, want 5", got, err)
	}
	verifyInOrder(t, tree, []int{1, 2, 3, 5, 6, 7})
}

// Erase-during-iteration: draining the whole tree through the iterator
// returned by Remove visits every element exactly once, in order.
func TestEraseDuringIteration(t *testing.T) {
	tree := NewOrdered[int]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(k)
	}

	var visited []int
	it := tree.Begin()
	for !it.AtEnd() {
		v, err := it.Value()
		if err != nil {
			t.Fatalf("Value failed: %v", err)
		}
		visited = append(visited, v)
		it, err = tree.Remove(it)
		if err != nil {
			t.Fatalf("Remove(%d) failed: %v", v, err)
		}
	}

	want := []int{1, 3, 4, 5, 7, 8, 9}
	if len(visited) != len(want) {
		t.Fatalf("visited %d elements, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %d, want %d", i, visited[i], want[i])
		}
	}
	if !tree.IsEmpty() {
		t.Error("tree not empty after draining")
	}
}

func TestStaleIteratorAfterMutation(t *testing.T) {
	tree := NewOrdered[int]()
	tree.Insert(1)
	tree.Insert(2)

	it := tree.Begin()
	tree.Insert(3) // unrelated mutation invalidates live iterators

	if _, err := it.Value(); err != ErrInvalidIterator {
		t.Errorf("Value on stale iterator: err = %v, want ErrInvalidIterator", err)
	}
	if _, err := it.Next(); err != ErrInvalidIterator {
		t.Errorf("Next on stale iterator: err = %v, want ErrInvalidIterator", err)
	}
	if _, err := it.Prev(); err != ErrInvalidIterator {
		t.Errorf("Prev on stale iterator: err = %v, want ErrInvalidIterator", err)
	}
	if _, err := tree.Remove(it); err != ErrInvalidIterator {
		t.Errorf("Remove with stale iterator: err = %v, want ErrInvalidIterator", err)
	}
}

func TestIteratorEquality(t *testing.T) {
	tree := NewOrdered[int]()
	tree.Insert(1)

	if !tree.Begin().Eq(tree.Begin()) {
		t.Error("two Begin iterators should be equal")
	}
	if !tree.End().Eq(tree.End()) {
		t.Error("two End iterators should be equal")
	}
	if tree.Begin().Eq(tree.End()) {
		t.Error("Begin and End should differ on a non-empty tree")
	}

	other := NewOrdered[int]()
	if tree.End().Eq(other.End()) {
		t.Error("End iterators of different trees should not be equal")
	}

	empty := NewOrdered[int]()
	if !empty.Begin().Eq(empty.End()) {
		t.Error("Begin should equal End on an empty tree")
	}
}

// A stale iterator must not compare equal to a fresh one at the same
// node or to End, otherwise loops guarded by Eq could terminate on an
// invalidated handle that every other method rejects.
func TestIteratorEqualityAfterMutation(t *testing.T) {
	tree := NewOrdered[int]()
	tree.Insert(1)

	it := tree.Begin()
	end := tree.End()
	tree.Insert(2)

	if it.Eq(tree.Begin()) {
		t.Error("stale iterator should not equal a fresh iterator at the same position")
	}
	if end.Eq(tree.End()) {
		t.Error("stale end iterator should not equal a fresh End")
	}
	if it.Eq(it) {
		t.Error("stale iterator should not even equal itself")
	}
}

func TestIteratorCopySemantics(t *testing.T) {
	tree := NewOrdered[int]()
	for _, k := range []int{1, 2, 3} {
		tree.Insert(k)
	}

	a := tree.Begin()
	b := a // plain value copy
	b, err := b.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	got, _ := a.Value()
	if got != 1 {
		t.Errorf("original iterator moved: value = %d, want 1", got)
	}
	got, _ = b.Value()
	if got != 2 {
		t.Errorf("copied iterator: value = %d, want 2", got)
	}
}
