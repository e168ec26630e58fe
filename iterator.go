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

// Iterator is a logical position inside one specific tree: either at
// an element or at the end sentinel, one past the maximum. Iterators
// are plain values and freely copyable; copying never affects the
// tree.
//
// Every iterator carries the tree generation it was created under.
// After any successful Insert, Remove or Clear the tree moves to a new
// generation and older iterators fail with ErrInvalidIterator rather
// than touching nodes that may have moved or been freed.
type Iterator[T any] struct {
	tree *Tree[T]
	node *node[T]
	gen  uint64
}

// AtEnd reports whether the iterator sits at the end sentinel.
func (it Iterator[T]) AtEnd() bool {
	return it.node == nil
}

// Eq reports whether both iterators reference the same tree and the
// same logical position. Two end iterators of the same tree are equal.
// A stale iterator compares unequal to everything, consistent with the
// ErrInvalidIterator every other method reports on it.
func (it Iterator[T]) Eq(other Iterator[T]) bool {
	if it.stale() || other.stale() {
		return false
	}
	return it.tree == other.tree && it.node == other.node
}

func (it Iterator[T]) stale() bool {
	return it.tree == nil || it.gen != it.tree.gen
}

// Value returns the element at the iterator's position. Dereferencing
// the end sentinel fails with ErrElementNotFound; a stale iterator
// fails with ErrInvalidIterator.
func (it Iterator[T]) Value() (T, error) {
	var zero T
	if it.stale() {
		return zero, ErrInvalidIterator
	}
	if it.node == nil {
		return zero, ErrElementNotFound
	}
	return it.node.value, nil
}

// Next returns an iterator at the in-order successor. Stepping from
// the maximum lands on the end sentinel; stepping from the end
// sentinel fails with ErrIllegalOperation.
func (it Iterator[T]) Next() (Iterator[T], error) {
	if it.stale() {
		return it, ErrInvalidIterator
	}
	if it.node == nil {
		return it, ErrIllegalOperation
	}
	return Iterator[T]{
		tree: it.tree,
		node: it.tree.successor(it.node.value),
		gen:  it.gen,
	}, nil
}

// Prev returns an iterator at the in-order predecessor. Stepping back
// from the end sentinel lands on the maximum; stepping back from the
// first element fails with ErrIllegalOperation and leaves the position
// unchanged.
func (it Iterator[T]) Prev() (Iterator[T], error) {
	if it.stale() {
		return it, ErrInvalidIterator
	}

	var prev *node[T]
	if it.node == nil {
		prev = it.tree.root.last()
	} else {
		prev = it.tree.predecessor(it.node.value)
	}
	if prev == nil {
		return it, ErrIllegalOperation
	}
	return Iterator[T]{tree: it.tree, node: prev, gen: it.gen}, nil
}
