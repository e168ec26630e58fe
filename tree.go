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

// Package treeline implements a height-balanced (AVL) binary search
// tree holding a set of values ordered by a caller-supplied comparator,
// with bidirectional in-order iterators.
//
// A tree is not safe for concurrent use. Either confine it to a single
// goroutine or serialize access with a mutex.
package treeline

import "cmp"

// Tree is an ordered set of values. The zero generation starts at
// creation; every successful structural change starts a new one, which
// is how stale iterators are detected.
type Tree[T any] struct {
	root    *node[T]
	count   int
	gen     uint64
	compare func(a, b T) int
}

// New creates an empty tree ordered by compare, which must implement a
// strict total order: negative when a sorts before b, zero when they
// are equal, positive when a sorts after b.
func New[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{compare: compare}
}

// NewOrdered creates an empty tree over a naturally ordered type.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New(cmp.Compare[T])
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the height of the tree: -1 when empty, 0 for a single
// element.
func (t *Tree[T]) Height() int {
	return heightOf(t.root)
}

// Insert adds value as a new leaf at its ordered position and
// rebalances the path back to the root. Inserting a value equal to one
// already present is a no-op; the return value reports whether the
// tree grew.
func (t *Tree[T]) Insert(value T) bool {
	var added bool
	t.root, added = t.insert(t.root, value)
	if added {
		t.count++
		t.gen++
	}
	return added
}

func (t *Tree[T]) insert(n *node[T], value T) (*node[T], bool) {
	if n == nil {
		return &node[T]{value: value}, true
	}

	var added bool
	switch c := t.compare(value, n.value); {
	case c < 0:
		n.left, added = t.insert(n.left, value)
	case c > 0:
		n.right, added = t.insert(n.right, value)
	default:
		// duplicate: keep the existing element
		return n, false
	}
	if !added {
		return n, false
	}

	return rebalance(n), true
}

// Remove deletes the element at the iterator's position. The iterator
// is consumed: the returned iterator sits at the in-order successor of
// the removed value, or at End when the maximum was removed. Remove
// fails with ErrInvalidIterator when the iterator belongs to another
// tree, is stale, sits at End, or the tree is empty; the tree is left
// unchanged in every failure case.
func (t *Tree[T]) Remove(it Iterator[T]) (Iterator[T], error) {
	if it.tree != t || it.gen != t.gen || it.node == nil || t.root == nil {
		return it, ErrInvalidIterator
	}

	removed := it.node.value
	t.root = t.remove(t.root, removed)
	t.count--
	t.gen++

	return Iterator[T]{tree: t, node: t.successor(removed), gen: t.gen}, nil
}

func (t *Tree[T]) remove(n *node[T], value T) *node[T] {
	if n == nil {
		return nil
	}

	switch c := t.compare(value, n.value); {
	case c < 0:
		n.left = t.remove(n.left, value)
	case c > 0:
		n.right = t.remove(n.right, value)
	default:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// Two children: move the in-order successor's value into this
		// node, then delete the successor node, which has at most one
		// child.
		succ := n.right.first()
		n.value = succ.value
		n.right = t.remove(n.right, succ.value)
	}

	return rebalance(n)
}

// Find walks the tree in order and returns an iterator at the first
// element satisfying pred, or End when none does. The scan is O(n):
// pred is an arbitrary test, not tied to the tree's ordering.
func (t *Tree[T]) Find(pred func(T) bool) Iterator[T] {
	var found *node[T]
	t.root.ascend(func(n *node[T]) bool {
		if pred(n.value) {
			found = n
			return false
		}
		return true
	})
	return Iterator[T]{tree: t, node: found, gen: t.gen}
}

// Begin returns an iterator at the smallest element, or End when the
// tree is empty.
func (t *Tree[T]) Begin() Iterator[T] {
	return Iterator[T]{tree: t, node: t.root.first(), gen: t.gen}
}

// End returns the one-past-the-maximum sentinel iterator.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{tree: t, gen: t.gen}
}

// Ascend calls fn on every element in ascending order, stopping early
// when fn returns false.
func (t *Tree[T]) Ascend(fn func(T) bool) {
	t.root.ascend(func(n *node[T]) bool {
		return fn(n.value)
	})
}

// Clone returns a deep structural copy sharing no nodes with the
// original; mutating either tree never affects the other.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root:    t.root.clone(),
		count:   t.count,
		compare: t.compare,
	}
}

// Clear removes all elements and invalidates all live iterators.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.count = 0
	t.gen++
}

// successor returns the node holding the smallest value strictly
// greater than value, or nil when value is the maximum. It descends
// from the root, so it needs no parent pointers and works even when
// value itself is no longer in the tree.
func (t *Tree[T]) successor(value T) *node[T] {
	var after *node[T]
	for n := t.root; n != nil; {
		if t.compare(value, n.value) < 0 {
			after = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return after
}

// predecessor is the mirror of successor: the largest value strictly
// smaller than value, or nil when value is the minimum.
func (t *Tree[T]) predecessor(value T) *node[T] {
	var before *node[T]
	for n := t.root; n != nil; {
		if t.compare(value, n.value) > 0 {
			before = n
			n = n.right
		} else {
			n = n.left
		}
	}
	return before
}
