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

// emptyHeight is the height of a nil subtree; a leaf has height 0.
const emptyHeight = -1

// node holds one element and exclusively owns its child subtrees.
// A nil child is an empty subtree. The zero value of height is the
// correct cache for a freshly allocated leaf.
type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int
}

func heightOf[T any](n *node[T]) int {
	if n == nil {
		return emptyHeight
	}
	return n.height
}

func (n *node[T]) recompute() {
	n.height = 1 + max(heightOf(n.left), heightOf(n.right))
}

func (n *node[T]) balanceFactor() int {
	return heightOf(n.left) - heightOf(n.right)
}

// rotateRight promotes n.left over n and reattaches its right subtree
// as n's new left child. Heights are repaired child before pivot.
func rotateRight[T any](n *node[T]) *node[T] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n
	n.recompute()
	pivot.recompute()
	return pivot
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[T any](n *node[T]) *node[T] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n
	n.recompute()
	pivot.recompute()
	return pivot
}

// rebalance repairs the AVL property at n after one of its subtrees
// changed height, and returns the root of the repaired subtree. The
// four cases are the classic LL, LR, RR and RL rotations.
func rebalance[T any](n *node[T]) *node[T] {
	n.recompute()

	balanceFactor := n.balanceFactor()
	if balanceFactor > 1 {
		if n.left.balanceFactor() < 0 {
			// Left-Right case
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}
	if balanceFactor < -1 {
		if n.right.balanceFactor() > 0 {
			// Right-Left case
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}

	return n
}

// first returns the leftmost node of the subtree, nil when empty.
func (n *node[T]) first() *node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// last returns the rightmost node of the subtree, nil when empty.
func (n *node[T]) last() *node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// ascend visits the subtree's nodes in order until fn returns false.
// Reports whether the walk ran to completion.
func (n *node[T]) ascend(fn func(*node[T]) bool) bool {
	if n == nil {
		return true
	}
	if !n.left.ascend(fn) {
		return false
	}
	if !fn(n) {
		return false
	}
	return n.right.ascend(fn)
}

// clone returns a structural deep copy of the subtree.
func (n *node[T]) clone() *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		value:  n.value,
		left:   n.left.clone(),
		right:  n.right.clone(),
		height: n.height,
	}
}
