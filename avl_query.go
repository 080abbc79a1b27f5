// avl_query.go

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

import "cmp"

// Read-only queries. All of them cost O(height) descent work except the
// order statistics and range walks, which additionally touch the nodes
// they report. A missing key is an ordinary outcome everywhere here:
// callers get an ok=false, never an error and never a panic.

// Search looks for the node with the given key.
// It returns the stored value and whether the key was found.
func (tree *AVLTree[K, V]) Search(key K) (V, bool) {
	return searchNode(tree.Root, key)
}

// searchNode is a helper function that traverses the tree recursively.
func searchNode[K cmp.Ordered, V any](node *AVLNode[K, V], key K) (V, bool) {
	if node == nil {
		var zero V
		return zero, false
	}

	if key < node.Key {
		return searchNode(node.Left, key)
	} else if key > node.Key {
		return searchNode(node.Right, key)
	}
	return node.Value, true
}

func (tree *AVLTree[K, V]) Contains(key K) bool {
	_, ok := tree.Search(key)
	return ok
}

// Closest returns the stored key nearest to target. Ordered keys have
// no subtraction, so the caller supplies nearer, which reports whether
// a is closer to target than b. A single descent suffices: every key
// competing with the best seen so far lies on the search path.
func (tree *AVLTree[K, V]) Closest(target K, nearer func(a, b K) bool) (K, bool) {
	var best K
	found := false

	node := tree.Root
	for node != nil {
		if !found || nearer(node.Key, best) {
			best = node.Key
			found = true
		}
		if target < node.Key {
			node = node.Left
		} else if target > node.Key {
			node = node.Right
		} else {
			return node.Key, true // exact hit
		}
	}
	return best, found
}

// KthSmallest returns the k-th smallest key (1-based). k < 1 or k
// beyond the stored key count reports not-found.
func (tree *AVLTree[K, V]) KthSmallest(k int) (K, bool) {
	var zero K
	if k < 1 {
		return zero, false
	}

	// Iterative in-order walk with an explicit stack, counting until
	// the k-th node surfaces.
	stack := make([]*AVLNode[K, V], 0, tree.TreeHeight())
	node := tree.Root
	seen := 0
	for node != nil || len(stack) > 0 {
		for node != nil {
			stack = append(stack, node)
			node = node.Left
		}
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		seen++
		if seen == k {
			return node.Key, true
		}
		node = node.Right
	}
	return zero, false
}

// KthLargest is KthSmallest mirrored: a reverse in-order walk.
func (tree *AVLTree[K, V]) KthLargest(k int) (K, bool) {
	var zero K
	if k < 1 {
		return zero, false
	}

	stack := make([]*AVLNode[K, V], 0, tree.TreeHeight())
	node := tree.Root
	seen := 0
	for node != nil || len(stack) > 0 {
		for node != nil {
			stack = append(stack, node)
			node = node.Right
		}
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		seen++
		if seen == k {
			return node.Key, true
		}
		node = node.Left
	}
	return zero, false
}

// Successor returns the smallest stored key strictly greater than key.
// The key itself does not have to be present.
func (tree *AVLTree[K, V]) Successor(key K) (K, bool) {
	var candidate K
	found := false

	node := tree.Root
	for node != nil {
		if node.Key > key {
			candidate = node.Key
			found = true
			node = node.Left // try to get closer to key
		} else {
			node = node.Right
		}
	}
	return candidate, found
}

// Predecessor returns the largest stored key strictly less than key.
func (tree *AVLTree[K, V]) Predecessor(key K) (K, bool) {
	var candidate K
	found := false

	node := tree.Root
	for node != nil {
		if node.Key < key {
			candidate = node.Key
			found = true
			node = node.Right
		} else {
			node = node.Left
		}
	}
	return candidate, found
}

// Ascend calls fn for every key in ascending order until fn returns
// false.
func (tree *AVLTree[K, V]) Ascend(fn func(key K, value V) bool) {
	ascend(tree.Root, fn)
}

func ascend[K cmp.Ordered, V any](node *AVLNode[K, V], fn func(K, V) bool) bool {
	if node == nil {
		return true
	}
	if !ascend(node.Left, fn) {
		return false
	}
	if !fn(node.Key, node.Value) {
		return false
	}
	return ascend(node.Right, fn)
}

// AscendRange calls fn in ascending order for every key in
// [low, high], both bounds inclusive. Subtrees that cannot intersect
// the range are never entered.
func (tree *AVLTree[K, V]) AscendRange(low, high K, fn func(key K, value V) bool) {
	ascendRange(tree.Root, low, high, fn)
}

func ascendRange[K cmp.Ordered, V any](node *AVLNode[K, V], low, high K, fn func(K, V) bool) bool {
	if node == nil {
		return true
	}

	// Only keys >= low can live in the left subtree worth visiting
	if node.Key > low {
		if !ascendRange(node.Left, low, high, fn) {
			return false
		}
	}
	if node.Key >= low && node.Key <= high {
		if !fn(node.Key, node.Value) {
			return false
		}
	}
	if node.Key < high {
		return ascendRange(node.Right, low, high, fn)
	}
	return true
}

// RangeCollect gathers the keys within [low, high] in ascending order.
func (tree *AVLTree[K, V]) RangeCollect(low, high K) []K {
	var keys []K
	tree.AscendRange(low, high, func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Min returns the smallest stored key.
func (tree *AVLTree[K, V]) Min() (K, bool) {
	var zero K
	if tree.Root == nil {
		return zero, false
	}
	return tree.findMin(tree.Root).Key, true
}

// Max returns the largest stored key.
func (tree *AVLTree[K, V]) Max() (K, bool) {
	var zero K
	node := tree.Root
	if node == nil {
		return zero, false
	}
	for node.Right != nil {
		node = node.Right
	}
	return node.Key, true
}
