// avl_tree.go

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

// AVLTree is a self-balancing binary search tree over any ordered key
// type. After every Insert or Delete returns, the usual AVL guarantees
// hold: keys are unique and strictly ordered, every cached height is
// exact, and every node's balance factor is within [-1, 1].
//
// A tree is not safe for concurrent use; callers that share one across
// goroutines must synchronize around mutations themselves.
type AVLTree[K cmp.Ordered, V any] struct {
	Root   *AVLNode[K, V]
	length int
}

func NewAVLTree[K cmp.Ordered, V any]() *AVLTree[K, V] {
	return &AVLTree[K, V]{Root: nil}
}

// Len reports the number of keys currently stored.
func (tree *AVLTree[K, V]) Len() int {
	return tree.length
}

func (tree *AVLTree[K, V]) IsEmpty() bool {
	return tree.Root == nil
}

// TreeHeight is the height of the whole tree, 0 when empty.
func (tree *AVLTree[K, V]) TreeHeight() int {
	return tree.getHeight(tree.Root)
}

// Insert adds key with its value. Inserting a key that is already
// present is a silent no-op: the tree is left untouched and the stored
// value is kept. That is policy, not an error, so there is nothing to
// return.
func (tree *AVLTree[K, V]) Insert(key K, value V) {
	var added bool
	tree.Root, added = tree.insertRecursive(tree.Root, key, value)
	if added {
		tree.length++
	}
}

func (tree *AVLTree[K, V]) insertRecursive(node *AVLNode[K, V], key K, value V) (*AVLNode[K, V], bool) {
	if node == nil {
		return &AVLNode[K, V]{Key: key, Value: value, Height: 1}, true
	}

	var added bool
	if key < node.Key {
		node.Left, added = tree.insertRecursive(node.Left, key, value)
	} else if key > node.Key {
		node.Right, added = tree.insertRecursive(node.Right, key, value)
	} else {
		// Duplicate key: leave the tree exactly as it is
		return node, false
	}

	tree.updateHeight(node)

	// At most one rotation (single or double) per insertion. The side
	// the new key went down picks the case.
	balanceFactor := tree.getBalanceFactor(node)
	if balanceFactor > 1 {
		if key < node.Left.Key {
			return tree.rotateRight(node), added // Left-Left
		}
		return tree.rotateLeftRight(node), added // Left-Right
	} else if balanceFactor < -1 {
		if key > node.Right.Key {
			return tree.rotateLeft(node), added // Right-Right
		}
		return tree.rotateRightLeft(node), added // Right-Left
	}

	return node, added
}

// Delete removes key if present. Deleting an absent key is a no-op.
// Unlike insertion, one deletion can require a rotation at every level
// back up to the root.
func (tree *AVLTree[K, V]) Delete(key K) {
	var removed bool
	tree.Root, removed = tree.deleteRecursive(tree.Root, key)
	if removed {
		tree.length--
	}
}

func (tree *AVLTree[K, V]) deleteRecursive(node *AVLNode[K, V], key K) (*AVLNode[K, V], bool) {
	if node == nil {
		return nil, false // Key not found
	}

	var removed bool
	if key < node.Key {
		node.Left, removed = tree.deleteRecursive(node.Left, key)
	} else if key > node.Key {
		node.Right, removed = tree.deleteRecursive(node.Right, key)
	} else { // Found the node to delete
		// Case 1: No children
		if node.Left == nil && node.Right == nil {
			return nil, true
		}
		// Case 2: One child (right)
		if node.Left == nil {
			return node.Right, true
		}
		// Case 3: One child (left)
		if node.Right == nil {
			return node.Left, true
		}
		// Case 4: Two children. Promote the in-order successor (the
		// leftmost node of the right subtree) into this node, then
		// delete that successor from the right subtree. The successor
		// has at most one child, so the recursion cannot hit this case
		// again for the same key.
		pivot := tree.findMin(node.Right)
		node.Key = pivot.Key
		node.Value = pivot.Value
		node.Right, _ = tree.deleteRecursive(node.Right, pivot.Key)
		removed = true
	}

	tree.updateHeight(node)
	return tree.rebalance(node), removed
}

func (tree *AVLTree[K, V]) findMin(node *AVLNode[K, V]) *AVLNode[K, V] {
	for node.Left != nil {
		node = node.Left
	}
	return node
}

// rebalance picks the rotation case from the taller child's balance
// factor. Deletion has no "inserted key" to compare against, which is
// why this differs from the insert path.
func (tree *AVLTree[K, V]) rebalance(node *AVLNode[K, V]) *AVLNode[K, V] {
	balanceFactor := tree.getBalanceFactor(node)

	// Left-heavy
	if balanceFactor > 1 {
		if tree.getBalanceFactor(node.Left) >= 0 {
			return tree.rotateRight(node) // Left-Left
		}
		return tree.rotateLeftRight(node) // Left-Right
	}

	// Right-heavy
	if balanceFactor < -1 {
		if tree.getBalanceFactor(node.Right) <= 0 {
			return tree.rotateLeft(node) // Right-Right
		}
		return tree.rotateRightLeft(node) // Right-Left
	}

	return node
}
