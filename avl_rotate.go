// avl_rotate.go

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

// The four rotations relink existing nodes only. No node is created or
// destroyed and the in-order key sequence is unchanged; only local
// parent/child wiring and cached heights move.

func (tree *AVLTree[K, V]) rotateLeft(node *AVLNode[K, V]) *AVLNode[K, V] {
	if node == nil || node.Right == nil {
		return node // Nothing to rotate or invalid input
	}

	// Identify the pivot node (new root)
	pivot := node.Right

	// Perform the rotation
	node.Right = pivot.Left
	pivot.Left = node

	// Update heights: node is the child now, so it goes first
	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

func (tree *AVLTree[K, V]) rotateRight(node *AVLNode[K, V]) *AVLNode[K, V] {
	if node == nil || node.Left == nil {
		return node // Nothing to rotate or invalid input
	}

	// Identify the pivot node (new root)
	pivot := node.Left

	// Perform the rotation
	node.Left = pivot.Right
	pivot.Right = node

	// Update heights: node is the child now, so it goes first
	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

// rotateLeftRight handles the Left-Right case: the left child leans right.
func (tree *AVLTree[K, V]) rotateLeftRight(node *AVLNode[K, V]) *AVLNode[K, V] {
	node.Left = tree.rotateLeft(node.Left)
	return tree.rotateRight(node)
}

// rotateRightLeft handles the Right-Left case: the right child leans left.
func (tree *AVLTree[K, V]) rotateRightLeft(node *AVLNode[K, V]) *AVLNode[K, V] {
	node.Right = tree.rotateRight(node.Right)
	return tree.rotateLeft(node)
}
