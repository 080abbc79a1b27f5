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

// AVLNode is one key in the tree. Height is cached: a leaf has height 1,
// a missing child counts as height 0.
type AVLNode[K cmp.Ordered, V any] struct {
	Key    K
	Value  V
	Height int
	Left   *AVLNode[K, V]
	Right  *AVLNode[K, V]
}

func (tree *AVLTree[K, V]) getHeight(node *AVLNode[K, V]) int {
	if node == nil {
		return 0
	}
	return node.Height
}

// updateHeight must run for a node immediately after either child link
// changes, before anyone reads that node's balance factor.
func (tree *AVLTree[K, V]) updateHeight(node *AVLNode[K, V]) {
	node.Height = max(tree.getHeight(node.Left), tree.getHeight(node.Right)) + 1
}

func (tree *AVLTree[K, V]) getBalanceFactor(node *AVLNode[K, V]) int {
	if node == nil {
		return 0
	}
	return tree.getHeight(node.Left) - tree.getHeight(node.Right)
}
