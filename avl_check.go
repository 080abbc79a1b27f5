// avl_check.go

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

// IsBalanced walks the whole tree and verifies three things at every
// node: the cached height matches the real subtree height, the balance
// factor is within [-1, 1], and the keys obey the search-tree order.
// A false result means a bug in this package, not bad input; it exists
// for tests and should stay off production hot paths (it is O(n)).
func (tree *AVLTree[K, V]) IsBalanced() bool {
	_, ok := checkNode(tree.Root, nil, nil)
	return ok
}

// checkNode returns the true height of the subtree and whether every
// invariant holds inside it. lo and hi are exclusive key bounds
// inherited from ancestors, nil meaning unbounded.
func checkNode[K cmp.Ordered, V any](node *AVLNode[K, V], lo, hi *K) (int, bool) {
	if node == nil {
		return 0, true
	}

	if lo != nil && node.Key <= *lo {
		return 0, false
	}
	if hi != nil && node.Key >= *hi {
		return 0, false
	}

	leftHeight, ok := checkNode(node.Left, lo, &node.Key)
	if !ok {
		return 0, false
	}
	rightHeight, ok := checkNode(node.Right, &node.Key, hi)
	if !ok {
		return 0, false
	}

	height := max(leftHeight, rightHeight) + 1
	if node.Height != height {
		return 0, false // stale cached height
	}
	if bf := leftHeight - rightHeight; bf < -1 || bf > 1 {
		return 0, false
	}
	return height, true
}
