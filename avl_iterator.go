// avl_iterator.go

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

// Iterator walks the keys in ascending order, lazily, using an
// explicit stack of the nodes whose left side has been explored but
// which have not been yielded yet. Restart by asking the tree for a
// fresh iterator. The tree must not be mutated while an iterator is
// live.
type Iterator[K cmp.Ordered, V any] struct {
	stack []*AVLNode[K, V]
}

// Iter returns a new iterator positioned before the smallest key.
func (tree *AVLTree[K, V]) Iter() *Iterator[K, V] {
	it := &Iterator[K, V]{
		stack: make([]*AVLNode[K, V], 0, tree.TreeHeight()),
	}
	it.pushLeftSpine(tree.Root)
	return it
}

func (it *Iterator[K, V]) pushLeftSpine(node *AVLNode[K, V]) {
	for node != nil {
		it.stack = append(it.stack, node)
		node = node.Left
	}
}

// Next yields the next key/value pair in ascending order. ok is false
// once the sequence is exhausted.
func (it *Iterator[K, V]) Next() (key K, value V, ok bool) {
	if len(it.stack) == 0 {
		var zk K
		var zv V
		return zk, zv, false
	}

	node := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeftSpine(node.Right)
	return node.Key, node.Value, true
}

// SortedKeys drains a fresh iterator into a slice. Mostly a
// convenience for callers that want the whole ascending sequence at
// once (reports, tests).
func (tree *AVLTree[K, V]) SortedKeys() []K {
	keys := make([]K, 0, tree.Len())
	it := tree.Iter()
	for {
		key, _, ok := it.Next()
		if !ok {
			return keys
		}
		keys = append(keys, key)
	}
}
