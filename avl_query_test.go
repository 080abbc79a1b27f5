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

import (
	"slices"
	"testing"
)

func buildIntTree(keys ...int) *AVLTree[int, struct{}] {
	tree := NewAVLTree[int, struct{}]()
	for _, k := range keys {
		tree.Insert(k, struct{}{})
	}
	return tree
}

func TestKthSmallestAndLargest(t *testing.T) {
	tree := buildIntTree(20, 10, 30, 5, 15)

	testCases := []struct {
		Name    string
		Largest bool
		K       int
		Want    int
		WantOK  bool
	}{
		{Name: "Second Smallest", K: 2, Want: 10, WantOK: true},
		{Name: "First Smallest", K: 1, Want: 5, WantOK: true},
		{Name: "Last Smallest", K: 5, Want: 30, WantOK: true},
		{Name: "Smallest Out Of Range High", K: 6},
		{Name: "Smallest Out Of Range Zero", K: 0},
		{Name: "Smallest Out Of Range Negative", K: -3},
		{Name: "Second Largest", Largest: true, K: 2, Want: 20, WantOK: true},
		{Name: "First Largest", Largest: true, K: 1, Want: 30, WantOK: true},
		{Name: "Largest Out Of Range", Largest: true, K: 6},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var got int
			var ok bool
			if tc.Largest {
				got, ok = tree.KthLargest(tc.K)
			} else {
				got, ok = tree.KthSmallest(tc.K)
			}
			if ok != tc.WantOK || (ok && got != tc.Want) {
				t.Errorf("got (%d, %v); want (%d, %v)", got, ok, tc.Want, tc.WantOK)
			}
		})
	}
}

func TestRangeCollect(t *testing.T) {
	tree := buildIntTree(20, 10, 30, 5, 15)

	testCases := []struct {
		Name      string
		Low, High int
		Want      []int
	}{
		{Name: "Mid Range", Low: 15, High: 35, Want: []int{15, 20, 30}},
		{Name: "Inclusive Bounds", Low: 10, High: 20, Want: []int{10, 15, 20}},
		{Name: "Whole Tree", Low: 0, High: 100, Want: []int{5, 10, 15, 20, 30}},
		{Name: "Empty Window", Low: 21, High: 29, Want: nil},
		{Name: "Inverted Window", Low: 30, High: 10, Want: nil},
		{Name: "Single Key", Low: 15, High: 15, Want: []int{15}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := tree.RangeCollect(tc.Low, tc.High)
			if !slices.Equal(got, tc.Want) {
				t.Errorf("RangeCollect(%d, %d) = %v; want %v", tc.Low, tc.High, got, tc.Want)
			}
		})
	}
}

func TestAscendRangeEarlyStop(t *testing.T) {
	tree := buildIntTree(1, 2, 3, 4, 5, 6, 7)

	var visited []int
	tree.AscendRange(2, 6, func(key int, _ struct{}) bool {
		visited = append(visited, key)
		return len(visited) < 3
	})
	if want := []int{2, 3, 4}; !slices.Equal(visited, want) {
		t.Errorf("visited %v; want %v", visited, want)
	}
}

func TestSuccessorPredecessor(t *testing.T) {
	tree := buildIntTree(20, 10, 30, 5, 15)

	testCases := []struct {
		Name   string
		Pred   bool
		Key    int
		Want   int
		WantOK bool
	}{
		{Name: "Successor Of Present Key", Key: 10, Want: 15, WantOK: true},
		{Name: "Successor Of Absent Key", Key: 12, Want: 15, WantOK: true},
		{Name: "Successor Below Minimum", Key: 1, Want: 5, WantOK: true},
		{Name: "Successor Of Maximum", Key: 30},
		{Name: "Predecessor Of Present Key", Pred: true, Key: 20, Want: 15, WantOK: true},
		{Name: "Predecessor Of Absent Key", Pred: true, Key: 17, Want: 15, WantOK: true},
		{Name: "Predecessor Above Maximum", Pred: true, Key: 99, Want: 30, WantOK: true},
		{Name: "Predecessor Of Minimum", Pred: true, Key: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var got int
			var ok bool
			if tc.Pred {
				got, ok = tree.Predecessor(tc.Key)
			} else {
				got, ok = tree.Successor(tc.Key)
			}
			if ok != tc.WantOK || (ok && got != tc.Want) {
				t.Errorf("got (%d, %v); want (%d, %v)", got, ok, tc.Want, tc.WantOK)
			}
		})
	}
}

func absNearer(target int) func(a, b int) bool {
	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}
	return func(a, b int) bool {
		return abs(a-target) < abs(b-target)
	}
}

func TestClosest(t *testing.T) {
	tree := buildIntTree(20, 10, 30, 5, 15)

	testCases := []struct {
		Name   string
		Target int
		Want   int
	}{
		{Name: "Exact Hit", Target: 15, Want: 15},
		{Name: "Between Keys Rounds Down", Target: 12, Want: 10},
		{Name: "Between Keys Rounds Up", Target: 14, Want: 15},
		{Name: "Below Minimum", Target: -100, Want: 5},
		{Name: "Above Maximum", Target: 100, Want: 30},
		{Name: "Off-Path Candidate Survives", Target: 27, Want: 30},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, ok := tree.Closest(tc.Target, absNearer(tc.Target))
			if !ok || got != tc.Want {
				t.Errorf("Closest(%d) = (%d, %v); want (%d, true)", tc.Target, got, ok, tc.Want)
			}
		})
	}

	empty := NewAVLTree[int, struct{}]()
	if _, ok := empty.Closest(5, absNearer(5)); ok {
		t.Error("Closest on empty tree should report not found")
	}
}

func TestMinMax(t *testing.T) {
	tree := buildIntTree(20, 10, 30, 5, 15)

	if got, ok := tree.Min(); !ok || got != 5 {
		t.Errorf("Min() = (%d, %v); want (5, true)", got, ok)
	}
	if got, ok := tree.Max(); !ok || got != 30 {
		t.Errorf("Max() = (%d, %v); want (30, true)", got, ok)
	}

	empty := NewAVLTree[int, struct{}]()
	if _, ok := empty.Min(); ok {
		t.Error("Min on empty tree should report not found")
	}
	if _, ok := empty.Max(); ok {
		t.Error("Max on empty tree should report not found")
	}
}

func TestAscendVisitsAllInOrder(t *testing.T) {
	tree := NewAVLTree[string, int]()
	tree.Insert("git status", 3)
	tree.Insert("docker ps", 1)
	tree.Insert("ls -la", 2)

	var keys []string
	var values []int
	tree.Ascend(func(key string, value int) bool {
		keys = append(keys, key)
		values = append(values, value)
		return true
	})

	if want := []string{"docker ps", "git status", "ls -la"}; !slices.Equal(keys, want) {
		t.Errorf("keys = %v; want %v", keys, want)
	}
	if want := []int{1, 3, 2}; !slices.Equal(values, want) {
		t.Errorf("values = %v; want %v", values, want)
	}
}
