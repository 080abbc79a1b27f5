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
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheRenderedAndGetRendered(t *testing.T) {
	c := NewRenderCache()
	key := "help:git status"
	text := "usage: git status ..."

	// A missing key reads back as the empty string.
	if got := GetRendered(c, key); got != "" {
		t.Errorf("GetRendered(%q) = %q; want empty string", key, got)
	}

	CacheRendered(c, key, text)

	if got := GetRendered(c, key); got != text {
		t.Errorf("GetRendered(%q) = %q; want %q", key, got, text)
	}

	// Overwrites win.
	CacheRendered(c, key, "newer render")
	if got := GetRendered(c, key); got != "newer render" {
		t.Errorf("GetRendered(%q) = %q; want the overwritten text", key, got)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := "help:expiring"
	c.Set(key, "short-lived", 100*time.Millisecond)

	if got := GetRendered(c, key); got != "short-lived" {
		t.Errorf("GetRendered(%q) = %q; want short-lived", key, got)
	}

	time.Sleep(150 * time.Millisecond)

	if got := GetRendered(c, key); got != "" {
		t.Errorf("after expiration, GetRendered(%q) = %q; want empty string", key, got)
	}
}
