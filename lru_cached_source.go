// Copyright 2024 The University of Queensland
// Copyright 2025 Contriboss
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

package pubgrub

import (
	"fmt"

	"github.com/golang/groupcache/lru"
)

// LRUCachedSource wraps a Source with a bounded-memory cache, the eviction-aware
// sibling of CachedSource. CachedSource's own documentation names the intended
// use case as "running multiple dependency resolutions without recreating the
// source" against registries with expensive I/O — but its map-based cache grows
// without bound for the lifetime of the process. LRUCachedSource is for exactly
// that long-lived scenario: a fixed number of entries are kept, and the oldest
// unused ones are evicted first.
//
// As with CachedSource, queries are assumed to be immutable for the lifetime of
// the source (version lists and dependencies for a given package/version do not
// change mid-resolution).
type LRUCachedSource struct {
	source Source

	versions *lru.Cache
	deps     *lru.Cache
}

// NewLRUCachedSource creates a caching wrapper around source, bounding each of
// the versions and dependencies caches to maxEntries. A maxEntries of 0 means
// no limit, matching lru.Cache's own convention.
func NewLRUCachedSource(source Source, maxEntries int) *LRUCachedSource {
	return &LRUCachedSource{
		source:   source,
		versions: lru.New(maxEntries),
		deps:     lru.New(maxEntries),
	}
}

// GetVersions returns all available versions for a package, caching the result.
func (c *LRUCachedSource) GetVersions(name Name) ([]Version, error) {
	if cached, ok := c.versions.Get(name); ok {
		return cached.([]Version), nil
	}

	versions, err := c.source.GetVersions(name)
	if err != nil {
		return nil, err
	}

	c.versions.Add(name, versions)
	return versions, nil
}

// GetDependencies returns dependencies for a specific package version, caching the result.
func (c *LRUCachedSource) GetDependencies(name Name, version Version) ([]Term, error) {
	key := fmt.Sprintf("%s@%s", name.Value(), version)

	if cached, ok := c.deps.Get(key); ok {
		return cached.([]Term), nil
	}

	deps, err := c.source.GetDependencies(name, version)
	if err != nil {
		return nil, err
	}

	c.deps.Add(key, deps)
	return deps, nil
}

// Len reports the number of entries currently held in each of the two caches.
func (c *LRUCachedSource) Len() (versions, deps int) {
	return c.versions.Len(), c.deps.Len()
}

// Clear empties both caches while preserving the underlying source.
func (c *LRUCachedSource) Clear() {
	c.versions.Clear()
	c.deps.Clear()
}

var (
	_ Source = &LRUCachedSource{}
)
