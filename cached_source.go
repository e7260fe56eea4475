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

import "fmt"

// CachedSource memoizes GetVersions and GetDependencies over the lifetime
// of the wrapped Source, on the assumption that a source's answers don't
// change mid-solve. It pays off for sources backed by network or disk I/O;
// for an already-in-memory source like InMemorySource the bookkeeping costs
// more than it saves. The cache is an unbounded map kept until ClearCache, so
// running multiple dependency resolutions without recreating the source lets
// it grow without limit; LRUCachedSource is the bounded alternative.
type CachedSource struct {
	source Source

	versionsCache map[Name][]Version
	versionsCalls int
	versionsHits  int

	depsCache map[string][]Term
	depsCalls int
	depsHits  int
}

func NewCachedSource(source Source) *CachedSource {
	return &CachedSource{
		source:        source,
		versionsCache: make(map[Name][]Version),
		depsCache:     make(map[string][]Term),
	}
}

func (c *CachedSource) GetVersions(name Name) ([]Version, error) {
	c.versionsCalls++
	if versions, ok := c.versionsCache[name]; ok {
		c.versionsHits++
		return versions, nil
	}

	versions, err := c.source.GetVersions(name)
	if err != nil {
		return nil, err
	}
	c.versionsCache[name] = versions
	return versions, nil
}

func (c *CachedSource) GetDependencies(name Name, version Version) ([]Term, error) {
	c.depsCalls++
	key := fmt.Sprintf("%s@%s", name.Value(), version)
	if deps, ok := c.depsCache[key]; ok {
		c.depsHits++
		return deps, nil
	}

	deps, err := c.source.GetDependencies(name, version)
	if err != nil {
		return nil, err
	}
	c.depsCache[key] = deps
	return deps, nil
}

// CacheStats summarizes how effective the cache has been so far.
type CacheStats struct {
	VersionsCalls     int
	VersionsCacheHits int
	VersionsHitRate   float64

	DepsCalls     int
	DepsCacheHits int
	DepsHitRate   float64

	TotalCalls     int
	TotalCacheHits int
	OverallHitRate float64
}

func hitRate(hits, calls int) float64 {
	if calls == 0 {
		return 0
	}
	return float64(hits) / float64(calls)
}

func (c *CachedSource) GetCacheStats() CacheStats {
	totalCalls := c.versionsCalls + c.depsCalls
	totalHits := c.versionsHits + c.depsHits

	return CacheStats{
		VersionsCalls:     c.versionsCalls,
		VersionsCacheHits: c.versionsHits,
		VersionsHitRate:   hitRate(c.versionsHits, c.versionsCalls),

		DepsCalls:     c.depsCalls,
		DepsCacheHits: c.depsHits,
		DepsHitRate:   hitRate(c.depsHits, c.depsCalls),

		TotalCalls:     totalCalls,
		TotalCacheHits: totalHits,
		OverallHitRate: hitRate(totalHits, totalCalls),
	}
}

// ClearCache drops all cached entries and resets call/hit counters, leaving
// the wrapped source untouched.
func (c *CachedSource) ClearCache() {
	c.versionsCache = make(map[Name][]Version)
	c.depsCache = make(map[string][]Term)
	c.versionsCalls, c.versionsHits = 0, 0
	c.depsCalls, c.depsHits = 0, 0
}

var _ Source = (*CachedSource)(nil)
