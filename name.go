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

import "unique"

// Name is an interned package name: equal strings intern to the same
// handle, so the solver's trail and incompatibility maps can key on Name
// with pointer-speed equality instead of repeated string comparison.
type Name = unique.Handle[string]

// MakeName interns s, returning a Name equal to any other MakeName call on
// the same string.
func MakeName(s string) Name {
	return unique.Make(s)
}

// EmptyName is the interned empty string, used as a sentinel "no package"
// value (e.g. the not-found return from nextDecisionCandidate).
func EmptyName() Name {
	return unique.Make("")
}
