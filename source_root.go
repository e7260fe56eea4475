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

// rootPackageName and rootPackageVersion identify the synthetic package
// RootSource exposes so the solver can treat the caller's top-level
// requirements the same way it treats any other dependency.
var rootPackageName = MakeName("$$root")

const rootPackageVersion = SimpleVersion("1")

// RootSource holds the caller's initial requirements as dependencies of a
// single virtual package, letting the solver seed itself the same way it
// handles any real package's dependency list.
//
//	root := NewRootSource()
//	root.AddPackage(MakeName("lodash"), EqualsCondition{Version: SimpleVersion("1.0.0")})
//	root.AddPackage(MakeName("moment"), EqualsCondition{Version: SimpleVersion("2.0.0")})
//	solver := NewSolver(root, otherSources...)
//	solution, _ := solver.Solve(root.Term())
type RootSource []Term

func (s RootSource) GetVersions(name Name) ([]Version, error) {
	if name != rootPackageName {
		return nil, &PackageNotFoundError{Package: name}
	}
	return []Version{rootPackageVersion}, nil
}

func (s RootSource) GetDependencies(name Name, version Version) ([]Term, error) {
	if name != rootPackageName {
		return nil, &PackageNotFoundError{Package: name}
	}
	if version != rootPackageVersion {
		return nil, &PackageVersionNotFoundError{Package: name, Version: version}
	}
	return s, nil
}

// AddPackage records one of the caller's top-level requirements.
func (s *RootSource) AddPackage(name Name, condition Condition) {
	*s = append(*s, NewTerm(name, condition))
}

// Term is the seed term passed to Solver.Solve.
func (s *RootSource) Term() Term {
	return NewTerm(rootPackageName, EqualsCondition{rootPackageVersion})
}

func NewRootSource() *RootSource {
	return &RootSource{}
}

var _ Source = &RootSource{}
