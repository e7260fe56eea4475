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

import "fmt"

// NoSolutionError is the detailed failure mode: it carries the root
// Incompatibility of the derivation DAG so a Reporter can explain why no
// solution existed.
type NoSolutionError struct {
	Incompatibility *Incompatibility
	Reporter        Reporter
}

func (e *NoSolutionError) Error() string {
	if e.Incompatibility == nil {
		return "no solution found"
	}
	return e.reporterOrDefault().Report(e.Incompatibility)
}

func (e *NoSolutionError) reporterOrDefault() Reporter {
	if e.Reporter != nil {
		return e.Reporter
	}
	return &DefaultReporter{}
}

// WithReporter returns a copy of e that formats its message with reporter.
func (e *NoSolutionError) WithReporter(reporter Reporter) *NoSolutionError {
	return &NoSolutionError{Incompatibility: e.Incompatibility, Reporter: reporter}
}

func (e *NoSolutionError) Unwrap() error {
	return nil
}

// NewNoSolutionError wraps incomp as a NoSolutionError with the default reporter.
func NewNoSolutionError(incomp *Incompatibility) *NoSolutionError {
	return &NoSolutionError{Incompatibility: incomp, Reporter: &DefaultReporter{}}
}

// VersionError reports a malformed or unsatisfiable version constraint.
type VersionError struct {
	Package Name
	Message string
}

func (e *VersionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("version error for package %s", e.Package.Value())
	}
	return fmt.Sprintf("%s: %s", e.Package.Value(), e.Message)
}

// DependencyError wraps a Source error encountered while fetching a
// package version's dependencies.
type DependencyError struct {
	Package Name
	Version Version
	Err     error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("failed to get dependencies for %s %s: %v", e.Package.Value(), e.Version, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// PackageNotFoundError indicates that a package is absent from the source.
type PackageNotFoundError struct {
	Package Name
}

func (e *PackageNotFoundError) Error() string {
	return fmt.Sprintf("package %s not found", e.Package.Value())
}

// PackageVersionNotFoundError indicates a specific version is unavailable.
type PackageVersionNotFoundError struct {
	Package Name
	Version Version
}

func (e *PackageVersionNotFoundError) Error() string {
	return fmt.Sprintf("package %s version %s not found", e.Package.Value(), e.Version)
}

// ErrNoSolutionFound is the plain failure mode returned when incompatibility
// tracking is disabled. Enable WithIncompatibilityTracking for a NoSolutionError
// with a full derivation tree instead.
type ErrNoSolutionFound struct {
	Term Term
}

func (e ErrNoSolutionFound) Error() string {
	return fmt.Sprintf("no solution found for %s", e.Term)
}

// ErrIterationLimit is returned when the solver exceeds SolverOptions.MaxSteps.
// Configure WithMaxSteps(0) to disable the limit on trusted inputs.
type ErrIterationLimit struct {
	Steps int
}

func (e ErrIterationLimit) Error() string {
	if e.Steps <= 0 {
		return "solver exceeded iteration limit"
	}
	return fmt.Sprintf("solver exceeded iteration limit after %d steps", e.Steps)
}

var (
	_ error = (*NoSolutionError)(nil)
	_ error = (*VersionError)(nil)
	_ error = (*DependencyError)(nil)
	_ error = (*PackageNotFoundError)(nil)
	_ error = (*PackageVersionNotFoundError)(nil)
	_ error = ErrNoSolutionFound{}
	_ error = ErrIterationLimit{}
)
