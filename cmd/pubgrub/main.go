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

// Command pubgrub solves a dependency manifest and prints the resulting
// version assignment, or a detailed explanation when none exists.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	pubgrub "github.com/contriboss/pubgrub-go"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pubgrub",
		Short: "Resolve package dependencies with the PubGrub algorithm",
	}

	root.AddCommand(newSolveCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var (
		manifestPath string
		rootName     string
		rootVersion  string
		collapsed    bool
		verbose      bool
		maxSteps     int
		cacheSize    int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Resolve the dependency set for a manifest's root package",
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := pubgrub.LoadManifestSource(manifestPath)
			if err != nil {
				return err
			}

			source := pubgrub.Source(manifest)
			if cacheSize > 0 {
				source = pubgrub.NewLRUCachedSource(manifest, cacheSize)
			}

			root := pubgrub.NewRootSource()
			root.AddPackage(pubgrub.MakeName(rootName), pubgrub.EqualsCondition{
				Version: pubgrub.SimpleVersion(rootVersion),
			})

			opts := []pubgrub.SolverOption{
				pubgrub.WithIncompatibilityTracking(true),
			}
			if maxSteps > 0 {
				opts = append(opts, pubgrub.WithMaxSteps(maxSteps))
			}
			if verbose {
				logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
				opts = append(opts, pubgrub.WithLogger(logger))
			}

			solver := pubgrub.NewSolverWithOptions([]pubgrub.Source{root, source}, opts...)

			solution, err := solver.Solve(root.Term())
			if err != nil {
				nsErr, ok := err.(*pubgrub.NoSolutionError)
				if ok && collapsed {
					nsErr = nsErr.WithReporter(&pubgrub.CollapsedReporter{})
					return nsErr
				}
				return err
			}

			for _, nv := range solution {
				if nv.Name == pubgrub.MakeName("$$root") {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", nv.Name.Value(), nv.Version)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "pubgrub.toml", "path to the TOML package manifest")
	cmd.Flags().StringVar(&rootName, "root", "root", "name of the root package to resolve")
	cmd.Flags().StringVar(&rootVersion, "root-version", "1.0.0", "version to assign the root package")
	cmd.Flags().BoolVar(&collapsed, "collapsed", false, "use the collapsed failure reporter")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log solver internals to stderr")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "maximum solver iterations (0 = solver's built-in default)")
	cmd.Flags().IntVar(&cacheSize, "cache-size", 0, "bound the manifest source with an LRU cache of this many entries (0 = no cache)")

	return cmd
}
