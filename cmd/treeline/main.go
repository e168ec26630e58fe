// Copyright 2025 Naren Yellavula
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
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

func main() {
	asciiLogo := `
████████╗██████╗ ███████╗███████╗██╗     ██╗███╗   ██╗███████╗
╚══██╔══╝██╔══██╗██╔════╝██╔════╝██║     ██║████╗  ██║██╔════╝
   ██║   ██████╔╝█████╗  █████╗  ██║     ██║██╔██╗ ██║█████╗
   ██║   ██╔══██╗██╔══╝  ██╔══╝  ██║     ██║██║╚██╗██║██╔══╝
   ██║   ██║  ██║███████╗███████╗███████╗██║██║ ╚████║███████╗
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚═╝╚═╝  ╚═══╝╚══════╝
A height-balanced ordered set with a terminal browser [Version: %s%s%s]

Copyright @ Naren Yellavula (Please give us a star ⭐ here: https://github.com/cybrota/treeline)

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdSort = &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort lines of a file through the balanced tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Sort reads one value per line (stdin when no file is given), inserts them into the tree and prints the in-order sequence`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			unique, _ := cmd.Flags().GetBool("unique")
			if err := runSort(path, unique); err != nil {
				log.Fatalf("Error sorting input: %v", err)
			}
		},
	}
	cmdSort.Flags().Bool("unique", false, "pre-filter repeated lines with a bloom filter")

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Exercise the tree with random insertions and removals",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench inserts pseudo-random values, removes a share of them through iterators and reports height and invariant status`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			n, _ := cmd.Flags().GetInt("elements")
			if err := runBench(n); err != nil {
				log.Fatalf("Error running bench: %v", err)
			}
		},
	}
	cmdBench.Flags().IntP("elements", "n", 0, "number of elements to insert (0 uses the configured default)")

	var cmdBrowse = &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse a file's values in sorted order interactively",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Browse loads one value per line into the tree and opens an interactive in-order browser with search and delete`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runBrowse(args[0]); err != nil {
				log.Fatalf("Error launching browser: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show treeline configuration settings",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print treeline version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "treeline",
		Version: version,
		Long:    asciiLogo,
	}
	rootCmd.AddCommand(cmdSort, cmdBench, cmdBrowse, cmdSettings, cmdVersion)
	rootCmd.Execute()
}
