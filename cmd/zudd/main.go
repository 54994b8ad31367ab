// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command zudd is a small demonstration driver for the zudd library. Its
// queens subcommand encodes the n-queens problem as a family of placements
// and reports the number of solutions together with the engine statistics.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dalzilio/zudd"
)

// Config tunes the engine used by the subcommands. All fields are optional.
type Config struct {
	InitialCapacity int `yaml:"initial_capacity"`
	CacheSize       int `yaml:"cache_size"`
}

var (
	config     Config
	configPath string
	printCubes bool
	dotFile    string
)

var rootCmd = &cobra.Command{
	Use:   "zudd",
	Short: "Explore families of sets encoded as zero-suppressed decision diagrams",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configPath == "" {
			return
		}
		yamlFile, err := os.ReadFile(configPath)
		if err != nil {
			log.Fatalf("Error reading %s: %v", configPath, err)
		}
		if err := yaml.Unmarshal(yamlFile, &config); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
	},
}

var queensCmd = &cobra.Command{
	Use:   "queens N",
	Short: "Count the solutions of the n-queens problem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("N must be a positive integer, got %q", args[0])
		}
		b := newEngine(n * n * 64)
		solution := queens(b, n)
		if err := b.Err(); err != nil {
			return err
		}
		fmt.Printf("%d-queens has %d solutions\n", n, b.Count(b.IncRef(solution)))
		if printCubes {
			resolver := b.Resolver()
			b.VisitCubes(solution, func(cube []int) bool {
				fmt.Println("  " + zudd.CubeName(resolver, cube))
				return true
			})
		}
		if dotFile != "" {
			if err := b.FPrintDot(dotFile, solution); err != nil {
				return err
			}
		}
		fmt.Println(b.Stats())
		return nil
	},
}

var universeCmd = &cobra.Command{
	Use:   "universe N",
	Short: "Print the family of all subsets of N variables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("N must be a positive integer, got %q", args[0])
		}
		b := newEngine(1 << 10)
		for i := 0; i < n; i++ {
			b.CreateVar()
		}
		u := b.IncRef(b.Universe())
		if err := b.Err(); err != nil {
			return err
		}
		fmt.Printf("%d subsets: %s\n", b.Count(u), b.String(u))
		return nil
	},
}

func newEngine(capacity int) *zudd.ZDD {
	if config.InitialCapacity > 0 {
		capacity = config.InitialCapacity
	}
	cachesize := 1 << 16
	if config.CacheSize > 0 {
		cachesize = config.CacheSize
	}
	return zudd.New(
		zudd.Capacity(capacity),
		zudd.Cache(zudd.NewFastCache(cachesize)),
	)
}

// queens builds the family of all valid placements of n queens, one
// variable per square, one combination per solution. Rows are placed one at
// a time; a square is allowed only when no earlier row attacks it.
func queens(b *zudd.ZDD, n int) int {
	vars := make([][]int, n)
	for r := range vars {
		vars[r] = make([]int, n)
		for c := range vars[r] {
			vars[r][c] = b.CreateVar()
		}
	}

	solution := zudd.Base
	for s := 0; s < n; s++ {
		tmp := zudd.Empty
		b.IncRef(solution)
		for c := 0; c < n; c++ {
			sc := solution
			tmp0 := b.IncRef(tmp)
			for r := 0; r < s; r++ {
				sc = b.Subset0(sc, vars[r][c])
				if ct := c - (s - r); ct >= 0 {
					sc = b.Subset0(sc, vars[r][ct])
				}
				if ct := c + (s - r); ct < n {
					sc = b.Subset0(sc, vars[r][ct])
				}
			}
			tmp = b.Union(tmp0, b.Change(sc, vars[s][c]))
			b.DecRef(tmp0)
		}
		b.DecRef(solution)
		solution = tmp
	}
	return solution
}

func main() {
	queensCmd.Flags().BoolVar(&printCubes, "cubes", false, "print one line per solution")
	queensCmd.Flags().StringVar(&dotFile, "dot", "", "write the solution DAG to a DOT file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file tuning the engine")
	rootCmd.AddCommand(queensCmd)
	rootCmd.AddCommand(universeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
