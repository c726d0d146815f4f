// hexkudo-gen generates puzzles in batch and prints them as JSON, for
// pre-baked puzzle packs and daily-seed pipelines.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/hexkudo/internal/builder"
	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/grid"
	"svw.info/hexkudo/internal/pathgen"
	"svw.info/hexkudo/internal/solver"
)

var (
	numPuzzles int
	shapeStr   string
	size       int
	diffStr    string
	seed       int64
	outputFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hexkudo-gen",
		Short: "Generate hexkudo puzzles",
		Long: `Generate one or more hexkudo puzzles at a target difficulty.

Examples:
  hexkudo-gen --shape hexagon --size 2 --difficulty medium
  hexkudo-gen -n 5 --seed 42 -o puzzles.json`,
		RunE: runGen,
	}

	rootCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	rootCmd.Flags().StringVar(&shapeStr, "shape", "hexagon", "Board shape: hexagon|triangle|parallelogram")
	rootCmd.Flags().IntVar(&size, "size", 2, "Board size (hexagon radius or side length)")
	rootCmd.Flags().StringVarP(&diffStr, "difficulty", "d", "medium", "Target difficulty: easy|medium|hard|expert")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Base seed (0 = random); puzzle i uses seed+i")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default stdout)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseShape(s string) (domain.Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hexagon":
		return domain.ShapeHexagon, nil
	case "triangle":
		return domain.ShapeTriangle, nil
	case "parallelogram", "rhombus":
		return domain.ShapeParallelogram, nil
	default:
		return 0, fmt.Errorf("unknown shape %q", s)
	}
}

func parseDifficulty(s string) (domain.Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy, nil
	case "medium":
		return domain.Medium, nil
	case "hard":
		return domain.Hard, nil
	case "expert":
		return domain.Expert, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
}

func runGen(cmd *cobra.Command, args []string) error {
	shape, err := parseShape(shapeStr)
	if err != nil {
		return err
	}
	target, err := parseDifficulty(diffStr)
	if err != nil {
		return err
	}
	g, err := grid.Build(shape, size)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return generate(cmd, g, target)
}

func generate(cmd *cobra.Command, g *grid.Grid, target domain.Difficulty) error {
	b := builder.New(pathgen.New(), solver.New(), builder.Options{})

	out := cmd.OutOrStdout()
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	for i := 0; i < numPuzzles; i++ {
		p, stats, err := b.BuildPuzzle(context.Background(), g, target, seed+int64(i))
		if err != nil {
			return fmt.Errorf("puzzle %d: %w", i+1, err)
		}
		if err := enc.Encode(p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "puzzle %d: %d clues, tier %s, %d nodes in %v\n",
			i+1, len(p.Clues), p.Difficulty, stats.Nodes, stats.Duration.Round(time.Millisecond))
	}
	return nil
}
