//go:build ignore

// Command gen_demo_tasks writes a generated task history to a CSV file.
//
// Usage:
//
//	go run ./scripts/gen_demo_tasks.go --scenario steady --weeks 8 --out tasks.csv
//
// The output file must not exist yet.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pablasso/tempo/internal/demo"
	"github.com/pablasso/tempo/internal/task"
)

func main() {
	var (
		scenario string
		weeks    int
		outPath  string
		seed     int64
	)

	flag.StringVar(&scenario, "scenario", string(demo.ScenarioSteady), "Data shape: steady|crunch|sparse")
	flag.IntVar(&weeks, "weeks", 8, "Number of weeks of history")
	flag.StringVar(&outPath, "out", "tasks.csv", "Output CSV path")
	flag.Int64Var(&seed, "seed", demo.DefaultSeed, "Random seed")
	flag.Parse()

	if err := run(scenario, weeks, outPath, seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scenario string, weeks int, outPath string, seed int64) error {
	s, err := demo.ParseScenario(scenario)
	if err != nil {
		return err
	}
	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("%s already exists", outPath)
	}

	tasks, err := demo.Tasks(s, weeks, time.Now(), seed)
	if err != nil {
		return err
	}

	store, err := task.OpenCSVStore(outPath)
	if err != nil {
		return err
	}
	for i, t := range tasks {
		if err := store.Append(t); err != nil {
			return err
		}
		if t.IsDone() {
			if err := task.MarkDone(store, i); err != nil {
				return err
			}
		}
	}

	fmt.Printf("Wrote %d tasks to %s\n", len(tasks), outPath)
	return nil
}
