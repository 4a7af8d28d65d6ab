package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/sd/pkg/adapters/fs"
	"github.com/aretw0/sd/pkg/adapters/markdown"
	"github.com/aretw0/sd/pkg/core"
)

func main() {
	notes := flag.Int("notes", 100, "Number of notes to generate")
	entries := flag.Int("entries", 200, "Entries appended to each note")
	keep := flag.Bool("keep", false, "Keep the benchmark directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "sd_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	storage := fs.NewStorage(fs.Config{Logger: logger})

	fmt.Printf("Generating %d notes with %d entries each in %s...\n", *notes, *entries, benchDir)

	// Entries are spread over days so every append has to find the last
	// day-section of a growing note.
	start := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local)
	startAppend := time.Now()
	for i := 0; i < *notes; i++ {
		note := core.NewNoteRef(benchDir, fmt.Sprintf("note_%d", i))
		content, err := core.RenderTemplate(fmt.Sprintf("Note %d", i), core.FormatDate(start))
		if err != nil {
			panic(err)
		}
		if err := storage.Create(note.Path(), []byte(content)); err != nil {
			panic(err)
		}

		for j := 0; j < *entries; j++ {
			now := start.Add(time.Duration(j) * 3 * time.Hour)
			data, err := storage.Read(note.Path())
			if err != nil {
				panic(err)
			}
			last, ok := core.LastDate(string(data))
			block := core.FormatEntry(last, ok, now, fmt.Sprintf("entry %d", j))
			if err := storage.Append(note.Path(), []byte(block)); err != nil {
				panic(err)
			}
		}
	}
	appendDuration := time.Since(startAppend)
	total := *notes * *entries

	fmt.Println("Running outline collection...")
	startList := time.Now()
	outlines, err := markdown.Collect(storage, benchDir)
	if err != nil {
		panic(err)
	}
	listDuration := time.Since(startList)

	counted := 0
	for _, o := range outlines {
		counted += o.Entries
	}
	if counted != total {
		fmt.Printf("WARNING: expected %d entries, outlines report %d\n", total, counted)
	}

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes, %d entries):\n", len(outlines), total)
	fmt.Printf("  Append:  %v (%v/entry)\n", appendDuration, appendDuration/time.Duration(max(total, 1)))
	fmt.Printf("  Outline: %v\n", listDuration)
	fmt.Printf("  Storage: %+v\n", storage.State())
	fmt.Printf("--------------------------------------------------\n")
}
