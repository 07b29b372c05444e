package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"LogSpectra/internal/config"
	"LogSpectra/internal/engine"
	"LogSpectra/internal/engine/impl/timeline"
	"LogSpectra/internal/model"
	"LogSpectra/internal/netaddr"
)

// ls-range ingests the access log, sorts it by (IP, time, reason),
// writes the full sorted dump, and then answers one IP range query
// from standard input: two dotted-quad bounds in either order, with
// the matching original lines printed in descending sort order.
func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	task := timeline.New(cfg.Analyzer.Timeline.OutputPath)
	eng := engine.New([]model.Task{task})
	if err := eng.IngestFile(cfg.Input.Path); err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}

	task.Sort()
	if err := task.WriteSorted(); err != nil {
		log.Fatalf("Failed to write sorted dump: %v", err)
	}

	in := bufio.NewScanner(os.Stdin)
	in.Split(bufio.ScanWords)

	// No query on stdin is a valid, empty run.
	loStr, ok := nextWord(in)
	if !ok {
		return
	}
	hiStr, ok := nextWord(in)
	if !ok {
		return
	}

	lo, err := netaddr.ParseAddr(loStr)
	if err != nil {
		log.Fatalf("Invalid range bound %q: %v", loStr, err)
	}
	hi, err := netaddr.ParseAddr(hiStr)
	if err != nil {
		log.Fatalf("Invalid range bound %q: %v", hiStr, err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, rec := range task.Range(lo, hi) {
		fmt.Fprintf(out, "%s\n", rec.Raw)
	}
}

func nextWord(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}
	return in.Text(), true
}
