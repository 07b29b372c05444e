package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"LogSpectra/internal/config"
	"LogSpectra/internal/engine"
	"LogSpectra/internal/engine/impl/netsummary"
	"LogSpectra/internal/model"
)

// ls-netquery ingests the access log and then answers per-network
// summary queries from standard input. The query protocol is an
// integer N followed by N network prefixes; each answer is the echoed
// prefix, the access count, the connection count and the unique host
// IPs ascending, or the echoed prefix and "Network not found". Answers
// are separated by one blank line, with none after the last.
func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	task := netsummary.New(cfg.Analyzer.NetSummary.TableSize)
	eng := engine.New([]model.Task{task})
	if err := eng.IngestFile(cfg.Input.Path); err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}

	in := bufio.NewScanner(os.Stdin)
	in.Split(bufio.ScanWords)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	countStr, ok := nextWord(in)
	if !ok {
		return
	}
	n, err := strconv.Atoi(countStr)
	if err != nil {
		log.Fatalf("Invalid query count %q: %v", countStr, err)
	}

	for i := 0; i < n; i++ {
		query, ok := nextWord(in)
		if !ok {
			return
		}
		if i > 0 {
			fmt.Fprintln(out)
		}

		summary, found := task.Summary(query)
		if !found {
			fmt.Fprintln(out, query)
			fmt.Fprintln(out, "Network not found")
			continue
		}

		fmt.Fprintln(out, summary.Network)
		fmt.Fprintln(out, summary.AccessCount)
		fmt.Fprintln(out, summary.ConnectionCount)
		for _, ip := range summary.UniqueIPs {
			fmt.Fprintln(out, ip)
		}
	}
}

func nextWord(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}
	return in.Text(), true
}
