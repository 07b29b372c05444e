package main

import (
	"flag"
	"log"
	"os"

	"LogSpectra/internal/config"
	"LogSpectra/internal/engine"
	"LogSpectra/internal/engine/impl/timeline"
	"LogSpectra/internal/factory"
	"LogSpectra/internal/model"

	_ "LogSpectra/internal/engine/impl/hostgraph"
	_ "LogSpectra/internal/engine/impl/netsummary"
	_ "LogSpectra/internal/engine/impl/topk"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	flag.Parse()

	log.Println("Starting ls-engine...")

	// 1. Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	// 2. Build the configured tasks
	tasks, err := factory.Create(cfg)
	if err != nil {
		log.Fatalf("Failed to create tasks: %v", err)
	}

	// 3. Ingest the log file once, sequentially
	eng := engine.New(tasks)
	if err := eng.IngestFile(cfg.Input.Path); err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}

	// 4. Emit results: batch reports to stdout, the sorted dump to its
	// configured file.
	for _, task := range tasks {
		switch t := task.(type) {
		case *timeline.Task:
			t.Sort()
			if err := t.WriteSorted(); err != nil {
				log.Fatalf("Failed to write sorted dump: %v", err)
			}
		case model.Reporter:
			if err := t.WriteReport(os.Stdout); err != nil {
				log.Fatalf("Failed to write report for task '%s': %v", task.Name(), err)
			}
		}
	}
}
