package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
)

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var reasons = []string{
	"Failed password for admin",
	"Failed password for root",
	"Failed password for illegal user guest",
	"Illegal user",
	"Invalid user admin from unknown",
	"Connection closed by peer",
	"Connection reset by peer",
	"Did not receive identification string",
	"timeout",
}

func main() {
	outputFile := flag.String("o", "bitacora.txt", "Output log file path")
	lineCount := flag.Int("c", 1000, "Number of log lines to generate")
	networkCount := flag.Int("n", 12, "Number of distinct /16 networks to draw from")
	hostsPerNetwork := flag.Int("p", 8, "Number of distinct hosts per network")
	seed := flag.Int64("seed", 1, "RNG seed")
	flag.Parse()

	f, err := os.Create(*outputFile)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(*seed))

	// Pre-build a clustered address pool so the generated log has
	// repeated hosts and busy networks, like a real access log.
	networks := make([][2]int, *networkCount)
	for i := range networks {
		networks[i] = [2]int{rng.Intn(223) + 1, rng.Intn(256)}
	}
	hosts := make([]string, 0, (*networkCount)*(*hostsPerNetwork))
	for _, network := range networks {
		for j := 0; j < *hostsPerNetwork; j++ {
			hosts = append(hosts, fmt.Sprintf("%d.%d.%d.%d", network[0], network[1], rng.Intn(256), rng.Intn(256)))
		}
	}

	log.Printf("Generating %d lines into %s...", *lineCount, *outputFile)

	w := bufio.NewWriter(f)
	for i := 0; i < *lineCount; i++ {
		month := months[rng.Intn(len(months))]
		day := rng.Intn(28) + 1
		hour := rng.Intn(24)
		min := rng.Intn(60)
		sec := rng.Intn(60)
		host := hosts[rng.Intn(len(hosts))]
		port := rng.Intn(65535-1024) + 1024
		reason := reasons[rng.Intn(len(reasons))]

		fmt.Fprintf(w, "%s %d %02d:%02d:%02d %s:%d %s\n", month, day, hour, min, sec, host, port, reason)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to flush output file: %v", err)
	}

	log.Printf("Done.")
}
