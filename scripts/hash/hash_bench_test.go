package main

import (
	"fmt"
	"hash/crc32"
	"hash/fnv"
	"math/rand"
	"testing"

	"github.com/cespare/xxhash/v2"

	"LogSpectra/internal/hashindex"
)

// Micro-benchmark of the string hashes used (or considered) for the
// open-addressed index, over keys shaped like the real ones: two-octet
// network prefixes and full dotted-quad addresses.

const tableSize = 65521

func genKeys(n int, full bool) []string {
	rng := rand.New(rand.NewSource(17371))
	keys := make([]string, n)
	for i := range keys {
		if full {
			keys[i] = fmt.Sprintf("%d.%d.%d.%d", rng.Intn(256), rng.Intn(256), rng.Intn(256), rng.Intn(256))
		} else {
			keys[i] = fmt.Sprintf("%d.%d", rng.Intn(256), rng.Intn(256))
		}
	}
	return keys
}

func BenchmarkPolyHash(b *testing.B) {
	keys := genKeys(1024, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hashindex.PolyHash(keys[i%len(keys)], tableSize)
	}
}

func BenchmarkTwoPrimeHash(b *testing.B) {
	keys := genKeys(1024, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hashindex.TwoPrimeHash(keys[i%len(keys)], tableSize)
	}
}

func BenchmarkFNV32a(b *testing.B) {
	keys := genKeys(1024, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := fnv.New32a()
		h.Write([]byte(keys[i%len(keys)]))
		_ = h.Sum32() % tableSize
	}
}

func BenchmarkCRC32(b *testing.B) {
	keys := genKeys(1024, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = crc32.ChecksumIEEE([]byte(keys[i%len(keys)])) % tableSize
	}
}

func BenchmarkXxhash(b *testing.B) {
	keys := genKeys(1024, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = uint32(xxhash.Sum64String(keys[i%len(keys)])) % tableSize
	}
}

// TestUniformity reports the coefficient of variation of bucket
// occupancy for each candidate hash over prefix-shaped keys. Lower is
// better; anything near the Poisson baseline is acceptable for linear
// probing at our load factors.
func TestUniformity(t *testing.T) {
	const numBuckets = 1 << 10

	hashes := map[string]func(string) uint32{
		"poly131": func(s string) uint32 { return hashindex.PolyHash(s, numBuckets) },
		"2prime":  func(s string) uint32 { return hashindex.TwoPrimeHash(s, numBuckets) },
		"xxhash":  func(s string) uint32 { return uint32(xxhash.Sum64String(s)) % numBuckets },
	}

	keys := genKeys(1_000_000, false)

	for name, hash := range hashes {
		buckets := make([]int, numBuckets)
		for _, key := range keys {
			buckets[hash(key)]++
		}

		sum := 0
		for _, cnt := range buckets {
			sum += cnt
		}
		avg := float64(sum) / float64(numBuckets)

		var variance float64
		for _, cnt := range buckets {
			diff := float64(cnt) - avg
			variance += diff * diff
		}
		std := variance / float64(numBuckets)
		cv := std / avg

		t.Logf("%s: avg = %.2f, std = %.2f, CV = %.4f", name, avg, std, cv)
	}
}
