package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// StockEntry describes the pool stock wanted for one collectible kind.
// Count tops the free stock up to that many rows with generated serials;
// Serials inserts exactly the listed serials.
type StockEntry struct {
	Kind    string   `yaml:"kind"`
	Count   int64    `yaml:"count"`
	Serials []string `yaml:"serials"`
}

// StockFile is the on-disk layout of the pool seed file
type StockFile struct {
	Collectibles []StockEntry `yaml:"collectibles"`
}

// Batch is one insert against the pool
type Batch struct {
	Kind    string
	Serials []string
}

func loadStockFile(path string) (*StockFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stock file: %w", err)
	}
	return parseStockFile(data)
}

func parseStockFile(data []byte) (*StockFile, error) {
	var f StockFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse stock file: %w", err)
	}
	if len(f.Collectibles) == 0 {
		return nil, errors.New("stock file lists no collectibles")
	}

	seen := make(map[string]bool, len(f.Collectibles))
	for _, e := range f.Collectibles {
		if e.Kind == "" {
			return nil, errors.New("stock entry is missing kind")
		}
		if seen[e.Kind] {
			return nil, fmt.Errorf("kind %q is listed more than once", e.Kind)
		}
		seen[e.Kind] = true
		if e.Count < 0 {
			return nil, fmt.Errorf("kind %q has negative count", e.Kind)
		}
		if e.Count > 0 && len(e.Serials) > 0 {
			return nil, fmt.Errorf("kind %q sets both count and serials", e.Kind)
		}
	}
	return &f, nil
}

// plan turns the stock file into inserts given the free stock per kind.
// Count entries only add the shortfall, so running the tool twice is a no-op.
func plan(f *StockFile, available map[string]int64, newSerial func(kind string) string) []Batch {
	var batches []Batch
	for _, e := range f.Collectibles {
		if len(e.Serials) > 0 {
			batches = append(batches, Batch{Kind: e.Kind, Serials: e.Serials})
			continue
		}
		missing := e.Count - available[e.Kind]
		if missing <= 0 {
			continue
		}
		serials := make([]string, 0, missing)
		for i := int64(0); i < missing; i++ {
			serials = append(serials, newSerial(e.Kind))
		}
		batches = append(batches, Batch{Kind: e.Kind, Serials: serials})
	}
	sort.SliceStable(batches, func(i, j int) bool { return batches[i].Kind < batches[j].Kind })
	return batches
}

func uuidSerial(kind string) string {
	return kind + "-" + uuid.NewString()
}

// unknownKinds lists stock kinds that no case prize can grant
func unknownKinds(f *StockFile, known map[string]bool) []string {
	var out []string
	for _, e := range f.Collectibles {
		if !known[e.Kind] {
			out = append(out, e.Kind)
		}
	}
	return out
}
