// Package registry enumerates the playable rule variants. Variants
// register themselves at init, so the CLI and the SSH server discover
// them without hardcoded switch statements.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/emirpasha/sokak-snake/internal/game"
)

// Variant describes one playable rule set.
type Variant struct {
	ID       string
	Title    string
	Tunables game.Tunables
}

// NewEngine builds a fresh engine for this variant with the given seed.
func (v Variant) NewEngine(seed int64) *game.Engine {
	return game.New(v.Tunables, rand.New(rand.NewSource(seed)))
}

var (
	mu       sync.RWMutex
	variants = make(map[string]Variant)
)

// Register adds a variant. Panics on a duplicate ID; variants are wired
// at init time and a duplicate is a programming error.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all variants sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get looks up a variant by ID.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks whether a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

func init() {
	Register(Variant{
		ID:       string(game.VariantStreet),
		Title:    "Sokak (wraparound)",
		Tunables: game.StreetTunables(),
	})
	Register(Variant{
		ID:       string(game.VariantClassic),
		Title:    "Klasik (walls)",
		Tunables: game.ClassicTunables(),
	})
}
