// Package registry provides a global catalog of board variants.
// Variants register themselves in init() functions, allowing the CLI and
// menus to discover board sizes without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Variant is a named board size.
type Variant struct {
	// ID is a unique identifier (e.g., "classic", "wide").
	// Used for CLI arguments and result records.
	ID string

	// Title is a human-readable name for display (e.g., "Classic (6x7)").
	Title string

	Height int
	Width  int
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from an init() function.
// Panics if the ID is already registered or the dimensions are not positive.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.Height <= 0 || v.Width <= 0 {
		panic(fmt.Sprintf("registry: variant %q has invalid size %dx%d", v.ID, v.Height, v.Width))
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}

	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
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

// Lookup returns the variant registered under id.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}

// Custom builds an unregistered variant for ad-hoc board sizes.
func Custom(height, width int) Variant {
	return Variant{
		ID:     fmt.Sprintf("custom-%dx%d", height, width),
		Title:  fmt.Sprintf("Custom (%dx%d)", height, width),
		Height: height,
		Width:  width,
	}
}
