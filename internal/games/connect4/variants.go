package connect4

import "github.com/vovakirdan/connect4/internal/registry"

// ClassicVariant is the ID of the standard 6x7 board.
const ClassicVariant = "classic"

func init() {
	registry.Register(registry.Variant{ID: ClassicVariant, Title: "Classic (6x7)", Height: DefaultHeight, Width: DefaultWidth})
	registry.Register(registry.Variant{ID: "small", Title: "Small (4x5)", Height: 4, Width: 5})
	registry.Register(registry.Variant{ID: "wide", Title: "Wide (6x9)", Height: 6, Width: 9})
	registry.Register(registry.Variant{ID: "tall", Title: "Tall (8x7)", Height: 8, Width: 7})
	registry.Register(registry.Variant{ID: "square", Title: "Square (8x8)", Height: 8, Width: 8})
}
