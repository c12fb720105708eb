// Package catalog holds the static merchandise catalog. Entries are
// compile-time configuration and are never created or mutated at runtime.
package catalog

type Entry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        int      `json:"price"`
	Images       []string `json:"images"`
	RequiresSize bool     `json:"requiresSize"`
}

// Sizes is the allowed size set for entries with RequiresSize.
var Sizes = []string{"S", "M", "L", "XL", "XXL"}

var entries = []Entry{
	{
		ID:           "1",
		Name:         "Unit Hoodie",
		Price:        120,
		Images:       []string{"/image/products/hoodie-1.png", "/image/products/hoodie-2.png"},
		RequiresSize: true,
	},
	{
		ID:           "2",
		Name:         "Dri-Fit Shirt",
		Price:        50,
		Images:       []string{"/image/products/drifit-1.png", "/image/products/drifit-2.png", "/image/products/drifit-3.png"},
		RequiresSize: true,
	},
	{
		ID:           "3",
		Name:         "Dri-Fit Long Sleeve",
		Price:        60,
		Images:       []string{"/image/products/drifit-ls-1.png", "/image/products/drifit-ls-2.png"},
		RequiresSize: true,
	},
	{
		ID:           "4",
		Name:         "Tactical Cap",
		Price:        40,
		Images:       []string{"/image/products/cap-1.png", "/image/products/cap-2.png", "/image/products/cap-3.png"},
		RequiresSize: false,
	},
	{
		ID:           "5",
		Name:         "Unit Patch",
		Price:        20,
		Images:       []string{"/image/products/patch-1.png", "/image/products/patch-2.png"},
		RequiresSize: false,
	},
}

// Entries returns a copy of the catalog so callers cannot mutate it.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func Lookup(id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

func ValidSize(size string) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}
