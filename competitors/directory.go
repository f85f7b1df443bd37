package competitors

import (
	"strings"

	"seoagent/types"
)

// Directory is a read-only product → competitor mapping. Construct it once
// from configuration and share it freely; lookups are pure.
type Directory struct {
	byProduct map[string][]types.Competitor
	order     []string
}

// NewDirectory builds a directory from a configured mapping. The order slice
// fixes how products are listed; products missing from it are appended in
// map order last so nothing configured is ever unreachable.
func NewDirectory(byProduct map[string][]types.Competitor, order []string) *Directory {
	d := &Directory{
		byProduct: make(map[string][]types.Competitor, len(byProduct)),
		order:     make([]string, 0, len(byProduct)),
	}
	seen := make(map[string]bool, len(byProduct))
	for _, p := range order {
		if _, ok := byProduct[p]; ok && !seen[p] {
			d.order = append(d.order, p)
			seen[p] = true
		}
	}
	for p := range byProduct {
		if !seen[p] {
			d.order = append(d.order, p)
			seen[p] = true
		}
	}
	for p, comps := range byProduct {
		list := make([]types.Competitor, len(comps))
		copy(list, comps)
		d.byProduct[p] = list
	}
	return d
}

// Products returns the known product identifiers in configuration order.
func (d *Directory) Products() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Lookup returns the competitors for a product in configuration order.
// Unknown products are a caller error.
func (d *Directory) Lookup(product string) ([]types.Competitor, error) {
	comps, ok := d.byProduct[product]
	if !ok {
		return nil, types.NewValidationError("product",
			"unknown product "+product+", valid options: "+strings.Join(d.order, ", "))
	}
	out := make([]types.Competitor, len(comps))
	copy(out, comps)
	return out, nil
}
