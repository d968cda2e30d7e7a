// Package explain turns ranked breeds into short human-readable
// explanations built from each breed's strongest raw traits.
package explain

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"pawmatch/internal/breed"
	"pawmatch/internal/rank"
)

// DefaultTopTraits is how many of a breed's highest-scoring traits are
// cited in its explanation.
const DefaultTopTraits = 3

// Explanation pairs a breed name with its rendered explanation text.
type Explanation struct {
	Breed string
	Text  string
}

// Composer renders explanations from the trait table and the trait
// description lookup. Both are the immutable start-up artifacts.
type Composer struct {
	table        *breed.Table
	descriptions map[string]string
	topTraits    int
	log          *zap.Logger
}

// NewComposer creates a Composer. topTraits <= 0 uses DefaultTopTraits.
func NewComposer(table *breed.Table, descriptions map[string]string, topTraits int, log *zap.Logger) *Composer {
	if topTraits <= 0 {
		topTraits = DefaultTopTraits
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{
		table:        table,
		descriptions: descriptions,
		topTraits:    topTraits,
		log:          log,
	}
}

// Explain renders one explanation per ranked breed, in ranking order.
// A ranked name that is missing from the trait table is skipped with a
// diagnostic instead of aborting the batch.
func (c *Composer) Explain(ranked []rank.RankedBreed) []Explanation {
	results := make([]Explanation, 0, len(ranked))
	for _, rb := range ranked {
		rec, ok := c.table.Lookup(rb.Name)
		if !ok {
			c.log.Warn("ranked breed missing from trait table, skipping explanation",
				zap.String("breed", rb.Name))
			continue
		}
		results = append(results, Explanation{
			Breed: rec.Name,
			Text:  c.render(rec),
		})
	}
	return results
}

// render builds the bullet-style explanation for one breed from its
// highest raw trait scores. Ties keep table column order.
func (c *Composer) render(rec breed.Record) string {
	order := make([]int, len(rec.Scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return rec.Scores[order[i]] > rec.Scores[order[j]]
	})

	top := c.topTraits
	if top > len(order) {
		top = len(order)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n🐶 **%s**:\n", rec.Name)
	for n, idx := range order[:top] {
		trait := c.table.TraitNames[idx]
		desc, ok := c.descriptions[trait]
		if !ok {
			c.log.Debug("no description for trait", zap.String("trait", trait))
		}
		if n > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- **%s**: %s", trait, desc)
	}
	return b.String()
}
