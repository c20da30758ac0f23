package catalog

import (
	"errors"
	"sort"
	"strings"

	"github.com/botpilothq/console/internal/entity"
)

// ErrCompareLimit caps side-by-side comparison at three bots.
var ErrCompareLimit = errors.New("compare supports at most 3 bots")

const CompareLimit = 3

// Catalog is the public product listing. It is read-mostly and lives in
// memory; the operator console and the public site both search it.
type Catalog struct {
	bots []entity.Bot
}

func New(bots []entity.Bot) *Catalog {
	return &Catalog{bots: bots}
}

func (c *Catalog) All() []entity.Bot {
	out := make([]entity.Bot, len(c.bots))
	copy(out, c.bots)
	return out
}

func (c *Catalog) Get(id string) (entity.Bot, bool) {
	for _, b := range c.bots {
		if b.ID == id {
			return b, true
		}
	}
	return entity.Bot{}, false
}

// Search matches a lowercased substring against name, tagline and category.
// An empty query returns everything, in listing order.
func (c *Catalog) Search(query string) []entity.Bot {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}

	out := make([]entity.Bot, 0, len(c.bots))
	for _, b := range c.bots {
		if strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(b.Tagline), q) ||
			strings.Contains(strings.ToLower(b.Category), q) {
			out = append(out, b)
		}
	}
	return out
}

func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, b := range c.bots {
		if _, ok := seen[b.Category]; ok {
			continue
		}
		seen[b.Category] = struct{}{}
		out = append(out, b.Category)
	}
	sort.Strings(out)
	return out
}

// Compare resolves up to three bots for the side-by-side table. Unknown
// identifiers are dropped, duplicates count once.
func (c *Catalog) Compare(ids ...string) ([]entity.Bot, error) {
	seen := make(map[string]struct{}, len(ids))
	var out []entity.Bot
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		b, ok := c.Get(id)
		if !ok {
			continue
		}
		if len(out) == CompareLimit {
			return nil, ErrCompareLimit
		}
		out = append(out, b)
	}
	return out, nil
}
