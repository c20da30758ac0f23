package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/botpilothq/console/internal/entity"
)

func testCatalog() *Catalog {
	return New([]entity.Bot{
		{ID: "a", Name: "Inbox Concierge", Tagline: "Sorts your mail", Category: "Email"},
		{ID: "b", Name: "Review Radar", Tagline: "Watches review sites", Category: "Reputation"},
		{ID: "c", Name: "Booking Butler", Tagline: "Handles appointments", Category: "Scheduling"},
		{ID: "d", Name: "Quote Bot", Tagline: "Email quotes in minutes", Category: "Sales"},
	})
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	c := testCatalog()
	assert.Len(t, c.Search(""), 4)
	assert.Len(t, c.Search("   "), 4)
}

func TestSearchMatchesNameTaglineCategory(t *testing.T) {
	c := testCatalog()

	assert.Len(t, c.Search("RADAR"), 1, "name, case folded")
	assert.Len(t, c.Search("appointments"), 1, "tagline")
	assert.Len(t, c.Search("sales"), 1, "category")
	assert.Len(t, c.Search("email"), 2, "category and tagline hits")
	assert.Empty(t, c.Search("blockchain"))
}

func TestCompareLimit(t *testing.T) {
	c := testCatalog()

	bots, err := c.Compare("a", "b", "c")
	assert.NoError(t, err)
	assert.Len(t, bots, 3)

	_, err = c.Compare("a", "b", "c", "d")
	assert.ErrorIs(t, err, ErrCompareLimit)
}

func TestCompareDropsUnknownAndDuplicates(t *testing.T) {
	c := testCatalog()

	bots, err := c.Compare("a", "a", "ghost", "b")
	assert.NoError(t, err)
	assert.Len(t, bots, 2)
	assert.Equal(t, "a", bots[0].ID)
	assert.Equal(t, "b", bots[1].ID)
}

func TestCategoriesSortedUnique(t *testing.T) {
	c := New(append(testCatalog().All(), entity.Bot{ID: "e", Name: "Second Mailer", Category: "Email"}))
	assert.Equal(t, []string{"Email", "Reputation", "Sales", "Scheduling"}, c.Categories())
}

func TestDefaultBotsHaveUniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for _, b := range DefaultBots() {
		_, dup := seen[b.ID]
		assert.False(t, dup, "duplicate bot id %s", b.ID)
		seen[b.ID] = struct{}{}
		assert.NotEmpty(t, b.Name)
		assert.Positive(t, b.PriceCents)
	}
}
