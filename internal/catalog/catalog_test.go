package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsReturnsCopy(t *testing.T) {
	first := Products()
	first[0].Title = "Mutated"

	again := Products()
	assert.Equal(t, "The Midnight Library", again[0].Title, "callers must not be able to mutate the catalog")
}

func TestProductsStableOrder(t *testing.T) {
	list := Products()
	require.Len(t, list, 8)
	for i, p := range list {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Author)
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		if i > 0 {
			assert.NotEqual(t, list[i-1].ID, p.ID)
		}
	}
}

func TestFeaturedPreservesRelativeOrder(t *testing.T) {
	fixture := []Product{
		{ID: "a"},
		{ID: "b", Bestseller: true},
		{ID: "c"},
		{ID: "d", Bestseller: true},
		{ID: "e"},
		{ID: "f"},
		{ID: "g", Bestseller: true},
		{ID: "h"},
	}

	got := featured(fixture)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "d", got[1].ID)
	assert.Equal(t, "g", got[2].ID)
}

func TestFeaturedCatalog(t *testing.T) {
	var wantIDs []string
	for _, p := range Products() {
		if p.Bestseller {
			wantIDs = append(wantIDs, p.ID)
		}
	}

	got := Featured()
	require.Len(t, got, len(wantIDs))
	for i, p := range got {
		assert.Equal(t, wantIDs[i], p.ID)
		assert.True(t, p.Bestseller)
	}
}

func TestFind(t *testing.T) {
	p, ok := Find("6")
	require.True(t, ok)
	assert.Equal(t, "Dune", p.Title)

	_, ok = Find("no-such-id")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string // expected titles, in catalog order
	}{
		{"by author", "osman", []string{"The Thursday Murder Club"}},
		{"by title fragment", "tomorrow", []string{"Tomorrow, and Tomorrow, and Tomorrow"}},
		{"by category", "sci-fi", []string{"Project Hail Mary", "Dune"}},
		{"case insensitive", "DUNE", []string{"Dune"}},
		{"whitespace only", "   ", nil},
		{"no match", "zzzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.query)
			require.Len(t, got, len(tt.want))
			for i, p := range got {
				assert.Equal(t, tt.want[i], p.Title)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Contains(t, cats, "Fiction")
	assert.Contains(t, cats, "Crime")
	assert.Len(t, cats, 8)
}
