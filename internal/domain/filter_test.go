package domain

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []Goal {
	return []Goal{
		{ID: "1", Category: "Health", Progress: 100, Completed: true},
		{ID: "2", Category: "Career", Progress: 20},
		{ID: "3", Category: "Health"},
		{ID: "4", Category: "Gardening", Progress: 100, Completed: true},
	}
}

func ids(goals []Goal) []string {
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = g.ID
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	table := CategoryTable(DefaultCategories())
	goals := filterFixture()

	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"1", "2", "3", "4"}},
		{FilterActive, []string{"2", "3"}},
		{FilterCompleted, []string{"1", "4"}},
		{"Health", []string{"1", "3"}},
		{"Finance", []string{}},
		{"Gardening", []string{"1", "2", "3", "4"}}, // not in the table
		{"health", []string{"1", "2", "3", "4"}},    // case-sensitive
		{"", []string{"1", "2", "3", "4"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(goals, table)))
		})
	}
}

func TestFilter_ActiveIsComplementOfCompleted(t *testing.T) {
	table := CategoryTable(DefaultCategories())
	goals := filterFixture()

	done := FilterCompleted.Apply(goals, table)
	active := FilterActive.Apply(goals, table)

	assert.Len(t, append(done, active...), len(goals))
	for _, g := range done {
		assert.True(t, g.Completed)
	}
	for _, g := range active {
		assert.False(t, g.Completed)
	}
}

func TestFilterKeys(t *testing.T) {
	keys := FilterKeys(CategoryTable{{Name: "Health"}, {Name: "Career"}})
	assert.Equal(t, []Filter{"all", "active", "completed", "Health", "Career"}, keys)
}

func TestFilter_Label(t *testing.T) {
	assert.Equal(t, "All", FilterAll.Label())
	assert.Equal(t, "Completed", FilterCompleted.Label())
	assert.Equal(t, "Health", Filter("Health").Label())
	assert.Equal(t, "", Filter("").Label())
	assert.Equal(t, "Émotions", Filter("émotions").Label())
	assert.Equal(t, "Émotions", Filter("Émotions").Label())
	assert.True(t, utf8.ValidString(Filter("émotions").Label()))
}
