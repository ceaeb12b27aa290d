package domain

import "strings"

// Category describes a goal category and its two-tone display colors.
type Category struct {
	Name  string // Display name, also the stored value
	Color string // Solid color (hex), used for selected chips and bars
	Light string // Light color (hex), used for badge backgrounds
}

// FallbackCategoryName is the category whose style is used for unknown names.
const FallbackCategoryName = "Personal"

// DefaultCategories returns the built-in category table.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Health", Color: "#22C55E", Light: "#DCFCE7"},
		{Name: "Career", Color: "#3B82F6", Light: "#DBEAFE"},
		{Name: "Finance", Color: "#EAB308", Light: "#FEF9C3"},
		{Name: "Personal", Color: "#A855F7", Light: "#F3E8FF"},
		{Name: "Education", Color: "#EC4899", Light: "#FCE7F3"},
		{Name: "Relationships", Color: "#EF4444", Light: "#FEE2E2"},
	}
}

// CategoryTable is an ordered set of categories.
type CategoryTable []Category

// Names returns the category names in table order.
func (t CategoryTable) Names() []string {
	names := make([]string, len(t))
	for i, c := range t {
		names[i] = c.Name
	}
	return names
}

// Lookup finds a category by exact name.
func (t CategoryTable) Lookup(name string) (Category, bool) {
	for _, c := range t {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Resolve finds a category by name, ignoring case.
// Returns ErrUnknownCategory if there is no match.
func (t CategoryTable) Resolve(name string) (Category, error) {
	for _, c := range t {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return Category{}, ErrUnknownCategory
}

// Style returns the category used to display name.
// Unknown names fall back to the Personal category, or the first entry
// when the table has no Personal category.
func (t CategoryTable) Style(name string) Category {
	if c, ok := t.Lookup(name); ok {
		return c
	}
	if c, ok := t.Lookup(FallbackCategoryName); ok {
		return c
	}
	if len(t) > 0 {
		return t[0]
	}
	return Category{Name: name, Color: "#6C5CE7", Light: "#A29BFE"}
}
