// Package list parses loosely-structured checklist text into a
// title and ordered sections of unchecked items.
package list

// Section is a named, ordered group of items. Sections that survive
// parsing always carry at least one item.
type Section struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Model is the parsed form of one checklist. It is built fresh per
// parse and read-only afterwards.
type Model struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// ItemCount returns the total number of items across all sections.
func (m Model) ItemCount() int {
	n := 0
	for _, s := range m.Sections {
		n += len(s.Items)
	}
	return n
}

// Empty reports whether the model holds no unchecked items.
func (m Model) Empty() bool {
	return len(m.Sections) == 0
}
