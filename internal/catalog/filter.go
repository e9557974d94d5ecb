package catalog

import "strings"

// Filter lists the entries of category whose name contains term, ignoring case.
// Only names are matched. An empty term matches every entry; an unknown category
// yields an empty result.
func (s *Store) Filter(category, term string) []Row {
	rows := []Row{}
	c, ok := s.category(category)
	if !ok {
		return rows
	}
	for _, e := range c.Entries {
		if nameMatches(e.Name, term) {
			rows = append(rows, Row{Name: e.Name, Value: e.Value})
		}
	}
	return rows
}

// FilterCustom applies the same name match to the custom overlay.
func (s *Store) FilterCustom(term string) []Row {
	rows := []Row{}
	for _, e := range s.custom.list() {
		if nameMatches(e.Name, term) {
			rows = append(rows, Row{Name: e.Name, Value: e.Value})
		}
	}
	return rows
}

func nameMatches(name, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}
