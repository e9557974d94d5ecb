package catalog

import "fmt"

// The features below are listed in the shell but have no implementation.

// ConvertUnit is a placeholder for unit conversion of a constant's value.
func ConvertUnit(_ Entry, targetUnit string) (string, error) {
	return "", fmt.Errorf("unit conversion to %q: %w", targetUnit, ErrNotImplemented)
}

// SetLanguage is a placeholder for switching the display language.
func SetLanguage(lang string) error {
	return fmt.Errorf("language %q: %w", lang, ErrNotImplemented)
}

// HistoryGraph is a placeholder for graphing an entry's historical samples.
func HistoryGraph(e Entry) (string, error) {
	return "", fmt.Errorf("history graph for %q: %w", e.Name, ErrNotImplemented)
}
