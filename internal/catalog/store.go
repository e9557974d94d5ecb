package catalog

import (
	"errors"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/sciconst/internal/validate"
)

// Store owns the read-only built-in catalog and the flat custom overlay.
// It is not safe for concurrent use; the shell drives it from a single goroutine.
type Store struct {
	categories []Category
	byName     map[string]int
	custom     *overlay

	requireDescription bool
}

// Option configures a Store.
type Option func(*Store)

// WithRequireDescription makes AddCustom reject a blank description.
func WithRequireDescription(required bool) Option {
	return func(s *Store) {
		s.requireDescription = required
	}
}

// NewStore returns a Store loaded with the compiled-in catalog.
func NewStore(opts ...Option) *Store {
	return NewStoreFrom(builtinCategories, opts...)
}

// NewStoreFrom returns a Store over the given categories. The categories are copied,
// so later changes by the caller do not leak into the catalog.
func NewStoreFrom(categories []Category, opts ...Option) *Store {
	s := &Store{
		categories: make([]Category, 0, len(categories)),
		byName:     make(map[string]int, len(categories)),
		custom:     newOverlay(),
	}
	for _, c := range categories {
		if _, dup := s.byName[c.Name]; dup {
			logrus.Warnf("duplicate category %q ignored", c.Name)
			continue
		}
		s.byName[c.Name] = len(s.categories)
		s.categories = append(s.categories, Category{Name: c.Name, Entries: cloneEntries(c.Entries)})
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Categories returns the built-in category names in definition order.
func (s *Store) Categories() []string {
	names := make([]string, 0, len(s.categories))
	for _, c := range s.categories {
		names = append(names, c.Name)
	}
	return names
}

// Lookup returns the built-in entry for (category, name).
func (s *Store) Lookup(category, name string) (Entry, error) {
	c, ok := s.category(category)
	if !ok {
		return Entry{}, NotFoundError{Category: category}
	}
	for _, e := range c.Entries {
		if e.Name == name {
			return cloneEntry(e), nil
		}
	}
	return Entry{}, NotFoundError{Category: category, Name: name}
}

// AddCustom inserts or silently replaces a custom constant.
func (s *Store) AddCustom(name, value, description string) error {
	in := customInput{Name: name, Value: value, Description: description}
	if err := validate.Struct(in); err != nil {
		return toValidationError(err)
	}
	if s.requireDescription {
		if err := validate.Var(description, "notblank"); err != nil {
			return ValidationError{Field: "description", Reason: "must not be empty"}
		}
	}
	logrus.Debugf("Adding custom constant: name=%s, value=%s", name, value)
	s.custom.put(Entry{Name: name, Value: value, Description: description})
	return nil
}

// LookupCustom returns the custom constant stored under name.
func (s *Store) LookupCustom(name string) (Entry, error) {
	e, ok := s.custom.get(name)
	if !ok {
		return Entry{}, NotFoundError{Name: name, Custom: true}
	}
	return e, nil
}

// Custom returns the overlay in insertion order.
func (s *Store) Custom() []Entry {
	return s.custom.list()
}

// ExportCustom serializes the overlay as a JSON object keyed by constant name.
func (s *Store) ExportCustom() ([]byte, error) {
	return EncodeCustom(s.custom.list())
}

// ImportCustom replaces the whole overlay with the decoded payload. On error the
// current overlay is kept as is.
func (s *Store) ImportCustom(payload []byte) error {
	entries, err := DecodeCustom(payload)
	if err != nil {
		return err
	}
	next := newOverlay()
	for _, e := range entries {
		next.put(e)
	}
	logrus.Debugf("Replacing custom constants: %d -> %d entries", s.custom.len(), next.len())
	s.custom = next
	return nil
}

func (s *Store) category(name string) (Category, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Category{}, false
	}
	return s.categories[i], true
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		reason := "must not be empty"
		if verrs[0].Tag() == "utf8" {
			reason = "must be valid UTF-8 text"
		}
		return ValidationError{Field: strings.ToLower(verrs[0].Field()), Reason: reason}
	}
	return ValidationError{Field: "input", Reason: err.Error()}
}

func cloneEntries(in []Entry) []Entry {
	out := make([]Entry, 0, len(in))
	for _, e := range in {
		out = append(out, cloneEntry(e))
	}
	return out
}

func cloneEntry(e Entry) Entry {
	e.History = slices.Clone(e.History)
	return e
}

// overlay keeps custom constants keyed by name, in first-insertion order.
type overlay struct {
	order   []string
	entries map[string]Entry
}

func newOverlay() *overlay {
	return &overlay{entries: make(map[string]Entry)}
}

func (o *overlay) put(e Entry) {
	if _, ok := o.entries[e.Name]; !ok {
		o.order = append(o.order, e.Name)
	}
	o.entries[e.Name] = e
}

func (o *overlay) get(name string) (Entry, bool) {
	e, ok := o.entries[name]
	return e, ok
}

func (o *overlay) len() int { return len(o.order) }

func (o *overlay) list() []Entry {
	out := make([]Entry, 0, len(o.order))
	for _, name := range o.order {
		out = append(out, o.entries[name])
	}
	return out
}
