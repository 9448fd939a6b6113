// internal/sidebar/types.go
// Package sidebar models documentation-site sidebar index fragments: the
// single-line initSidebarItems({...}) call literals a documentation generator
// emits next to each page so the site's navigation script can populate the
// sidebar. A fragment maps symbol categories ("enum", "struct", "trait", ...)
// to ordered sequences of [name, description] pairs. The package parses,
// validates, and canonically re-serializes those fragments; it does not
// render them and does not know anything about the symbols they describe.
package sidebar

import (
	"errors"
	"fmt"
	"sort"
)

// Category identifies the kind of symbol a sidebar section lists.
type Category string

// Categories emitted by the documentation generator. The order of this list
// is the canonical section order used by Encode.
const (
	CategoryModule    Category = "mod"
	CategoryMacro     Category = "macro"
	CategoryPrimitive Category = "primitive"
	CategoryStruct    Category = "struct"
	CategoryEnum      Category = "enum"
	CategoryConstant  Category = "constant"
	CategoryStatic    Category = "static"
	CategoryTrait     Category = "trait"
	CategoryFunction  Category = "fn"
	CategoryTypeAlias Category = "type"
)

// categoryOrder fixes the canonical ordering of known categories.
var categoryOrder = []Category{
	CategoryModule,
	CategoryMacro,
	CategoryPrimitive,
	CategoryStruct,
	CategoryEnum,
	CategoryConstant,
	CategoryStatic,
	CategoryTrait,
	CategoryFunction,
	CategoryTypeAlias,
}

// categoryRank maps each known category to its canonical position.
var categoryRank = func() map[Category]int {
	m := make(map[Category]int, len(categoryOrder))
	for i, c := range categoryOrder {
		m[c] = i
	}
	return m
}()

// Known reports whether the category is one the generator is known to emit.
func (c Category) Known() bool {
	_, ok := categoryRank[c]
	return ok
}

// KnownCategories returns the known categories in canonical order.
func KnownCategories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Entry is a single sidebar item: a symbol name and its one-line description.
// The description may contain inline HTML cross-reference markup.
type Entry struct {
	Name        string
	Description string
}

// Section holds the entries of one category, in source order.
type Section struct {
	Category Category
	Entries  []Entry
}

// Index is a parsed sidebar fragment. Sections appear in source order and the
// entry order within each section is preserved exactly as authored. An Index
// is effectively write-once: it is built by Parse (or by Add during
// construction) and read thereafter.
type Index struct {
	sections []Section
}

// Errors reported while building or validating an Index.
var (
	ErrDuplicateCategory = errors.New("duplicate category")
	ErrDuplicateSymbol   = errors.New("duplicate symbol name in category")
	ErrEmptyCategory     = errors.New("category has no entries")
	ErrEmptyName         = errors.New("entry has empty symbol name")
)

// Add appends an entry to the given category, creating the section if needed.
// It enforces name uniqueness within the category.
func (x *Index) Add(cat Category, e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("%w (category %q)", ErrEmptyName, cat)
	}
	for i := range x.sections {
		if x.sections[i].Category != cat {
			continue
		}
		for _, have := range x.sections[i].Entries {
			if have.Name == e.Name {
				return fmt.Errorf("%w: %q in %q", ErrDuplicateSymbol, e.Name, cat)
			}
		}
		x.sections[i].Entries = append(x.sections[i].Entries, e)
		return nil
	}
	x.sections = append(x.sections, Section{Category: cat, Entries: []Entry{e}})
	return nil
}

// Categories returns the categories present, in source order.
func (x *Index) Categories() []Category {
	out := make([]Category, len(x.sections))
	for i, s := range x.sections {
		out[i] = s.Category
	}
	return out
}

// Sections returns the sections in source order. The returned slice shares
// backing arrays with the Index and must not be mutated.
func (x *Index) Sections() []Section {
	return x.sections
}

// Entries returns the entries of the given category in source order, or nil
// if the category is absent.
func (x *Index) Entries(cat Category) []Entry {
	for _, s := range x.sections {
		if s.Category == cat {
			return s.Entries
		}
	}
	return nil
}

// Lookup finds a symbol by name across all categories. Names are only
// guaranteed unique within a category; Lookup returns the first match in
// source order.
func (x *Index) Lookup(name string) (Category, Entry, bool) {
	for _, s := range x.sections {
		for _, e := range s.Entries {
			if e.Name == name {
				return s.Category, e, true
			}
		}
	}
	return "", Entry{}, false
}

// Len returns the total number of entries across all categories.
func (x *Index) Len() int {
	n := 0
	for _, s := range x.sections {
		n += len(s.Entries)
	}
	return n
}

// Clone returns a deep copy of the Index.
func (x *Index) Clone() *Index {
	c := &Index{sections: make([]Section, len(x.sections))}
	for i, s := range x.sections {
		entries := make([]Entry, len(s.Entries))
		copy(entries, s.Entries)
		c.sections[i] = Section{Category: s.Category, Entries: entries}
	}
	return c
}

// Equal reports whether two indexes describe the same mapping: the same set
// of categories, and per category the same entries in the same order.
// Section order is not significant; Encode fixes it canonically anyway.
func (x *Index) Equal(other *Index) bool {
	if x == nil || other == nil {
		return x == other
	}
	if len(x.sections) != len(other.sections) {
		return false
	}
	for _, s := range x.sections {
		theirs := other.Entries(s.Category)
		if len(theirs) != len(s.Entries) {
			return false
		}
		for i, e := range s.Entries {
			if theirs[i] != e {
				return false
			}
		}
	}
	return true
}

// sortedSections returns the sections ordered canonically: known categories
// by their fixed rank, unknown categories after them alphabetically. Entry
// order within a section is never changed.
func (x *Index) sortedSections() []Section {
	out := make([]Section, len(x.sections))
	copy(out, x.sections)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iKnown := categoryRank[out[i].Category]
		rj, jKnown := categoryRank[out[j].Category]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return out[i].Category < out[j].Category
		}
	})
	return out
}
