// Package catalog maps concrete (game mode, source, year) keys to the
// partitions that store their rows.
//
// A Catalog is built once at startup and is read-only afterwards, so it can be
// shared between goroutines without locking. Construction fails unless every
// cell of the partition layout has exactly one entry.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"cod-tracker/internal/domain"
)

var (
	// ErrCatalogIncomplete means a cell of the partition layout has no entry.
	ErrCatalogIncomplete = errors.New("catalog incomplete")

	// ErrInvalidEntry means an entry names a cell outside the layout, or
	// repeats a key or name.
	ErrInvalidEntry = errors.New("invalid catalog entry")
)

// Key identifies one partition. Year is domain.YearNone for every partition
// that is not split by season.
type Key struct {
	GameMode domain.GameMode
	Source   domain.Source
	Year     domain.Year
}

func (k Key) String() string {
	if k.Year == domain.YearNone {
		return fmt.Sprintf("%s/%s", k.GameMode, k.Source)
	}
	return fmt.Sprintf("%s/%s/%s", k.GameMode, k.Source, k.Year)
}

// PartitionRef is a resolved partition: its key, its catalog name and the
// handle the storage layer reads it through.
type PartitionRef[H any] struct {
	GameMode    domain.GameMode
	Source      domain.Source
	Year        domain.Year
	CatalogName string
	Handle      H
}

func (r PartitionRef[H]) Key() Key {
	return Key{GameMode: r.GameMode, Source: r.Source, Year: r.Year}
}

type Entry[H any] struct {
	Key    Key
	Name   string
	Handle H
}

type Catalog[H any] struct {
	refs  []PartitionRef[H]
	index map[Key]int
}

// New validates entries against Layout and builds the catalog. Refs are kept
// in layout order whatever the order of entries.
func New[H any](entries []Entry[H]) (*Catalog[H], error) {
	layout := Layout()
	required := make(map[Key]bool, len(layout))
	for _, k := range layout {
		required[k] = true
	}

	byKey := make(map[Key]Entry[H], len(entries))
	names := make(map[string]Key, len(entries))
	for _, e := range entries {
		if !required[e.Key] {
			return nil, fmt.Errorf("%w: %s is not a partition", ErrInvalidEntry, e.Key)
		}
		if _, dup := byKey[e.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate entry for %s", ErrInvalidEntry, e.Key)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("%w: empty name for %s", ErrInvalidEntry, e.Key)
		}
		if other, dup := names[e.Name]; dup {
			return nil, fmt.Errorf("%w: name %q used by %s and %s", ErrInvalidEntry, e.Name, other, e.Key)
		}
		byKey[e.Key] = e
		names[e.Name] = e.Key
	}

	var missing []string
	for _, k := range layout {
		if _, ok := byKey[k]; !ok {
			missing = append(missing, k.String())
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrCatalogIncomplete, strings.Join(missing, ", "))
	}

	c := &Catalog[H]{
		refs:  make([]PartitionRef[H], 0, len(layout)),
		index: make(map[Key]int, len(layout)),
	}
	for _, k := range layout {
		e := byKey[k]
		c.index[k] = len(c.refs)
		c.refs = append(c.refs, PartitionRef[H]{
			GameMode:    k.GameMode,
			Source:      k.Source,
			Year:        k.Year,
			CatalogName: e.Name,
			Handle:      e.Handle,
		})
	}
	return c, nil
}

// Build opens a handle for every cell of the layout under its canonical table
// name and builds the catalog from them.
func Build[H any](open func(key Key, name string) (H, error)) (*Catalog[H], error) {
	layout := Layout()
	entries := make([]Entry[H], 0, len(layout))
	for _, k := range layout {
		name := TableName(k)
		h, err := open(k, name)
		if err != nil {
			return nil, fmt.Errorf("failed to open partition %s: %w", name, err)
		}
		entries = append(entries, Entry[H]{Key: k, Name: name, Handle: h})
	}
	return New(entries)
}

// Lookup returns the partition for a concrete key. Year is ignored for
// partitions that are not split by season, and is required for those that
// are. Wildcards and structurally absent cells are reported as not found.
func (c *Catalog[H]) Lookup(g domain.GameMode, s domain.Source, y domain.Year) (PartitionRef[H], bool) {
	if !domain.SupportsYear(g, s) {
		y = domain.YearNone
	}
	i, ok := c.index[Key{GameMode: g, Source: s, Year: y}]
	if !ok {
		return PartitionRef[H]{}, false
	}
	return c.refs[i], true
}

// Refs returns every partition in layout order.
func (c *Catalog[H]) Refs() []PartitionRef[H] {
	return append([]PartitionRef[H](nil), c.refs...)
}

func (c *Catalog[H]) Len() int {
	return len(c.refs)
}
