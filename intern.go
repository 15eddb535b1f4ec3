// Package intern implements a string interning table.
//
// A Table stores every distinct string exactly once and hands out a dense
// integer ID for it. IDs start at 0 and increase by one for each new string;
// they are never reused. Adding a string that is already known returns the ID
// it was given the first time and does not allocate.
//
// Stored strings live in an append-only arena of byte chunks. Chunks are never
// reallocated once written, so a string returned by Get stays valid for as long
// as the caller holds it, no matter how many strings are added afterwards.
//
// Example usage:
//
//	t := intern.New()
//	id := t.Add("Assets:Bank:Checking")
//	s, _ := t.Get(id) // "Assets:Bank:Checking"
//
// A Table is not safe for concurrent use. Readers may share a table as long as
// no goroutine is adding to it.
package intern

import (
	"iter"
	"math"

	"golang.org/x/exp/slices"
)

const (
	// DefaultCapacity is the number of strings a table built with New is sized for.
	DefaultCapacity = 64
)

// ID identifies a string stored in a Table.
type ID uint32

// Table is a string interning table.
type Table struct {
	ids     map[string]ID
	strings []string
	arena   arena

	hits   uint64
	misses uint64
}

// New creates an empty table.
func New(opts ...Option) *Table {
	return WithCapacity(DefaultCapacity, opts...)
}

// WithCapacity creates an empty table sized for n distinct strings.
// The table still grows past n; the hint only avoids incremental growth of
// the indexes.
func WithCapacity(n int, opts ...Option) *Table {
	if n <= 0 {
		n = DefaultCapacity
	}

	cfg := config{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Table{
		ids:     make(map[string]ID, n),
		strings: make([]string, 0, n),
		arena:   newArena(cfg.chunkSize),
	}
}

// Add returns the ID for s, storing a copy of s if it has not been seen.
func (t *Table) Add(s string) ID {
	if id, ok := t.ids[s]; ok {
		t.hits++
		return id
	}
	return t.insert(t.arena.store(s))
}

// AddBytes is like Add but takes a byte slice. Looking up known content does
// not allocate. The table never retains b.
func (t *Table) AddBytes(b []byte) ID {
	if id, ok := t.ids[string(b)]; ok {
		t.hits++
		return id
	}
	return t.insert(t.arena.storeBytes(b))
}

// Intern returns the canonical stored copy of s, adding it if needed.
func (t *Table) Intern(s string) string {
	return t.strings[t.Add(s)]
}

func (t *Table) insert(stored string) ID {
	if uint64(len(t.strings)) > math.MaxUint32 {
		panic("intern: identifier space exhausted")
	}
	t.misses++
	id := ID(len(t.strings))
	t.strings = append(t.strings, stored)
	t.ids[stored] = id
	return id
}

// Get returns the string stored under id. An id that this table did not
// issue yields an *OutOfRangeError.
func (t *Table) Get(id ID) (string, error) {
	if uint64(id) >= uint64(len(t.strings)) {
		return "", &OutOfRangeError{ID: id, Len: len(t.strings)}
	}
	return t.strings[id], nil
}

// MustGet is like Get but panics if id is out of range.
func (t *Table) MustGet(id ID) string {
	s, err := t.Get(id)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup reports the ID of s without adding it.
func (t *Table) Lookup(s string) (ID, bool) {
	id, ok := t.ids[s]
	return id, ok
}

// Len returns the number of distinct strings in the table.
func (t *Table) Len() int {
	return len(t.strings)
}

// All iterates over the stored strings in ID order.
func (t *Table) All() iter.Seq2[ID, string] {
	return func(yield func(ID, string) bool) {
		for i, s := range t.strings {
			if !yield(ID(i), s) {
				return
			}
		}
	}
}

// Strings returns a copy of the stored strings indexed by ID.
func (t *Table) Strings() []string {
	return slices.Clone(t.strings)
}
