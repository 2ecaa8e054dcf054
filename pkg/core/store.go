package core

import "github.com/google/uuid"

// Store holds the session dataset and the current highlight. It is owned by a
// single interaction goroutine and is not safe for concurrent use.
type Store struct {
	entries   Dataset
	highlight *Highlight
}

// NewStore creates an empty store with no highlight.
func NewStore() *Store {
	return &Store{entries: make(Dataset, 0)}
}

// NewEntryID returns a fresh identifier for an entry.
func NewEntryID() string {
	return uuid.NewString()
}

// Replace swaps the whole dataset and clears the highlight.
func (s *Store) Replace(ds Dataset) {
	s.entries = ds.Clone()
	if s.entries == nil {
		s.entries = make(Dataset, 0)
	}
	s.highlight = nil
}

// Append adds a record at the end and makes it the highlight.
func (s *Store) Append(r Record) Entry {
	e := Entry{ID: NewEntryID(), Record: r}
	s.entries = append(s.entries, e)
	s.highlight = &Highlight{ID: e.ID, Record: r}
	return e
}

// Dataset returns a copy of the current entries.
func (s *Store) Dataset() Dataset {
	return s.entries.Clone()
}

// Highlight returns the current highlight, if any.
func (s *Store) Highlight() (Highlight, bool) {
	if s.highlight == nil {
		return Highlight{}, false
	}
	return *s.highlight, true
}

func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) Empty() bool {
	return len(s.entries) == 0
}
