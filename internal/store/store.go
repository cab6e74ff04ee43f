// Package store holds the in-memory key/value mapping that the kvsh commands
// read and mutate. A Store belongs to a single session and is not safe for
// concurrent use.
package store

import "sort"

// Entry is one key/value pair as returned by List.
type Entry struct {
	Key   string
	Value string
}

// Store maps keys to values. Every key present has exactly one value.
type Store struct {
	vars map[string]string
}

// New returns an empty Store.
func New() *Store {
	return &Store{vars: make(map[string]string)}
}

// Set inserts value under key, overwriting any previous value.
func (s *Store) Set(key, value string) {
	s.vars[key] = value
}

// Get returns the value stored under key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	value, ok := s.vars[key]
	return value, ok
}

// Delete removes key and reports whether a value was removed.
func (s *Store) Delete(key string) bool {
	if _, ok := s.vars[key]; !ok {
		return false
	}
	delete(s.vars, key)
	return true
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	return len(s.vars)
}

// Keys returns the stored keys in ascending order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.vars))
	for key := range s.vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// List returns every entry sorted ascending by key.
func (s *Store) List() []Entry {
	keys := s.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, Entry{Key: key, Value: s.vars[key]})
	}
	return entries
}
