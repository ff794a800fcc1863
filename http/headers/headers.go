package headers

import (
	"iter"
	"sort"
	"strings"

	"github.com/indigo-web/msgwire/internal/strutil"
)

// Header is a single header name with all of its values, in order of occurrence.
type Header struct {
	Key    string
	Values []string
}

// Headers is an ordered associative structure mapping header names to their values.
// Names are matched case-insensitively, however stored as they were first seen. As
// messages rarely carry many headers, linear search is used instead of a map.
type Headers struct {
	entries []Header
}

func New() *Headers {
	return new(Headers)
}

// NewPrealloc returns an instance with pre-allocated space for n distinct names.
func NewPrealloc(n int) *Headers {
	return &Headers{
		entries: make([]Header, 0, n),
	}
}

// NewFromMap returns a new instance with already inserted values from the map. As maps
// are unordered, names are inserted in lexicographical order.
func NewFromMap(m map[string][]string) *Headers {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	h := NewPrealloc(len(keys))

	for _, key := range keys {
		for _, value := range m[key] {
			h.Add(key, value)
		}
	}

	return h
}

// Add appends the value to the name's values, registering the name if it's seen the
// first time.
func (h *Headers) Add(key, value string) *Headers {
	if i := h.index(key); i != -1 {
		h.entries[i].Values = append(h.entries[i].Values, value)
		return h
	}

	h.entries = append(h.entries, Header{
		Key:    key,
		Values: []string{value},
	})

	return h
}

// Set replaces all the values of the name. The name keeps its position if it already
// exists, however takes the new spelling.
func (h *Headers) Set(key string, values ...string) *Headers {
	if len(values) == 0 {
		h.Del(key)
		return h
	}

	vals := make([]string, len(values))
	copy(vals, values)

	if i := h.index(key); i != -1 {
		h.entries[i] = Header{Key: key, Values: vals}
		return h
	}

	h.entries = append(h.entries, Header{Key: key, Values: vals})

	return h
}

// Fold concatenates the continuation onto the most recent value of the name. Returns
// false if the name has no values to extend.
func (h *Headers) Fold(key, continuation string) bool {
	i := h.index(key)
	if i == -1 || len(h.entries[i].Values) == 0 {
		return false
	}

	values := h.entries[i].Values
	values[len(values)-1] += continuation

	return true
}

// Value returns the first value of the name, or an empty string if there's none.
func (h *Headers) Value(key string) string {
	value, _ := h.Get(key)
	return value
}

// Get returns the first value of the name and whether the name is present.
func (h *Headers) Get(key string) (value string, found bool) {
	if i := h.index(key); i != -1 {
		return h.entries[i].Values[0], true
	}

	return "", false
}

// Values returns all values of the name in order of occurrence, or nil if it's absent.
// The returned slice must not be modified.
func (h *Headers) Values(key string) []string {
	if i := h.index(key); i != -1 {
		return h.entries[i].Values
	}

	return nil
}

// Line returns all values of the name joined by a comma.
func (h *Headers) Line(key string) string {
	return strings.Join(h.Values(key), ", ")
}

func (h *Headers) Has(key string) bool {
	return h.index(key) != -1
}

// Del removes the name together with all its values.
func (h *Headers) Del(key string) {
	if i := h.index(key); i != -1 {
		h.entries = append(h.entries[:i], h.entries[i+1:]...)
	}
}

// Keys returns the distinct names in order of their first occurrence.
func (h *Headers) Keys() []string {
	keys := make([]string, len(h.entries))
	for i, entry := range h.entries {
		keys[i] = entry.Key
	}

	return keys
}

// Len returns the number of distinct names.
func (h *Headers) Len() int {
	return len(h.entries)
}

func (h *Headers) Empty() bool {
	return len(h.entries) == 0
}

// Iter returns an iterator over names and their values.
func (h *Headers) Iter() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, entry := range h.entries {
			if !yield(entry.Key, entry.Values) {
				return
			}
		}
	}
}

// Expose reveals the underlying entries. Try to avoid it if possible.
func (h *Headers) Expose() []Header {
	return h.entries
}

// Map returns a copy in a form of a map. Order is lost.
func (h *Headers) Map() map[string][]string {
	m := make(map[string][]string, len(h.entries))
	for _, entry := range h.entries {
		m[entry.Key] = clone(entry.Values)
	}

	return m
}

// Clone returns a deep copy.
func (h *Headers) Clone() *Headers {
	entries := make([]Header, len(h.entries))
	for i, entry := range h.entries {
		entries[i] = Header{Key: entry.Key, Values: clone(entry.Values)}
	}

	return &Headers{entries: entries}
}

// Clear removes all the entries, keeping the allocated space.
func (h *Headers) Clear() {
	h.entries = h.entries[:0]
}

func (h *Headers) index(key string) int {
	for i, entry := range h.entries {
		if strutil.CmpFold(entry.Key, key) {
			return i
		}
	}

	return -1
}

func clone(source []string) []string {
	if len(source) == 0 {
		return nil
	}

	c := make([]string, len(source))
	copy(c, source)

	return c
}
