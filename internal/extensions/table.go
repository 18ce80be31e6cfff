package extensions

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Record is one classification entry. AltName and SortDir are optional; the
// empty string means the hint is absent.
type Record struct {
	Extension string
	Category  string
	AltName   string
	SortDir   string
}

// HasAltName reports whether the record carries an alternate name.
func (r Record) HasAltName() bool { return r.AltName != "" }

// HasSortDir reports whether the record overrides the sort directory.
func (r Record) HasSortDir() bool { return r.SortDir != "" }

var (
	// ErrDuplicateExtension is returned by New when a key appears twice.
	ErrDuplicateExtension = errors.New("duplicate extension")
	// ErrInvalidRecord is returned by New for records that cannot be stored.
	ErrInvalidRecord = errors.New("invalid extension record")
)

// Table is an immutable extension lookup structure.
type Table struct {
	records []Record
	index   map[string]int
}

// New validates records and builds a table. Keys must already be normalized
// and unique, and every record needs a category.
func New(records ...Record) (*Table, error) {
	t := &Table{
		records: make([]Record, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for _, rec := range records {
		if err := validateRecord(rec); err != nil {
			return nil, err
		}
		if _, exists := t.index[rec.Extension]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateExtension, rec.Extension)
		}
		t.index[rec.Extension] = len(t.records)
		t.records = append(t.records, rec)
	}
	return t, nil
}

// MustNew is New for tables known to be valid at compile time.
func MustNew(records ...Record) *Table {
	t, err := New(records...)
	if err != nil {
		panic(err)
	}
	return t
}

func validateRecord(rec Record) error {
	if rec.Extension == "" {
		return fmt.Errorf("%w: empty extension", ErrInvalidRecord)
	}
	if Normalize(rec.Extension) != rec.Extension {
		return fmt.Errorf("%w: extension %q is not normalized", ErrInvalidRecord, rec.Extension)
	}
	// only the text after the last dot of a file name is ever looked up
	if strings.ContainsAny(rec.Extension, `./\`) {
		return fmt.Errorf("%w: extension %q contains a separator", ErrInvalidRecord, rec.Extension)
	}
	if strings.TrimSpace(rec.Category) == "" {
		return fmt.Errorf("%w: extension %q has no category", ErrInvalidRecord, rec.Extension)
	}
	for _, segment := range []string{rec.Category, rec.AltName, rec.SortDir} {
		if strings.ContainsAny(segment, `/\`) || segment == "." || segment == ".." {
			return fmt.Errorf("%w: extension %q has unusable path segment %q", ErrInvalidRecord, rec.Extension, segment)
		}
	}
	return nil
}

// Merge returns a new table holding base's records with overrides applied.
// An override replaces the base record with the same extension or is
// appended when the extension is new. Neither input is modified.
func Merge(base *Table, overrides ...Record) (*Table, error) {
	var records []Record
	if base != nil {
		records = make([]Record, len(base.records), len(base.records)+len(overrides))
		copy(records, base.records)
	}
	position := make(map[string]int, len(records))
	for i, rec := range records {
		position[rec.Extension] = i
	}
	for _, rec := range overrides {
		if i, ok := position[rec.Extension]; ok {
			records[i] = rec
			continue
		}
		position[rec.Extension] = len(records)
		records = append(records, rec)
	}
	return New(records...)
}

// Lookup returns the record stored under ext.
func (t *Table) Lookup(ext string) (Record, bool) {
	if t == nil {
		return Record{}, false
	}
	i, ok := t.index[ext]
	if !ok {
		return Record{}, false
	}
	return t.records[i], true
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At returns the i-th record in insertion order.
func (t *Table) At(i int) Record {
	return t.records[i]
}

// Records returns a copy of all records sorted by category, then extension.
func (t *Table) Records() []Record {
	if t == nil {
		return nil
	}
	out := make([]Record, len(t.records))
	copy(out, t.records)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Extension < out[j].Extension
	})
	return out
}

// Extensions returns the sorted list of keys.
func (t *Table) Extensions() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.records))
	for _, rec := range t.records {
		keys = append(keys, rec.Extension)
	}
	sort.Strings(keys)
	return keys
}

// Categories returns the distinct categories, sorted.
func (t *Table) Categories() []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range t.records {
		if _, ok := seen[rec.Category]; ok {
			continue
		}
		seen[rec.Category] = struct{}{}
		out = append(out, rec.Category)
	}
	sort.Strings(out)
	return out
}

// Normalize lower-cases ext and strips a single leading dot and surrounding
// whitespace.
func Normalize(ext string) string {
	ext = strings.TrimSpace(ext)
	ext = strings.TrimPrefix(ext, ".")
	return strings.ToLower(ext)
}
