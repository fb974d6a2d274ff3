// Implements the PassengerDirectory, keyed point lookup of passenger
// details. The key set is fixed at session start; the directory is a
// read-only fixture after seeding.

package sim

import (
	"fmt"
	"sort"
)

// PassengerRecord holds the details associated with one passenger key.
// Records are immutable once seeded; no update action exists.
type PassengerRecord struct {
	Name        string `json:"name" yaml:"name"`
	Flight      string `json:"flight" yaml:"flight"`           // airline code + number, e.g. "UA123"
	Destination string `json:"destination" yaml:"destination"` // 3-letter airport code
	BagID       string `json:"bag_id" yaml:"-"`                // assigned at seeding
}

// PassengerDirectory maps passenger keys ("PAX-NNN") to records.
// Manually entered keys get no format validation; an absent key is
// simply ErrKeyNotFound.
type PassengerDirectory struct {
	records map[string]PassengerRecord
}

// NewPassengerDirectory creates a directory holding the given records.
// The map is copied; the caller's map is not retained.
func NewPassengerDirectory(records map[string]PassengerRecord) *PassengerDirectory {
	d := &PassengerDirectory{records: make(map[string]PassengerRecord, len(records))}
	for k, v := range records {
		d.records[k] = v
	}
	return d
}

// Lookup returns the record for key. Returns ErrKeyNotFound when the
// key is absent from the fixed key set.
func (d *PassengerDirectory) Lookup(key string) (PassengerRecord, error) {
	rec, ok := d.records[key]
	if !ok {
		return PassengerRecord{}, fmt.Errorf("lookup %q: %w", key, ErrKeyNotFound)
	}
	return rec, nil
}

// Keys returns all passenger keys in sorted order, for populating a
// selection control.
func (d *PassengerDirectory) Keys() []string {
	keys := make([]string, 0, len(d.records))
	for k := range d.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of passenger records.
func (d *PassengerDirectory) Len() int {
	return len(d.records)
}

// Snapshot returns a copy of the full mapping, for rendering.
func (d *PassengerDirectory) Snapshot() map[string]PassengerRecord {
	out := make(map[string]PassengerRecord, len(d.records))
	for k, v := range d.records {
		out[k] = v
	}
	return out
}
