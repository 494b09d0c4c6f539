// Package offers holds the item name to offer ID mapping consumed by
// mapping-only vendors. A mapping is immutable once built; reloading swaps
// in a new snapshot.
package offers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// Mapping is a read-only item name to offer IDs table. The zero value is an
// empty mapping.
type Mapping struct {
	ids map[string][]string
}

// FromMap builds a Mapping, normalizing item names and dropping blank IDs.
// Items that end up with no IDs are omitted.
func FromMap(m map[string][]string) Mapping {
	ids := make(map[string][]string, len(m))
	for item, offerIDs := range m {
		key := domain.NormalizeItemName(item)
		if key == "" {
			continue
		}
		for _, id := range offerIDs {
			id = strings.TrimSpace(id)
			if id != "" && !slices.Contains(ids[key], id) {
				ids[key] = append(ids[key], id)
			}
		}
	}
	return Mapping{ids: ids}
}

// Parse reads a JSON object of item name to offer ID array. Blank input is
// an empty mapping. Any entry that is not a string array is an error.
func Parse(text string) (Mapping, error) {
	entries, malformed, err := decode(text)
	if err != nil {
		return Mapping{}, err
	}
	if len(malformed) > 0 {
		return Mapping{}, fmt.Errorf("parsing offer mapping: items %q: offer IDs must be an array of strings", malformed)
	}
	return FromMap(entries), nil
}

// ParseLenient is Parse that never fails. Entries that are not string
// arrays are skipped with a warning and the rest are kept. Input that is
// not a JSON object yields an empty mapping.
func ParseLenient(text string, log *slog.Logger) Mapping {
	entries, malformed, err := decode(text)
	if err != nil {
		log.Warn("ignoring invalid offer mapping, mapping-only vendors will return no data",
			"error", err,
		)
		return Mapping{}
	}
	for _, item := range malformed {
		log.Warn("skipping offer mapping entry, offer IDs must be an array of strings",
			"item", item,
		)
	}
	return FromMap(entries)
}

// decode splits text into well-formed entries and the sorted names of
// malformed ones.
func decode(text string) (entries map[string][]string, malformed []string, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, nil, fmt.Errorf("parsing offer mapping: %w", err)
	}

	entries = make(map[string][]string, len(raw))
	for item, msg := range raw {
		var ids []string
		if err := json.Unmarshal(msg, &ids); err != nil || ids == nil {
			malformed = append(malformed, item)
			continue
		}
		entries[item] = ids
	}
	slices.Sort(malformed)
	return entries, malformed, nil
}

// Lookup returns a copy of the offer IDs for item. The item name is
// normalized first.
func (m Mapping) Lookup(item string) []string {
	return slices.Clone(m.ids[domain.NormalizeItemName(item)])
}

// Len is the number of mapped item names.
func (m Mapping) Len() int {
	return len(m.ids)
}

// Items lists the mapped item names in sorted order.
func (m Mapping) Items() []string {
	items := make([]string, 0, len(m.ids))
	for item := range m.ids {
		items = append(items, item)
	}
	slices.Sort(items)
	return items
}
