// Package query applies the console's list predicates (free-text search,
// categorical filters, single-key sort) to an in-memory canonical
// collection. It never mutates its input and is idempotent: applying the
// same predicate to its own output returns the same output.
package query

import (
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bitbucket.org/mmdatafocus/console_backend/models"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Predicate is the page's ephemeral filter/sort state, passed in explicitly
// on every application. Nothing here is persisted.
type Predicate struct {
	// Search matches case-insensitively as a substring, OR'd across the
	// entity's searchable fields.
	Search string
	// Filters are exact-match and AND'd together; the FilterAll sentinel
	// (and an absent key) matches everything.
	Filters map[string]string
	// SortKey selects one sortable field; empty means original order.
	SortKey   string
	Direction Direction
}

// FieldSet configures the engine per entity: which fields the free-text
// search covers, which are filterable, and how each sort key compares.
type FieldSet[T any] struct {
	Searchable []func(T) string
	Filterable map[string]func(T) string
	// SortString keys compare locale-aware; SortNumeric keys compare as
	// decimals. A key appears in exactly one of the two.
	SortString  map[string]func(T) string
	SortNumeric map[string]func(T) decimal.Decimal
}

var collator = newCollator()

func newCollator() *collate.Collator {
	tag, err := language.Parse(strings.TrimSpace(os.Getenv("CONSOLE_COLLATION_LOCALE")))
	if err != nil {
		tag = language.English
	}
	return collate.New(tag, collate.IgnoreCase)
}

// Apply runs the predicate over records and returns a new ordered slice.
func Apply[T any](records []T, p Predicate, fields FieldSet[T]) []T {
	out := make([]T, 0, len(records))

	search := strings.ToLower(strings.TrimSpace(p.Search))
	for _, record := range records {
		if !matchesSearch(record, search, fields.Searchable) {
			continue
		}
		if !matchesFilters(record, p.Filters, fields.Filterable) {
			continue
		}
		out = append(out, record)
	}

	sortRecords(out, p, fields)
	return out
}

func matchesSearch[T any](record T, search string, searchable []func(T) string) bool {
	if search == "" {
		return true
	}
	for _, field := range searchable {
		if strings.Contains(strings.ToLower(field(record)), search) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](record T, filters map[string]string, filterable map[string]func(T) string) bool {
	for key, want := range filters {
		if want == "" || want == models.FilterAll {
			continue
		}
		field, ok := filterable[key]
		if !ok {
			// Unknown filter keys match nothing: a stale UI control must
			// not silently show the full collection.
			return false
		}
		if field(record) != want {
			return false
		}
	}
	return true
}

func sortRecords[T any](records []T, p Predicate, fields FieldSet[T]) {
	if p.SortKey == "" {
		return
	}
	desc := p.Direction == Descending

	if field, ok := fields.SortNumeric[p.SortKey]; ok {
		sort.SliceStable(records, func(i, j int) bool {
			cmp := field(records[i]).Cmp(field(records[j]))
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
		return
	}
	if field, ok := fields.SortString[p.SortKey]; ok {
		sort.SliceStable(records, func(i, j int) bool {
			cmp := collator.CompareString(field(records[i]), field(records[j]))
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	// Unknown sort key keeps original order.
}
