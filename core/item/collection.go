package item

import "strings"

// EPCSet returns the set of tag identifiers present in records.
func EPCSet(records []Record) map[string]struct{} {
	set := make(map[string]struct{}, len(records))
	for _, r := range records {
		set[r.EPC] = struct{}{}
	}
	return set
}

// Index maps each tag identifier to its record. If a tag repeats, the first
// record wins.
func Index(records []Record) map[string]Record {
	idx := make(map[string]Record, len(records))
	for _, r := range records {
		if _, exists := idx[r.EPC]; exists {
			continue
		}
		idx[r.EPC] = r
	}
	return idx
}

// Filter returns the records whose name, EPC, showroom area, counter or
// category contains term, ignoring case. An empty term matches everything.
func Filter(records []Record, term string) []Record {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]Record, len(records))
		copy(out, records)
		return out
	}

	out := make([]Record, 0)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.EPC), term) ||
			strings.Contains(strings.ToLower(r.ShowroomArea), term) ||
			strings.Contains(strings.ToLower(r.CounterName), term) ||
			strings.Contains(strings.ToLower(r.Category), term) {
			out = append(out, r)
		}
	}
	return out
}
