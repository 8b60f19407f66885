package catalog

import "fruitdata/internal/textutil"

// Record is one catalogue entry. Field order matches the persisted JSON
// layout: name first, then the three dimensions.
type Record struct {
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Volume returns the product of the three dimensions. It is defined for
// whatever values the record holds; positivity is enforced only when a
// record enters the catalogue through Add.
func (r Record) Volume() float64 {
	return r.Length * r.Width * r.Height
}

// Find returns the first record whose name matches under case folding.
func Find(records []Record, name string) (Record, bool) {
	if idx := IndexOf(records, name); idx >= 0 {
		return records[idx], true
	}
	return Record{}, false
}

// IndexOf returns the position of the first record whose name matches under
// case folding, or -1 if no record matches.
func IndexOf(records []Record, name string) int {
	for i, record := range records {
		if textutil.EqualFold(record.Name, name) {
			return i
		}
	}
	return -1
}
