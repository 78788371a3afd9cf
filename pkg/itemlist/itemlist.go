// Package itemlist encodes the items of an order into the single text column
// stored with each sale ("Latte x2; Vada pav x1") and decodes it back into
// per-item quantities.
//
// Decoding is lenient: a stored row is never rejected. Segments whose quantity
// cannot be read count as 1 and are reported as issues on the Result.
package itemlist

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Separator joins encoded segments.
	Separator = "; "
	// QuantityMarker sits between the item name and its quantity.
	QuantityMarker = " x"
)

// Line is one item of an order as it is encoded: a name and a quantity.
type Line struct {
	Name     string
	Quantity int
}

// Issue describes a segment that was decoded with a fallback.
type Issue struct {
	Segment string `json:"segment"`
	Reason  string `json:"reason"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%q: %s", i.Segment, i.Reason)
}

// Result is a best-effort decode: the tally is always usable, Issues lists
// every fallback that was applied while building it.
type Result struct {
	Tally  *Tally
	Issues []Issue
}

// Clean reports whether the input decoded without any fallback.
func (r Result) Clean() bool {
	return len(r.Issues) == 0
}

// Encode renders lines in order as "<name> x<qty>" joined by "; ".
// Duplicate names are kept as separate segments.
func Encode(lines []Line) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.Name+QuantityMarker+strconv.Itoa(l.Quantity))
	}
	return strings.Join(parts, Separator)
}

// Decode parses an encoded item list. Empty or blank input yields an empty
// tally. Quantities of repeated names are summed.
func Decode(s string) Result {
	res := Result{Tally: NewTally()}
	if strings.TrimSpace(s) == "" {
		return res
	}

	for _, segment := range strings.Split(s, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		name, qty, issue := decodeSegment(segment)
		if issue != "" {
			res.Issues = append(res.Issues, Issue{Segment: segment, Reason: issue})
		}
		if name == "" {
			continue
		}
		res.Tally.Add(name, qty)
	}

	return res
}

// decodeSegment splits on the last quantity marker so names that contain
// " x" themselves keep it.
func decodeSegment(segment string) (name string, qty int, issue string) {
	idx := strings.LastIndex(segment, QuantityMarker)
	if idx < 0 {
		return segment, 1, ""
	}

	name = strings.TrimSpace(segment[:idx])
	qtyText := strings.TrimSpace(segment[idx+len(QuantityMarker):])

	qty, err := strconv.Atoi(qtyText)
	if err != nil {
		issue = fmt.Sprintf("quantity %q is not an integer, counted as 1", qtyText)
		qty = 1
	}
	return name, qty, issue
}
