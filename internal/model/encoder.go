package model

import "sort"

// Encoder maps each distinct label to a dense integer code. Codes follow the
// sorted order of the labels, so the same vocabulary always yields the same codes.
type Encoder struct {
	classes []string
	codes   map[string]int
}

// NewEncoder builds an encoder over the distinct values in labels.
func NewEncoder(labels []string) *Encoder {
	seen := make(map[string]bool, len(labels))
	var classes []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			classes = append(classes, l)
		}
	}
	sort.Strings(classes)

	codes := make(map[string]int, len(classes))
	for i, c := range classes {
		codes[c] = i
	}
	return &Encoder{classes: classes, codes: codes}
}

// Encode returns the code for label and whether the label is known.
func (e *Encoder) Encode(label string) (int, bool) {
	code, ok := e.codes[label]
	return code, ok
}

// Decode returns the label for code and whether the code is valid.
func (e *Encoder) Decode(code int) (string, bool) {
	if code < 0 || code >= len(e.classes) {
		return "", false
	}
	return e.classes[code], true
}

// Classes returns the known labels in code order.
func (e *Encoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// Len returns the number of known labels.
func (e *Encoder) Len() int {
	return len(e.classes)
}
