// Package grounding turns the customer's records into the context block a
// generation prompt is grounded on: per-intent record routing, formatting and
// the deterministic ANC schedule computation.
package grounding

// Field is one labeled value of a record, kept as an ordered pair so prompt
// rendering is stable.
type Field struct {
	Key   string
	Value string
}

// Record is one row of a section.
type Record []Field

// Section is one titled group of records in the prompt context.
type Section struct {
	Title   string
	Records []Record
}

// IntentContext is everything the prompt builder needs for one resolved
// intent. Sections may be empty; the builder renders that gracefully.
type IntentContext struct {
	Description string
	Sections    []Section
	Knowledge   string
}
