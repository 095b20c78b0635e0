package dataset

import "sort"

// TrainCount returns the number of trains that survived normalization.
func (d *Dataset) TrainCount() int {
	return len(d.Trains)
}

// TrainByID returns the train with the given id, or nil.
func (d *Dataset) TrainByID(id string) *Train {
	return d.byID[id]
}

// HasOperator reports whether the operator code exists in the dataset.
func (d *Dataset) HasOperator(code string) bool {
	_, ok := d.Operators[code]
	return ok
}

// OperatorName returns the display name for an operator code, or "".
func (d *Dataset) OperatorName(code string) string {
	return d.Operators[code].Name
}

// OperatorColor returns the "#RRGGBB" brand color for an operator code, or "".
func (d *Dataset) OperatorColor(code string) string {
	return d.Operators[code].Color
}

// OperatorCodes returns all operator codes in lexical order.
func (d *Dataset) OperatorCodes() []string {
	codes := make([]string, 0, len(d.Operators))
	for code := range d.Operators {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// TimeBounds returns the earliest StartTime and latest EndTime across all
// trains. Both are zero for an empty dataset.
func (d *Dataset) TimeBounds() (min, max float64) {
	return d.minTime, d.maxTime
}

// Skipped returns the ids of records dropped under LoadOptions.SkipMalformed,
// in input order.
func (d *Dataset) Skipped() []string {
	return d.skipped
}
