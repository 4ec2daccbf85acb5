package dym

// Result is the outcome of a suggestion lookup. Exactly one branch is set:
// records when at least one record matched the word exactly, values when
// the fallback similarity scan ran. The branches are mutually exclusive so
// callers cannot confuse "these rows equal the word" with "the word is
// unknown, here is what exists".
type Result struct {
	records []Record
	values  []string
}

func exactResult(records []Record) *Result {
	return &Result{records: records}
}

func similarResult(values []string) *Result {
	if values == nil {
		values = make([]string, 0)
	}
	return &Result{values: values}
}

// IsExact reports whether the exact-match branch was taken.
func (r *Result) IsExact() bool {
	return r.records != nil
}

// Records returns the exact matches in store order, or nil when the
// fallback branch was taken.
func (r *Result) Records() []Record {
	return r.records
}

// Values returns the deduplicated similar values, or nil when the exact
// branch was taken. The set carries no ordering guarantee.
func (r *Result) Values() []string {
	return r.values
}
