package dym

// FieldSpec names the column(s) a suggestion operates over. Order decides
// parameter naming in the exact-match query and which field's value is
// attributed first during the fallback scan; it does not change which
// records or values match.
type FieldSpec []string

// Fields builds a FieldSpec from column names.
func Fields(names ...string) FieldSpec {
	return FieldSpec(names)
}
