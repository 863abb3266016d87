package models

// Canonical view-model records. Every field the console renders is
// guaranteed present after reconciliation: identifiers and timestamps come
// from the upstream API and are never invented or mutated here, display
// fields fall back to explicit defaults.

// CommonFields are shared by every canonical record.
type CommonFields struct {
	Id string `json:"id"`
	// Timestamps stay in the upstream's string date-time form.
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// NotSpecified renders absent optional relationships (manager, parent
// department, approver, category). Never a blank.
const NotSpecified = "Not specified"

// FilterAll is the sentinel "no filter applied" value. Reconcilers never
// emit it for a real categorical field.
const FilterAll = "all"

// Ref pairs an identifier with its display name. The identifier goes into
// mutation payloads; the display name goes to presentation. The two are
// never conflated.
type Ref struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// IsSet reports whether the relationship is present at all.
func (r Ref) IsSet() bool { return r.Id != "" }

// DisplayName returns the presentation value, with the explicit sentinel
// for an absent relationship.
func (r Ref) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	if r.Id != "" {
		return r.Id
	}
	return NotSpecified
}
