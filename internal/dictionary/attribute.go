// Package dictionary defines the CDD testing-attribute dictionary: the
// catalogue of attributes an audit tests per entity, with category
// grouping and applicability rules.
package dictionary

// TestAttribute is one testable CDD attribute. PartyTypes and
// Jurisdictions scope applicability; an empty slice means the attribute
// applies everywhere.
type TestAttribute struct {
	AttributeID   string   `json:"attribute_id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	PartyTypes    []string `json:"party_types,omitempty"`
	Jurisdictions []string `json:"jurisdictions,omitempty"`
}

// AppliesTo reports whether the attribute is testable for the given party
// type.
func (a TestAttribute) AppliesTo(partyType string) bool {
	if len(a.PartyTypes) == 0 {
		return true
	}
	for _, pt := range a.PartyTypes {
		if pt == partyType {
			return true
		}
	}
	return false
}

// RequiredIn reports whether the attribute is in scope for the given
// jurisdiction.
func (a TestAttribute) RequiredIn(jurisdiction string) bool {
	if len(a.Jurisdictions) == 0 {
		return true
	}
	for _, j := range a.Jurisdictions {
		if j == jurisdiction {
			return true
		}
	}
	return false
}

// ApplicableTo filters the dictionary down to the attributes testable for
// one entity's party type and jurisdiction.
func ApplicableTo(attrs []TestAttribute, partyType, jurisdiction string) []TestAttribute {
	var out []TestAttribute
	for _, a := range attrs {
		if a.AppliesTo(partyType) && a.RequiredIn(jurisdiction) {
			out = append(out, a)
		}
	}
	return out
}

// Categories returns the distinct category labels present in the
// dictionary, in first-seen order.
func Categories(attrs []TestAttribute) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, a := range attrs {
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		out = append(out, a.Category)
	}
	return out
}
