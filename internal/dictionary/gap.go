package dictionary

// Requirement says a category of testing must be covered for one
// (jurisdiction, party type) slice of the population.
type Requirement struct {
	Jurisdiction string `json:"jurisdiction"`
	PartyType    string `json:"party_type"`
	Category     string `json:"category"`
}

// Gap is a requirement the current dictionary leaves untestable: no
// attribute in the required category applies to that party type in that
// jurisdiction.
type Gap struct {
	Requirement
	Detail string `json:"detail"`
}

// Gaps runs the gap analysis: for each requirement, look for at least one
// applicable attribute in the required category.
func Gaps(reqs []Requirement, attrs []TestAttribute) []Gap {
	var out []Gap
	for _, req := range reqs {
		if covered(req, attrs) {
			continue
		}
		out = append(out, Gap{
			Requirement: req,
			Detail:      "no applicable test attribute in category " + req.Category,
		})
	}
	return out
}

func covered(req Requirement, attrs []TestAttribute) bool {
	for _, a := range attrs {
		if a.Category == req.Category && a.AppliesTo(req.PartyType) && a.RequiredIn(req.Jurisdiction) {
			return true
		}
	}
	return false
}
