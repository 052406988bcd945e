package domain

// IdentityData is what the identity provider knows about a number.
type IdentityData struct {
	// Name is the registered name, nil when the provider did not return one.
	Name *string `json:"name,omitempty"`
}

// ValidationData is what the validation provider reports about a number.
// Every field is optional; nil means the provider omitted it.
type ValidationData struct {
	Valid    *bool   `json:"valid,omitempty"`
	Country  *string `json:"country,omitempty"`
	Location *string `json:"location,omitempty"`
	Carrier  *string `json:"carrier,omitempty"`
	LineType *string `json:"lineType,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

// LookupResult merges both provider halves for one number. Each half is
// independently optional. A nil Validation means every credential was tried
// and none produced an answer, which callers must treat as a failed lookup.
type LookupResult struct {
	Number     PhoneNumber     `json:"number"`
	Identity   *IdentityData   `json:"identity,omitempty"`
	Validation *ValidationData `json:"validation,omitempty"`
}

// Exhausted reports whether the validation half is missing.
func (r LookupResult) Exhausted() bool { return r.Validation == nil }
