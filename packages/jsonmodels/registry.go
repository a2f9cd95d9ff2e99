package jsonmodels

// SetEligibleRequest holds the parameters of an eligibility change request. The caller has to be the administrative
// principal of the registry.
type SetEligibleRequest struct {
	Caller   string `json:"caller"`
	Asset    string `json:"asset"`
	Eligible bool   `json:"eligible"`
}

// SetEligibleResponse is the response of an eligibility change request.
type SetEligibleResponse struct {
	Error string `json:"error,omitempty"`
}

// EligibleResponse is the response of an eligibility query.
type EligibleResponse struct {
	Asset    string `json:"asset,omitempty"`
	Eligible bool   `json:"eligible"`
	Error    string `json:"error,omitempty"`
}
