package jsonmodels

// DepositRequest holds the parameters of a deposit request. Identifiers are base58 encoded, the amount is a base 10
// encoded integer.
type DepositRequest struct {
	Owner  string `json:"owner"`
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
}

// DepositResponse is the response of a deposit request.
type DepositResponse struct {
	Balance string `json:"balance,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WithdrawRequest holds the parameters of a withdrawal request.
type WithdrawRequest struct {
	Owner  string `json:"owner"`
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
}

// WithdrawResponse is the response of a withdrawal request.
type WithdrawResponse struct {
	Balance string `json:"balance,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BalanceResponse is the response of a balance query.
type BalanceResponse struct {
	Owner   string `json:"owner,omitempty"`
	Asset   string `json:"asset,omitempty"`
	Balance string `json:"balance,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TotalDepositedResponse is the response of an aggregate total query.
type TotalDepositedResponse struct {
	Asset string `json:"asset,omitempty"`
	Total string `json:"total,omitempty"`
	Error string `json:"error,omitempty"`
}

// SupportedResponse is the response of an asset support query.
type SupportedResponse struct {
	Asset     string `json:"asset,omitempty"`
	Supported bool   `json:"supported"`
	Error     string `json:"error,omitempty"`
}
