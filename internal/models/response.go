package models

// APIResponse is the uniform envelope for all JSON responses.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// PaymentRequiredResponse is the body of a 402 denial. It carries the
// freshly minted invoice the client must pay before retrying.
type PaymentRequiredResponse struct {
	Error   string   `json:"error"`
	Code    int      `json:"code"`
	Invoice *Invoice `json:"invoice"`
	Message string   `json:"message"`
}
