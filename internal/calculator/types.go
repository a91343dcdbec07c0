package calculator

// EvaluateRequest is the JSON body for POST /calculator/evaluate.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse is the JSON response for POST /calculator/evaluate.
type EvaluateResponse struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
	Display    string  `json:"display"` // result formatted as the display shows it
	Strategy   string  `json:"strategy"`
}

// KeysRequest is the JSON body for POST /calculator/sessions/{id}/keys.
type KeysRequest struct {
	Keys []string `json:"keys"` // button labels, applied in order
}

// SessionView is the JSON rendering of a session.
type SessionView struct {
	ID         string   `json:"id"`
	Expression string   `json:"expression"`
	Display    string   `json:"display"`
	Error      string   `json:"error,omitempty"`      // set after a failed "="
	ErrorKind  string   `json:"error_kind,omitempty"` // e.g. "division_by_zero"
	History    []string `json:"history"`
}
