package dto

// RefreshResponse reports the outcome of a bulk reload of the four normalized
// collections. Errors is keyed by collection name and only present for
// collections that failed; their local contents were left unchanged.
type RefreshResponse struct {
	Complete bool              `json:"complete"`
	Errors   map[string]string `json:"errors,omitempty"`
}
