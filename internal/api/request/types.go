package request

// IssueTokenRequest is the request body for issuing a token
type IssueTokenRequest struct {
	Purpose    string `json:"purpose"`
	Length     int    `json:"length,omitempty"`
	Flags      string `json:"flags,omitempty"`
	TTLSeconds int    `json:"ttl_seconds,omitempty"`
}
