package model

// Response is the uniform JSON envelope returned by every endpoint.
//
// Success responses carry Data (and Count for list endpoints, Message for
// mutations); failure responses carry Error only.
type Response struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
