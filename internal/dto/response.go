package dto

// Response is the envelope every API endpoint answers with. Successful
// responses carry {status, data}; failures carry {status, message, error}.
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SuccessResponse wraps data in the success envelope.
func SuccessResponse(data any) Response {
	return Response{Status: "success", Data: data}
}

// ErrorResponse builds the failure envelope. The message is the
// human-readable description; err carries the underlying error text.
func ErrorResponse(message string, err error) Response {
	resp := Response{Status: "error", Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
