package models

// Response statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the uniform envelope returned by every endpoint.
// swagger:model Response
type Response struct {
	// Outcome of the request
	// example: success
	Status string `json:"status"`

	// Human-readable message
	// example: User created successfully
	Message string `json:"message"`

	// Payload, null when the endpoint has none
	Data any `json:"data"`
}

// NewSuccessResponse builds a success envelope.
func NewSuccessResponse(message string, data any) Response {
	return Response{Status: StatusSuccess, Message: message, Data: data}
}

// NewErrorResponse builds an error envelope without payload.
func NewErrorResponse(message string) Response {
	return Response{Status: StatusError, Message: message}
}
