package models

// MessageRequest represents a single slacks invocation built from flags
type MessageRequest struct {
	Text          string
	ReadStdin     bool
	FromClipboard bool
	Channel       string
	Username      string
	IconEmoji     string
	Debug         bool
}

// NewMessageRequest creates an empty request
func NewMessageRequest() *MessageRequest {
	return &MessageRequest{}
}
