package interfaces

import "context"

// Payload is the JSON body posted to the webhook
type Payload struct {
	Channel   string `json:"channel"`
	Username  string `json:"username"`
	IconEmoji string `json:"icon_emoji"`
	Text      string `json:"text"`
}

// PostResult describes the webhook response
type PostResult struct {
	URL        string
	StatusCode int
}

// Poster delivers a payload to a webhook endpoint
type Poster interface {
	// Post sends payload to url and fails unless the response is 2xx
	Post(ctx context.Context, url string, payload Payload) (PostResult, error)
}

// Console handles the line-oriented terminal dialogue of the configurator
type Console interface {
	// Prompt shows description with the current value as the bracketed
	// default and returns the trimmed answer
	Prompt(description string, current *string) (string, error)

	// Warn reports a rejected answer before the next prompt
	Warn(message string) error

	// Println writes an informational line
	Println(message string) error
}
