package orchestrator

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"slacks-cli/pkg/models"
)

// ClipboardReader returns the current clipboard text
type ClipboardReader func() (string, error)

// SystemClipboard reads the system clipboard
func SystemClipboard() (string, error) {
	return clipboard.ReadAll()
}

// MessageSource resolves the message text from stdin, clipboard or argument
type MessageSource struct {
	stdin     io.Reader
	clipboard ClipboardReader
}

// NewMessageSource creates a message source
func NewMessageSource(stdin io.Reader, clip ClipboardReader) *MessageSource {
	if clip == nil {
		clip = SystemClipboard
	}
	return &MessageSource{
		stdin:     stdin,
		clipboard: clip,
	}
}

// Read returns the message text for request
func (s *MessageSource) Read(request *models.MessageRequest) (string, error) {
	if request.ReadStdin {
		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return "", NewInputError("stdin", fmt.Errorf("failed to read from STDIN: %w", err))
		}
		if len(data) == 0 {
			return "", NewValidationError("message", "", "Empty message")
		}
		return string(data), nil
	}

	text := request.Text

	// Clipboard text is appended to the argument or used alone
	if request.FromClipboard {
		content, err := s.clipboard()
		if err != nil {
			return "", NewInputError("clipboard", fmt.Errorf("failed to read from clipboard: %w", err))
		}
		content = strings.TrimSpace(content)
		if content == "" {
			return "", NewInputError("clipboard", fmt.Errorf("clipboard is empty"))
		}
		if text == "" {
			text = content
		} else {
			text = text + "\n\n" + content
		}
	}

	if text == "" {
		return "", NewValidationError("message", "", "Empty message")
	}

	return text, nil
}
