package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"slacks-cli/internal/config"
	"slacks-cli/internal/interfaces"
	"slacks-cli/internal/validate"
	"slacks-cli/internal/webhook"
	"slacks-cli/pkg/models"
)

const testURL = "https://hooks.slack.com/services/T000/B000/xyz"

type fakePoster struct {
	calls   int
	url     string
	payload interfaces.Payload
	err     error
}

func (p *fakePoster) Post(ctx context.Context, url string, payload interfaces.Payload) (interfaces.PostResult, error) {
	p.calls++
	p.url = url
	p.payload = payload
	if p.err != nil {
		return interfaces.PostResult{URL: url, StatusCode: 500}, p.err
	}
	return interfaces.PostResult{URL: url, StatusCode: 200}, nil
}

func newTestOrchestrator(t *testing.T, env config.Environment, stdin string, clip ClipboardReader) (*Orchestrator, *fakePoster) {
	t.Helper()

	manager := config.NewManager(config.NewStore(afero.NewMemMapFs()), env, nil)
	if clip == nil {
		clip = func() (string, error) { return "", errors.New("no clipboard in tests") }
	}
	poster := &fakePoster{}

	return New(manager, NewMessageSource(strings.NewReader(stdin), clip), poster, nil), poster
}

func TestOrchestrator_SendMessage(t *testing.T) {
	env := config.Environment{"HOME": "/home/tester", config.WebhookURLEnv: testURL}

	tests := []struct {
		name    string
		request *models.MessageRequest
		stdin   string
		clip    ClipboardReader
		want    interfaces.Payload
	}{
		{
			name:    "defaults",
			request: &models.MessageRequest{Text: "this is a test"},
			want: interfaces.Payload{
				Channel:   config.DefaultChannel,
				Username:  config.DefaultUsername,
				IconEmoji: config.DefaultIconEmoji,
				Text:      "this is a test",
			},
		},
		{
			name: "flag overrides",
			request: &models.MessageRequest{
				Text:      "hello",
				Channel:   "@you",
				Username:  "ci",
				IconEmoji: ":rocket:",
			},
			want: interfaces.Payload{Channel: "@you", Username: "ci", IconEmoji: ":rocket:", Text: "hello"},
		},
		{
			name:    "message from stdin",
			request: &models.MessageRequest{ReadStdin: true},
			stdin:   "line one\nline two\n",
			want: interfaces.Payload{
				Channel:   config.DefaultChannel,
				Username:  config.DefaultUsername,
				IconEmoji: config.DefaultIconEmoji,
				Text:      "line one\nline two\n",
			},
		},
		{
			name:    "clipboard appended to argument",
			request: &models.MessageRequest{Text: "see log:", FromClipboard: true},
			clip:    func() (string, error) { return "  panic: boom\n", nil },
			want: interfaces.Payload{
				Channel:   config.DefaultChannel,
				Username:  config.DefaultUsername,
				IconEmoji: config.DefaultIconEmoji,
				Text:      "see log:\n\npanic: boom",
			},
		},
		{
			name:    "clipboard alone",
			request: &models.MessageRequest{FromClipboard: true},
			clip:    func() (string, error) { return "copied", nil },
			want: interfaces.Payload{
				Channel:   config.DefaultChannel,
				Username:  config.DefaultUsername,
				IconEmoji: config.DefaultIconEmoji,
				Text:      "copied",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orch, poster := newTestOrchestrator(t, env, tt.stdin, tt.clip)

			require.NoError(t, orch.SendMessage(context.Background(), tt.request))
			assert.Equal(t, 1, poster.calls)
			assert.Equal(t, testURL, poster.url)
			assert.Equal(t, tt.want, poster.payload)
		})
	}
}

func TestOrchestrator_SendMessage_Failures(t *testing.T) {
	tests := []struct {
		name    string
		env     config.Environment
		request *models.MessageRequest
		errType error
		message string
	}{
		{
			name:    "nil request",
			env:     config.Environment{"HOME": "/home/tester"},
			errType: ErrValidationFailed,
			message: "request cannot be nil",
		},
		{
			name:    "webhook unset",
			env:     config.Environment{"HOME": "/home/tester"},
			request: &models.MessageRequest{Text: "hi"},
			errType: ErrValidationFailed,
			message: "webhook_url is not set",
		},
		{
			name:    "webhook invalid",
			env:     config.Environment{"HOME": "/home/tester", config.WebhookURLEnv: "https://hooks.x/b"},
			request: &models.MessageRequest{Text: "hi"},
			errType: ErrValidationFailed,
			message: "webhook_url is invalid format",
		},
		{
			name:    "channel flag too long",
			env:     config.Environment{config.WebhookURLEnv: testURL},
			request: &models.MessageRequest{Text: "hi", Channel: "#12345678901234567890"},
			errType: ErrValidationFailed,
			message: "channel is too long",
		},
		{
			name:    "icon flag invalid",
			env:     config.Environment{config.WebhookURLEnv: testURL},
			request: &models.MessageRequest{Text: "hi", IconEmoji: "robot_face"},
			errType: ErrValidationFailed,
			message: "icon_emoji is invalid format",
		},
		{
			name:    "empty message",
			env:     config.Environment{config.WebhookURLEnv: testURL},
			request: &models.MessageRequest{},
			errType: ErrValidationFailed,
			message: "Empty message",
		},
		{
			name:    "empty stdin",
			env:     config.Environment{config.WebhookURLEnv: testURL},
			request: &models.MessageRequest{ReadStdin: true},
			errType: ErrValidationFailed,
			message: "Empty message",
		},
		{
			name:    "clipboard unavailable",
			env:     config.Environment{config.WebhookURLEnv: testURL},
			request: &models.MessageRequest{FromClipboard: true},
			errType: ErrInputFailed,
			message: "failed to read from clipboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orch, poster := newTestOrchestrator(t, tt.env, "", nil)

			err := orch.SendMessage(context.Background(), tt.request)
			require.Error(t, err)

			var slacksErr *SlacksError
			require.True(t, errors.As(err, &slacksErr), "expected SlacksError, got %T", err)
			assert.True(t, errors.Is(err, tt.errType))
			assert.Contains(t, slacksErr.Message, tt.message)
			assert.NotEmpty(t, slacksErr.Guidance)
			assert.Equal(t, 0, poster.calls)
		})
	}
}

func TestOrchestrator_SendMessage_PostFailure(t *testing.T) {
	env := config.Environment{config.WebhookURLEnv: testURL}
	orch, poster := newTestOrchestrator(t, env, "", nil)
	poster.err = errors.New("failed to post to Slack: " + webhook.ErrUnexpectedStatus.Error())

	err := orch.SendMessage(context.Background(), &models.MessageRequest{Text: "hi"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPostFailed))
	assert.Equal(t, 1, poster.calls)
}

func TestOrchestrator_SendMessage_ValidationCause(t *testing.T) {
	orch, _ := newTestOrchestrator(t, config.Environment{}, "", nil)

	err := orch.SendMessage(context.Background(), &models.MessageRequest{Text: "hi"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validate.ErrInvalid))
	assert.Equal(t, validate.Unset, validate.ReasonOf(err))
}

func TestOrchestrator_ShowConfiguration(t *testing.T) {
	orch, _ := newTestOrchestrator(t, config.Environment{"HOME": "/home/tester"}, "", nil)

	cfg, path, err := orch.ShowConfiguration(false)
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/.config/slacks.json", path)
	assert.Equal(t, config.DefaultChannel, interfaces.Display(cfg.Channel))

	orch, _ = newTestOrchestrator(t, config.Environment{}, "", nil)
	_, _, err = orch.ShowConfiguration(false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigurationInvalid))
	assert.True(t, errors.Is(err, config.ErrHomeUnset))
}
