package chat

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

// DefaultModel is used when ANTHROPIC_MODEL is not configured.
const DefaultModel = string(anthropic.ModelClaude3_7SonnetLatest)

const maxReplyTokens = 1024

// Reply used when the provider returns an empty completion.
const fallbackReply = "Lo siento, no pude procesar tu solicitud."

const systemPrompt = `You are Gian AI, a helpful personal assistant. You can help with:
- Creating, managing, and deleting reminders
- Answering general questions
- Providing weather information (mock data)
- Sending information via email
- Time and date queries

Always respond in Spanish in a friendly and helpful manner. Keep responses concise but informative.

If the user asks to create a reminder, extract the task and datetime and respond that you've created it.
If they ask about weather, provide realistic mock weather data.
If they ask to send something via email, confirm that you'll send it.`

// AnthropicCompleter calls the Anthropic Messages API for each turn.
// The API key is read from the environment by the SDK itself.
type AnthropicCompleter struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewAnthropicCompleter creates a completer for the given model name.
func NewAnthropicCompleter(model string) *AnthropicCompleter {
	if model == "" {
		model = DefaultModel
	}
	client := anthropic.NewClient()
	return &AnthropicCompleter{
		client: &client,
		model:  anthropic.Model(model),
	}
}

// Complete sends the assistant system prompt plus one user turn and
// returns the concatenated text blocks of the reply.
func (c *AnthropicCompleter) Complete(ctx context.Context, content string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxReplyTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(content)),
		},
	})
	if err != nil {
		return "", err
	}

	var reply strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			reply.WriteString(text.Text)
		}
	}
	if reply.Len() == 0 {
		return fallbackReply, nil
	}
	return reply.String(), nil
}
