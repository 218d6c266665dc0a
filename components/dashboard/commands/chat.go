package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/nisiafloresta/painel-bi/components/dashboard"
)

// ChatInput toggles the chat widget of a session.
type ChatInput struct {
	Token string `json:"token"`
}

// SendChatInput sends Text to the assistant. When Reply is set it receives
// the widget after the exchange, including a failed completion.
type SendChatInput struct {
	Token string              `json:"token"`
	Text  string              `json:"text"`
	Reply *dashboard.ChatView `json:"-"`
}

type chatService interface {
	OpenChat(ctx context.Context, token string) (dashboard.ChatView, error)
	CloseChat(ctx context.Context, token string) (dashboard.ChatView, error)
	SendChat(ctx context.Context, token, text string) (dashboard.ChatView, error)
}

// OpenChatCommand shows the chat widget.
type OpenChatCommand struct {
	service   chatService
	telemetry Telemetry
}

// NewOpenChatCommand creates the command.
func NewOpenChatCommand(service chatService, telemetry Telemetry) *OpenChatCommand {
	return &OpenChatCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ChatInput] = (*OpenChatCommand)(nil)

// Execute opens the widget.
func (c *OpenChatCommand) Execute(ctx context.Context, msg ChatInput) error {
	if c.service == nil {
		return errors.New("open chat command requires service")
	}
	view, err := c.service.OpenChat(ctx, msg.Token)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "painel.chat.open", map[string]any{"section": view.Widget.Section})
	return nil
}

// CloseChatCommand hides the chat widget.
type CloseChatCommand struct {
	service   chatService
	telemetry Telemetry
}

// NewCloseChatCommand creates the command.
func NewCloseChatCommand(service chatService, telemetry Telemetry) *CloseChatCommand {
	return &CloseChatCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ChatInput] = (*CloseChatCommand)(nil)

// Execute closes the widget.
func (c *CloseChatCommand) Execute(ctx context.Context, msg ChatInput) error {
	if c.service == nil {
		return errors.New("close chat command requires service")
	}
	if _, err := c.service.CloseChat(ctx, msg.Token); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "painel.chat.close", nil)
	return nil
}

// SendChatCommand forwards a question to the assistant.
type SendChatCommand struct {
	service   chatService
	telemetry Telemetry
}

// NewSendChatCommand creates the command.
func NewSendChatCommand(service chatService, telemetry Telemetry) *SendChatCommand {
	return &SendChatCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SendChatInput] = (*SendChatCommand)(nil)

// Execute sends the text. A failed completion is reported through Reply,
// not as an error.
func (c *SendChatCommand) Execute(ctx context.Context, msg SendChatInput) error {
	if c.service == nil {
		return errors.New("send chat command requires service")
	}
	view, err := c.service.SendChat(ctx, msg.Token, msg.Text)
	if msg.Reply != nil {
		*msg.Reply = view
	}
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "painel.chat.send", map[string]any{
		"section": view.Widget.Section,
		"failed":  view.Error != "",
	})
	return nil
}
