package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/nisiafloresta/painel-bi/components/auth"
	"github.com/nisiafloresta/painel-bi/components/dashboard"
)

// LoginInput carries a submitted login form for the session token.
type LoginInput struct {
	Token       string           `json:"token"`
	Credentials auth.Credentials `json:"credentials"`
}

type loginService interface {
	Login(ctx context.Context, token string, creds auth.Credentials) (dashboard.ShellState, error)
}

// LoginCommand checks credentials and opens the panel for the token.
type LoginCommand struct {
	service   loginService
	telemetry Telemetry
}

// NewLoginCommand creates the command.
func NewLoginCommand(service loginService, telemetry Telemetry) *LoginCommand {
	return &LoginCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[LoginInput] = (*LoginCommand)(nil)

// Execute returns auth.ErrInvalidCredentials for a wrong pair.
func (c *LoginCommand) Execute(ctx context.Context, msg LoginInput) error {
	if c.service == nil {
		return errors.New("login command requires service")
	}
	_, err := c.service.Login(ctx, msg.Token, msg.Credentials)
	c.telemetry.Record(ctx, "painel.login", map[string]any{
		"username": msg.Credentials.Username,
		"success":  err == nil,
	})
	return err
}

// LogoutInput ends the session bound to Token.
type LogoutInput struct {
	Token string `json:"token"`
}

type logoutService interface {
	Logout(ctx context.Context, token string) error
}

// LogoutCommand closes the session and resets the shell.
type LogoutCommand struct {
	service   logoutService
	telemetry Telemetry
}

// NewLogoutCommand creates the command.
func NewLogoutCommand(service logoutService, telemetry Telemetry) *LogoutCommand {
	return &LogoutCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[LogoutInput] = (*LogoutCommand)(nil)

// Execute logs the token out.
func (c *LogoutCommand) Execute(ctx context.Context, msg LogoutInput) error {
	if c.service == nil {
		return errors.New("logout command requires service")
	}
	if err := c.service.Logout(ctx, msg.Token); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "painel.logout", nil)
	return nil
}

// SelectTabInput switches the active section.
type SelectTabInput struct {
	Token string `json:"token"`
	Tab   string `json:"tab"`
}

type tabService interface {
	SelectTab(ctx context.Context, token, tab string) (dashboard.ShellState, error)
}

// SelectTabCommand changes the tab shown by the shell.
type SelectTabCommand struct {
	service   tabService
	telemetry Telemetry
}

// NewSelectTabCommand creates the command.
func NewSelectTabCommand(service tabService, telemetry Telemetry) *SelectTabCommand {
	return &SelectTabCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SelectTabInput] = (*SelectTabCommand)(nil)

// Execute applies the tab. Unknown tabs are ignored by the shell, not rejected.
func (c *SelectTabCommand) Execute(ctx context.Context, msg SelectTabInput) error {
	if c.service == nil {
		return errors.New("select tab command requires service")
	}
	state, err := c.service.SelectTab(ctx, msg.Token, msg.Tab)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "painel.tab.select", map[string]any{
		"requested": msg.Tab,
		"active":    state.Tab,
	})
	return nil
}
