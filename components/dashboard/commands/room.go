package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/nisiafloresta/painel-bi/components/dashboard"
)

// RoomInput addresses the situational room of a session.
type RoomInput struct {
	Token string `json:"token"`
}

// SelectScreenInput jumps the room rotation to Screen.
type SelectScreenInput struct {
	Token  string `json:"token"`
	Screen int    `json:"screen"`
}

type roomService interface {
	EnterRoom(ctx context.Context, token string) (dashboard.RoomView, error)
	ExitRoom(ctx context.Context, token string) (dashboard.ShellState, error)
	SelectScreen(ctx context.Context, token string, index int) (dashboard.RoomView, error)
}

// EnterRoomCommand opens the situational room and starts its timers.
type EnterRoomCommand struct {
	service   roomService
	telemetry Telemetry
}

// NewEnterRoomCommand creates the command.
func NewEnterRoomCommand(service roomService, telemetry Telemetry) *EnterRoomCommand {
	return &EnterRoomCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[RoomInput] = (*EnterRoomCommand)(nil)

// Execute enters the room.
func (c *EnterRoomCommand) Execute(ctx context.Context, msg RoomInput) error {
	if c.service == nil {
		return errors.New("enter room command requires service")
	}
	if _, err := c.service.EnterRoom(ctx, msg.Token); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "painel.room.enter", nil)
	return nil
}

// ExitRoomCommand stops the room timers and returns to the dashboard.
type ExitRoomCommand struct {
	service   roomService
	telemetry Telemetry
}

// NewExitRoomCommand creates the command.
func NewExitRoomCommand(service roomService, telemetry Telemetry) *ExitRoomCommand {
	return &ExitRoomCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[RoomInput] = (*ExitRoomCommand)(nil)

// Execute leaves the room.
func (c *ExitRoomCommand) Execute(ctx context.Context, msg RoomInput) error {
	if c.service == nil {
		return errors.New("exit room command requires service")
	}
	if _, err := c.service.ExitRoom(ctx, msg.Token); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "painel.room.exit", nil)
	return nil
}

// SelectScreenCommand jumps to one screen of the rotation.
type SelectScreenCommand struct {
	service   roomService
	telemetry Telemetry
}

// NewSelectScreenCommand creates the command.
func NewSelectScreenCommand(service roomService, telemetry Telemetry) *SelectScreenCommand {
	return &SelectScreenCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SelectScreenInput] = (*SelectScreenCommand)(nil)

// Execute selects the screen.
func (c *SelectScreenCommand) Execute(ctx context.Context, msg SelectScreenInput) error {
	if c.service == nil {
		return errors.New("select screen command requires service")
	}
	view, err := c.service.SelectScreen(ctx, msg.Token, msg.Screen)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "painel.room.select", map[string]any{"screen": view.Screen.Key})
	return nil
}
