package httpapi

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	"github.com/nisiafloresta/painel-bi/components/dashboard"
	"github.com/nisiafloresta/painel-bi/components/dashboard/commands"
	"github.com/nisiafloresta/painel-bi/components/dashboard/queries"
)

// Executor runs the panel's write operations on behalf of a transport.
type Executor interface {
	Login(ctx context.Context, in commands.LoginInput) error
	Logout(ctx context.Context, in commands.LogoutInput) error
	SelectTab(ctx context.Context, in commands.SelectTabInput) error
	EnterRoom(ctx context.Context, in commands.RoomInput) error
	ExitRoom(ctx context.Context, in commands.RoomInput) error
	SelectScreen(ctx context.Context, in commands.SelectScreenInput) error
	OpenChat(ctx context.Context, in commands.ChatInput) error
	CloseChat(ctx context.Context, in commands.ChatInput) error
	SendChat(ctx context.Context, in commands.SendChatInput) error
}

// Reader resolves the JSON views returned after each operation.
type Reader interface {
	Shell(ctx context.Context, in queries.SessionInput) (dashboard.ShellState, error)
	Section(ctx context.Context, in queries.SectionInput) (dashboard.SectionView, error)
	Room(ctx context.Context, in queries.SessionInput) (dashboard.RoomView, error)
	Chat(ctx context.Context, in queries.SessionInput) (dashboard.ChatView, error)
}

// CommandBus satisfies Executor and Reader with go-command handlers.
type CommandBus struct {
	LoginCmd        gocommand.Commander[commands.LoginInput]
	LogoutCmd       gocommand.Commander[commands.LogoutInput]
	SelectTabCmd    gocommand.Commander[commands.SelectTabInput]
	EnterRoomCmd    gocommand.Commander[commands.RoomInput]
	ExitRoomCmd     gocommand.Commander[commands.RoomInput]
	SelectScreenCmd gocommand.Commander[commands.SelectScreenInput]
	OpenChatCmd     gocommand.Commander[commands.ChatInput]
	CloseChatCmd    gocommand.Commander[commands.ChatInput]
	SendChatCmd     gocommand.Commander[commands.SendChatInput]

	ShellQuery   gocommand.Querier[queries.SessionInput, dashboard.ShellState]
	SectionQuery gocommand.Querier[queries.SectionInput, dashboard.SectionView]
	RoomQuery    gocommand.Querier[queries.SessionInput, dashboard.RoomView]
	ChatQuery    gocommand.Querier[queries.SessionInput, dashboard.ChatView]
}

var (
	_ Executor = (*CommandBus)(nil)
	_ Reader   = (*CommandBus)(nil)
)

// NewCommandBus wires every command and query to the workspace.
func NewCommandBus(ws *dashboard.Workspace, telemetry commands.Telemetry) *CommandBus {
	return &CommandBus{
		LoginCmd:        commands.NewLoginCommand(ws, telemetry),
		LogoutCmd:       commands.NewLogoutCommand(ws, telemetry),
		SelectTabCmd:    commands.NewSelectTabCommand(ws, telemetry),
		EnterRoomCmd:    commands.NewEnterRoomCommand(ws, telemetry),
		ExitRoomCmd:     commands.NewExitRoomCommand(ws, telemetry),
		SelectScreenCmd: commands.NewSelectScreenCommand(ws, telemetry),
		OpenChatCmd:     commands.NewOpenChatCommand(ws, telemetry),
		CloseChatCmd:    commands.NewCloseChatCommand(ws, telemetry),
		SendChatCmd:     commands.NewSendChatCommand(ws, telemetry),

		ShellQuery:   queries.NewShellQuery(ws),
		SectionQuery: queries.NewSectionQuery(ws),
		RoomQuery:    queries.NewRoomQuery(ws),
		ChatQuery:    queries.NewChatQuery(ws),
	}
}

func (b *CommandBus) Login(ctx context.Context, in commands.LoginInput) error {
	return b.LoginCmd.Execute(ctx, in)
}

func (b *CommandBus) Logout(ctx context.Context, in commands.LogoutInput) error {
	return b.LogoutCmd.Execute(ctx, in)
}

func (b *CommandBus) SelectTab(ctx context.Context, in commands.SelectTabInput) error {
	return b.SelectTabCmd.Execute(ctx, in)
}

func (b *CommandBus) EnterRoom(ctx context.Context, in commands.RoomInput) error {
	return b.EnterRoomCmd.Execute(ctx, in)
}

func (b *CommandBus) ExitRoom(ctx context.Context, in commands.RoomInput) error {
	return b.ExitRoomCmd.Execute(ctx, in)
}

func (b *CommandBus) SelectScreen(ctx context.Context, in commands.SelectScreenInput) error {
	return b.SelectScreenCmd.Execute(ctx, in)
}

func (b *CommandBus) OpenChat(ctx context.Context, in commands.ChatInput) error {
	return b.OpenChatCmd.Execute(ctx, in)
}

func (b *CommandBus) CloseChat(ctx context.Context, in commands.ChatInput) error {
	return b.CloseChatCmd.Execute(ctx, in)
}

func (b *CommandBus) SendChat(ctx context.Context, in commands.SendChatInput) error {
	return b.SendChatCmd.Execute(ctx, in)
}

func (b *CommandBus) Shell(ctx context.Context, in queries.SessionInput) (dashboard.ShellState, error) {
	return b.ShellQuery.Query(ctx, in)
}

func (b *CommandBus) Section(ctx context.Context, in queries.SectionInput) (dashboard.SectionView, error) {
	return b.SectionQuery.Query(ctx, in)
}

func (b *CommandBus) Room(ctx context.Context, in queries.SessionInput) (dashboard.RoomView, error) {
	return b.RoomQuery.Query(ctx, in)
}

func (b *CommandBus) Chat(ctx context.Context, in queries.SessionInput) (dashboard.ChatView, error) {
	return b.ChatQuery.Query(ctx, in)
}
