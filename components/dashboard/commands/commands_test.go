package commands

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nisiafloresta/painel-bi/components/auth"
	"github.com/nisiafloresta/painel-bi/components/dashboard"
	"github.com/nisiafloresta/painel-bi/components/situation"
	"github.com/nisiafloresta/painel-bi/pkg/llm"
)

func newWorkspace(t *testing.T, completer llm.Completer) *dashboard.Workspace {
	t.Helper()
	logger := zerolog.Nop()
	ws, err := dashboard.Bootstrap(dashboard.BootstrapOptions{Completer: completer, Logger: &logger})
	require.NoError(t, err)
	t.Cleanup(ws.Shutdown)
	return ws
}

func login(t *testing.T, ws *dashboard.Workspace, token string) {
	t.Helper()
	err := NewLoginCommand(ws, nil).Execute(context.Background(), LoginInput{
		Token:       token,
		Credentials: auth.Credentials{Username: auth.FixedUsername, Password: auth.FixedPassword},
	})
	require.NoError(t, err)
}

func TestLoginCommand(t *testing.T) {
	ws := newWorkspace(t, llm.NewMockClient("ok"))
	telemetry := &stubTelemetry{}
	cmd := NewLoginCommand(ws, telemetry)

	err := cmd.Execute(context.Background(), LoginInput{
		Token:       "t1",
		Credentials: auth.Credentials{Username: "admin", Password: "admin"},
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	err = cmd.Execute(context.Background(), LoginInput{
		Token:       "t1",
		Credentials: auth.Credentials{Username: auth.FixedUsername, Password: auth.FixedPassword},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"painel.login", "painel.login"}, telemetry.events)
	assert.Equal(t, true, telemetry.last["success"])

	state, err := ws.Shell(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, state.Authenticated)
}

func TestLogoutCommand(t *testing.T) {
	ws := newWorkspace(t, llm.NewMockClient("ok"))
	login(t, ws, "t1")

	require.NoError(t, NewLogoutCommand(ws, nil).Execute(context.Background(), LogoutInput{Token: "t1"}))
	_, err := ws.Shell(context.Background(), "t1")
	assert.ErrorIs(t, err, dashboard.ErrUnauthenticated)

	err = NewLogoutCommand(ws, nil).Execute(context.Background(), LogoutInput{Token: "t1"})
	assert.ErrorIs(t, err, dashboard.ErrUnauthenticated)
}

func TestSelectTabCommand(t *testing.T) {
	ws := newWorkspace(t, llm.NewMockClient("ok"))
	login(t, ws, "t1")
	telemetry := &stubTelemetry{}
	cmd := NewSelectTabCommand(ws, telemetry)

	require.NoError(t, cmd.Execute(context.Background(), SelectTabInput{Token: "t1", Tab: "demografia"}))
	require.NoError(t, cmd.Execute(context.Background(), SelectTabInput{Token: "t1", Tab: "inexistente"}))
	assert.Equal(t, "demografia", telemetry.last["active"])

	state, err := ws.Shell(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "demografia", state.Tab)
}

func TestRoomCommands(t *testing.T) {
	service := &stubRoomService{}
	telemetry := &stubTelemetry{}
	ctx := context.Background()

	require.NoError(t, NewEnterRoomCommand(service, telemetry).Execute(ctx, RoomInput{Token: "t1"}))
	require.NoError(t, NewSelectScreenCommand(service, telemetry).Execute(ctx, SelectScreenInput{Token: "t1", Screen: 3}))
	require.NoError(t, NewExitRoomCommand(service, telemetry).Execute(ctx, RoomInput{Token: "t1"}))

	assert.Equal(t, []string{"enter", "select:3", "exit"}, service.calls)
	assert.Equal(t, []string{"painel.room.enter", "painel.room.select", "painel.room.exit"}, telemetry.events)

	service.err = dashboard.ErrNotInRoom
	err := NewSelectScreenCommand(service, nil).Execute(ctx, SelectScreenInput{Token: "t1", Screen: 1})
	assert.ErrorIs(t, err, dashboard.ErrNotInRoom)
}

func TestSendChatCommandReportsFailureThroughReply(t *testing.T) {
	completer := llm.NewMockClient().FailWith(llm.ErrMissingAPIKey)
	ws := newWorkspace(t, completer)
	login(t, ws, "t1")
	ctx := context.Background()

	require.NoError(t, NewOpenChatCommand(ws, nil).Execute(ctx, ChatInput{Token: "t1"}))

	var reply dashboard.ChatView
	telemetry := &stubTelemetry{}
	err := NewSendChatCommand(ws, telemetry).Execute(ctx, SendChatInput{Token: "t1", Text: "Qual a população?", Reply: &reply})
	require.NoError(t, err)
	assert.Equal(t, "config", reply.Error)
	assert.Equal(t, true, telemetry.last["failed"])

	require.NoError(t, NewCloseChatCommand(ws, nil).Execute(ctx, ChatInput{Token: "t1"}))
	view, err := ws.Chat(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, view.Open)
	assert.Len(t, view.Widget.History, 3)
}

func TestWarmChartsCommand(t *testing.T) {
	ws := newWorkspace(t, llm.NewMockClient("ok"))
	telemetry := &stubTelemetry{}
	cmd := NewWarmChartsCommand(ws.Service(), telemetry)

	require.NoError(t, cmd.Execute(context.Background(), WarmChartsInput{}))
	assert.Equal(t, len(dashboard.Tabs()), telemetry.last["sections"])
	assert.Equal(t, situation.ScreenCount, telemetry.last["screens"])
	assert.Greater(t, telemetry.last["cached_charts"], 0)

	err := cmd.Execute(context.Background(), WarmChartsInput{Sections: []string{"financas"}})
	assert.ErrorIs(t, err, dashboard.ErrUnknownSection)
}

func TestCommandsRequireService(t *testing.T) {
	ctx := context.Background()
	assert.Error(t, NewLoginCommand(nil, nil).Execute(ctx, LoginInput{}))
	assert.Error(t, NewLogoutCommand(nil, nil).Execute(ctx, LogoutInput{}))
	assert.Error(t, NewSelectTabCommand(nil, nil).Execute(ctx, SelectTabInput{}))
	assert.Error(t, NewEnterRoomCommand(nil, nil).Execute(ctx, RoomInput{}))
	assert.Error(t, NewSendChatCommand(nil, nil).Execute(ctx, SendChatInput{}))
	assert.Error(t, NewWarmChartsCommand(nil, nil).Execute(ctx, WarmChartsInput{}))
}

type stubRoomService struct {
	calls []string
	err   error
}

func (s *stubRoomService) EnterRoom(context.Context, string) (dashboard.RoomView, error) {
	s.calls = append(s.calls, "enter")
	return dashboard.RoomView{}, s.err
}

func (s *stubRoomService) ExitRoom(context.Context, string) (dashboard.ShellState, error) {
	s.calls = append(s.calls, "exit")
	return dashboard.ShellState{}, s.err
}

func (s *stubRoomService) SelectScreen(_ context.Context, _ string, index int) (dashboard.RoomView, error) {
	if s.err != nil {
		return dashboard.RoomView{}, s.err
	}
	s.calls = append(s.calls, "select:"+string(rune('0'+index)))
	return dashboard.RoomView{Screen: dashboard.ScreenView{Key: situation.Screens[index].Key}}, nil
}

type stubTelemetry struct {
	events []string
	last   map[string]any
}

func (s *stubTelemetry) Record(_ context.Context, event string, payload map[string]any) {
	s.events = append(s.events, event)
	s.last = payload
}

