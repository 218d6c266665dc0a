package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nisiafloresta/painel-bi/components/auth"
)

func TestReduceLogin(t *testing.T) {
	state := NewShellState()
	assert.False(t, state.Authenticated)
	assert.Equal(t, DefaultTab, state.Tab)

	failed := Reduce(state, Action{Kind: ActionLoginFailed})
	assert.False(t, failed.Authenticated)
	assert.Equal(t, auth.InvalidCredentialsMessage, failed.LoginError)

	ok := Reduce(failed, Action{Kind: ActionLoginSucceeded, User: "admin"})
	assert.True(t, ok.Authenticated)
	assert.Equal(t, "admin", ok.User)
	assert.Empty(t, ok.LoginError)
}

func TestReduceFailedLoginKeepsAuthenticatedUser(t *testing.T) {
	state := Reduce(NewShellState(), Action{Kind: ActionLoginSucceeded, User: "admin"})
	state = Reduce(state, Action{Kind: ActionSelectTab, Tab: "saude"})

	failed := Reduce(state, Action{Kind: ActionLoginFailed})
	assert.True(t, failed.Authenticated)
	assert.Equal(t, "admin", failed.User)
	assert.Equal(t, "saude", failed.Tab)
	assert.Equal(t, auth.InvalidCredentialsMessage, failed.LoginError)
}

func TestReduceSelectTabIgnoresUnknownIDs(t *testing.T) {
	state := Reduce(NewShellState(), Action{Kind: ActionLoginSucceeded, User: "admin"})

	state = Reduce(state, Action{Kind: ActionSelectTab, Tab: "educacao"})
	assert.Equal(t, "educacao", state.Tab)

	same := Reduce(state, Action{Kind: ActionSelectTab, Tab: "financas"})
	assert.Equal(t, state, same)
}

func TestReduceSelectTabRequiresLogin(t *testing.T) {
	state := Reduce(NewShellState(), Action{Kind: ActionSelectTab, Tab: "saude"})
	assert.Equal(t, DefaultTab, state.Tab)
	state = Reduce(state, Action{Kind: ActionEnterRoom})
	assert.False(t, state.InRoom)
}

func TestReduceLogoutResetsTabAndRoom(t *testing.T) {
	state := Reduce(NewShellState(), Action{Kind: ActionLoginSucceeded, User: "admin"})
	state = Reduce(state, Action{Kind: ActionSelectTab, Tab: "seguranca"})
	state = Reduce(state, Action{Kind: ActionEnterRoom})
	require.True(t, state.InRoom)

	out := Reduce(state, Action{Kind: ActionLogout})
	assert.Equal(t, NewShellState(), out)
	assert.Equal(t, "unidades", out.Tab)
	assert.False(t, out.InRoom)
}

func TestReduceRoomToggle(t *testing.T) {
	state := Reduce(NewShellState(), Action{Kind: ActionLoginSucceeded, User: "admin"})
	state = Reduce(state, Action{Kind: ActionSelectTab, Tab: "saude"})
	in := Reduce(state, Action{Kind: ActionEnterRoom})
	assert.True(t, in.InRoom)
	out := Reduce(in, Action{Kind: ActionExitRoom})
	assert.False(t, out.InRoom)
	assert.Equal(t, "saude", out.Tab)
}

func TestTabsAreCopies(t *testing.T) {
	tabs := Tabs()
	require.Len(t, tabs, 6)
	tabs[0] = "x"
	assert.True(t, IsTab("unidades"))
	assert.Equal(t, "unidades", Tabs()[0])
}

func TestInMemoryShellStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryShellStore()

	state, err := store.Load(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, NewShellState(), state)

	require.Error(t, store.Save(ctx, "", state))

	saved := ShellState{Authenticated: true, User: "admin", Tab: "demografia", InRoom: true}
	require.NoError(t, store.Save(ctx, "t1", saved))
	got, err := store.Load(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	require.NoError(t, store.Save(ctx, "t2", ShellState{Tab: "bogus", InRoom: true}))
	got, err = store.Load(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, DefaultTab, got.Tab)
	assert.False(t, got.InRoom)

	require.NoError(t, store.Delete(ctx, "t1"))
	got, err = store.Load(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, got.Authenticated)
}
