package dashboard

import "github.com/nisiafloresta/painel-bi/components/auth"

// DefaultTab is the section shown right after login and after logout.
const DefaultTab = "unidades"

var shellTabs = []string{"unidades", "demografia", "saude", "socioeconomico", "educacao", "seguranca"}

// Tabs lists the dashboard sections in navigation order.
func Tabs() []string {
	return append([]string(nil), shellTabs...)
}

// IsTab reports whether id names a dashboard section.
func IsTab(id string) bool {
	for _, tab := range shellTabs {
		if tab == id {
			return true
		}
	}
	return false
}

// ShellState is everything the page shell needs to decide what to show.
type ShellState struct {
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user,omitempty"`
	Tab           string `json:"tab"`
	InRoom        bool   `json:"in_room"`
	LoginError    string `json:"login_error,omitempty"`
}

// NewShellState returns the logged-out state.
func NewShellState() ShellState {
	return ShellState{Tab: DefaultTab}
}

// ActionKind enumerates shell transitions.
type ActionKind string

const (
	ActionLoginSucceeded ActionKind = "login_succeeded"
	ActionLoginFailed    ActionKind = "login_failed"
	ActionLogout         ActionKind = "logout"
	ActionSelectTab      ActionKind = "select_tab"
	ActionEnterRoom      ActionKind = "enter_room"
	ActionExitRoom       ActionKind = "exit_room"
)

// Action is one shell transition with its argument.
type Action struct {
	Kind ActionKind
	User string
	Tab  string
}

// Reduce applies action to state. It has no side effects; unknown actions and
// tabs leave the state unchanged.
func Reduce(state ShellState, action Action) ShellState {
	switch action.Kind {
	case ActionLoginSucceeded:
		state.Authenticated = true
		state.User = action.User
		state.LoginError = ""
		if !IsTab(state.Tab) {
			state.Tab = DefaultTab
		}
	case ActionLoginFailed:
		// a rejected attempt never signs out an authenticated session
		state.LoginError = auth.InvalidCredentialsMessage
	case ActionLogout:
		return NewShellState()
	case ActionSelectTab:
		if state.Authenticated && IsTab(action.Tab) {
			state.Tab = action.Tab
		}
	case ActionEnterRoom:
		if state.Authenticated {
			state.InRoom = true
		}
	case ActionExitRoom:
		state.InRoom = false
	}
	return state
}
