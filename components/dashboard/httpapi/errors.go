package httpapi

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/nisiafloresta/painel-bi/components/auth"
	"github.com/nisiafloresta/painel-bi/components/chat"
	"github.com/nisiafloresta/painel-bi/components/dashboard"
	"github.com/nisiafloresta/painel-bi/components/situation"
)

// StatusFor maps panel errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, dashboard.ErrUnauthenticated), errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, dashboard.ErrUnknownSection), errors.Is(err, situation.ErrUnknownScreen):
		return http.StatusNotFound
	case errors.Is(err, dashboard.ErrNotInRoom), errors.Is(err, chat.ErrRequestInFlight), errors.Is(err, chat.ErrWidgetClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// MintToken issues a token for a browser that has none yet.
func MintToken() string {
	return uuid.NewString()
}

// TabRequest is the body of the tab selection endpoint.
type TabRequest struct {
	Tab string `json:"tab"`
}

// ScreenRequest is the body of the screen selection endpoint.
type ScreenRequest struct {
	Screen int `json:"screen"`
}

// MessageRequest is the body of the chat message endpoint.
type MessageRequest struct {
	Text string `json:"text"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string               `json:"token"`
	Shell dashboard.ShellState `json:"shell"`
}
