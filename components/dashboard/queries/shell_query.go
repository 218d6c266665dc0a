package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	"github.com/nisiafloresta/painel-bi/components/dashboard"
)

// SessionInput addresses the views of one session.
type SessionInput struct {
	Token string `json:"token"`
}

type shellService interface {
	Shell(ctx context.Context, token string) (dashboard.ShellState, error)
}

// ShellQuery returns the shell state of a logged-in session.
type ShellQuery struct {
	service shellService
}

// NewShellQuery builds the query.
func NewShellQuery(service shellService) *ShellQuery {
	return &ShellQuery{service: service}
}

var _ gocommand.Querier[SessionInput, dashboard.ShellState] = (*ShellQuery)(nil)

// Query resolves the shell state.
func (q *ShellQuery) Query(ctx context.Context, in SessionInput) (dashboard.ShellState, error) {
	return q.service.Shell(ctx, in.Token)
}

type pageService interface {
	Page(ctx context.Context, token string) (dashboard.PageView, error)
}

// PageQuery returns the full page model of a session.
type PageQuery struct {
	service pageService
}

// NewPageQuery builds the query.
func NewPageQuery(service pageService) *PageQuery {
	return &PageQuery{service: service}
}

var _ gocommand.Querier[SessionInput, dashboard.PageView] = (*PageQuery)(nil)

// Query assembles the page.
func (q *PageQuery) Query(ctx context.Context, in SessionInput) (dashboard.PageView, error) {
	return q.service.Page(ctx, in.Token)
}
