package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"

	"github.com/nisiafloresta/painel-bi/components/dashboard"
)

// SectionInput selects a section. An empty ID means the active tab.
type SectionInput struct {
	Token string `json:"token"`
	ID    string `json:"id"`
}

type sectionService interface {
	Section(ctx context.Context, token, id string) (dashboard.SectionView, error)
}

// SectionQuery renders one section for a session.
type SectionQuery struct {
	service sectionService
}

// NewSectionQuery builds the query.
func NewSectionQuery(service sectionService) *SectionQuery {
	return &SectionQuery{service: service}
}

var _ gocommand.Querier[SectionInput, dashboard.SectionView] = (*SectionQuery)(nil)

// Query renders the section.
func (q *SectionQuery) Query(ctx context.Context, in SectionInput) (dashboard.SectionView, error) {
	return q.service.Section(ctx, in.Token, in.ID)
}

type roomService interface {
	Room(ctx context.Context, token string) (dashboard.RoomView, error)
}

// RoomQuery renders the current situational room screen.
type RoomQuery struct {
	service roomService
}

// NewRoomQuery builds the query.
func NewRoomQuery(service roomService) *RoomQuery {
	return &RoomQuery{service: service}
}

var _ gocommand.Querier[SessionInput, dashboard.RoomView] = (*RoomQuery)(nil)

// Query renders the room.
func (q *RoomQuery) Query(ctx context.Context, in SessionInput) (dashboard.RoomView, error) {
	return q.service.Room(ctx, in.Token)
}

type chatService interface {
	Chat(ctx context.Context, token string) (dashboard.ChatView, error)
}

// ChatQuery returns the chat widget of a session.
type ChatQuery struct {
	service chatService
}

// NewChatQuery builds the query.
func NewChatQuery(service chatService) *ChatQuery {
	return &ChatQuery{service: service}
}

var _ gocommand.Querier[SessionInput, dashboard.ChatView] = (*ChatQuery)(nil)

// Query returns the widget.
func (q *ChatQuery) Query(ctx context.Context, in SessionInput) (dashboard.ChatView, error) {
	return q.service.Chat(ctx, in.Token)
}
