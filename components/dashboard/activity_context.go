package dashboard

import "context"

// Channels tag which inbound surface triggered a render.
const (
	ChannelHTTP     = "http"
	ChannelGoRouter = "gorouter"
	ChannelCLI      = "cli"
)

// ActivityContext attributes telemetry to a session and surface.
type ActivityContext struct {
	Session string
	UserID  string
	Channel string
}

type activityKey struct{}

// ContextWithActivity attaches meta to ctx. A nil ctx starts from Background.
func ContextWithActivity(ctx context.Context, meta ActivityContext) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, activityKey{}, meta)
}

func activityContextFrom(ctx context.Context) ActivityContext {
	if ctx == nil {
		return ActivityContext{}
	}
	meta, _ := ctx.Value(activityKey{}).(ActivityContext)
	return meta
}
