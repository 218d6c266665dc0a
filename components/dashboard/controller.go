package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/nisiafloresta/painel-bi/components/auth"
	"github.com/nisiafloresta/painel-bi/components/situation"
)

// Template names resolved by the renderer.
const (
	LoginTemplate = "login"
	PageTemplate  = "painel"
	RoomTemplate  = "sala"
)

var errMissingRenderer = errors.New("dashboard: controller requires a renderer")

// PageSource resolves the models rendered by the controller.
type PageSource interface {
	Page(ctx context.Context, token string) (PageView, error)
	LoginState(ctx context.Context, token string) (ShellState, error)
}

// ControllerOptions wires a Controller.
type ControllerOptions struct {
	Pages    PageSource
	Renderer Renderer
	BasePath string
}

// Controller renders the HTML pages of the panel.
type Controller struct {
	pages    PageSource
	renderer Renderer
	basePath string
}

// NewController wires the page source into a controller.
func NewController(opts ControllerOptions) *Controller {
	if opts.BasePath == "" {
		opts.BasePath = "/painel"
	}
	return &Controller{pages: opts.Pages, renderer: opts.Renderer, basePath: opts.BasePath}
}

// RenderLogin writes the login page for token, showing a previous failure.
func (c *Controller) RenderLogin(ctx context.Context, token string, out io.Writer) error {
	if c.renderer == nil {
		return errMissingRenderer
	}
	state, err := c.pages.LoginState(ctx, token)
	if err != nil {
		return err
	}
	payload := map[string]any{
		"base_path": c.basePath,
		"token":     token,
		"error":     state.LoginError,
		"username":  auth.FixedUsername,
	}
	_, err = c.renderer.Render(LoginTemplate, payload, out)
	return err
}

// RenderPage writes the dashboard shell, or the situational room when the
// session is inside it. ErrUnauthenticated means the caller should redirect
// to the login page.
func (c *Controller) RenderPage(ctx context.Context, token string, out io.Writer) error {
	if c.renderer == nil {
		return errMissingRenderer
	}
	page, err := c.pages.Page(ctx, token)
	if err != nil {
		return err
	}
	payload, err := templatePayload(page)
	if err != nil {
		return err
	}
	payload["base_path"] = c.basePath
	payload["token"] = page.Token
	name := PageTemplate
	if page.Room != nil {
		name = RoomTemplate
		payload["rotate_seconds"] = int(situation.RotateInterval.Seconds())
	}
	_, err = c.renderer.Render(name, payload, out)
	return err
}

// templatePayload flattens v into the map shape templates index by JSON name.
func templatePayload(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("dashboard: encode template payload: %w", err)
	}
	payload := map[string]any{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("dashboard: decode template payload: %w", err)
	}
	return payload, nil
}
