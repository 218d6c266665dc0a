// Package sections describes the dashboard tabs and the text the chat
// assistant uses for each of them: greeting, suggested questions and the
// context block sent to the completion API.
package sections

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	catalogVersionV1 = "1"
	// DefaultSection is the tab shown right after login.
	DefaultSection = "unidades"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Section is a single dashboard tab.
type Section struct {
	ID          string   `json:"id" yaml:"id"`
	Label       string   `json:"label" yaml:"label"`
	Greeting    string   `json:"greeting" yaml:"greeting"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
	Context     string   `json:"context" yaml:"context"`
}

// Catalog is the decoded set of sections plus the assistant instructions.
type Catalog struct {
	Version          string    `json:"version" yaml:"version"`
	FallbackGreeting string    `json:"fallback_greeting" yaml:"fallback_greeting"`
	AssistantRole    string    `json:"assistant_role" yaml:"assistant_role"`
	Rules            []string  `json:"rules" yaml:"rules"`
	Sections         []Section `json:"sections" yaml:"sections"`
	Source           string    `json:"-" yaml:"-"`

	index map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		cat, err := Decode(strings.NewReader(string(embeddedCatalog)))
		if err != nil {
			// The catalog is embedded at build time, so this only fires on a broken build.
			panic(fmt.Errorf("sections: embedded catalog: %w", err))
		}
		cat.Source = "embedded"
		defaultCatalog = cat
	})
	return defaultCatalog
}

// Load reads a catalog override from disk.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("sections: open catalog %s: %w", path, err)
	}
	defer f.Close()
	cat, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sections: decode catalog %s: %w", path, err)
	}
	cat.Source = path
	return cat, nil
}

// Decode parses a catalog from any reader. Unknown fields are rejected.
func Decode(r io.Reader) (*Catalog, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var cat Catalog
	if err := decoder.Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("sections: catalog is empty")
		}
		return nil, fmt.Errorf("sections: parse catalog: %w", err)
	}
	if cat.Version == "" {
		cat.Version = catalogVersionV1
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	cat.buildIndex()
	return &cat, nil
}

// Validate checks required fields and duplicate ids.
func (c *Catalog) Validate() error {
	if c.Version != catalogVersionV1 {
		return fmt.Errorf("sections: unsupported catalog version %q", c.Version)
	}
	if strings.TrimSpace(c.FallbackGreeting) == "" {
		return errors.New("sections: fallback_greeting is required")
	}
	seen := make(map[string]struct{}, len(c.Sections))
	for idx, s := range c.Sections {
		if s.ID == "" {
			return fmt.Errorf("sections: section at index %d is missing id", idx)
		}
		if s.Label == "" {
			return fmt.Errorf("sections: section %s missing label", s.ID)
		}
		if s.Greeting == "" {
			return fmt.Errorf("sections: section %s missing greeting", s.ID)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("sections: catalog duplicates section %s", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}

func (c *Catalog) buildIndex() {
	c.index = make(map[string]int, len(c.Sections))
	for i, s := range c.Sections {
		c.index[s.ID] = i
	}
}

// Lookup finds a section by id.
func (c *Catalog) Lookup(id string) (Section, bool) {
	if c == nil {
		return Section{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Section{}, false
	}
	return c.Sections[i], true
}

// Has reports whether id is a known tab.
func (c *Catalog) Has(id string) bool {
	_, ok := c.Lookup(id)
	return ok
}

// IDs lists the section ids in tab order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.Sections))
	for i, s := range c.Sections {
		ids[i] = s.ID
	}
	return ids
}

// Greeting is the first assistant message for the section.
func (c *Catalog) Greeting(id string) string {
	if s, ok := c.Lookup(id); ok {
		return s.Greeting
	}
	return c.FallbackGreeting
}

// Suggestions returns a copy of the suggested questions; unknown sections
// have none.
func (c *Catalog) Suggestions(id string) []string {
	s, ok := c.Lookup(id)
	if !ok || len(s.Suggestions) == 0 {
		return []string{}
	}
	return append([]string(nil), s.Suggestions...)
}

// Context returns the section's context block, empty for unknown sections.
func (c *Catalog) Context(id string) string {
	s, _ := c.Lookup(id)
	return strings.TrimSpace(s.Context)
}

// SystemPrompt renders the instruction sent ahead of the conversation.
func (c *Catalog) SystemPrompt(id string) string {
	var b strings.Builder
	b.WriteString(c.AssistantRole)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Contexto atual da seção %q:\n", id)
	b.WriteString(c.Context(id))
	if len(c.Rules) > 0 {
		b.WriteString("\n\nIMPORTANTE:\n")
		for _, rule := range c.Rules {
			b.WriteString("- ")
			b.WriteString(rule)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
