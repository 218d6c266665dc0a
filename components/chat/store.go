package chat

import "sync"

// Conversations keeps one conversation per session token.
type Conversations struct {
	mu    sync.Mutex
	items map[string]*Conversation
}

// NewConversations builds an empty store.
func NewConversations() *Conversations {
	return &Conversations{items: map[string]*Conversation{}}
}

// Get returns the conversation for token, creating it on section if missing.
func (c *Conversations) Get(token, section string) *Conversation {
	c.mu.Lock()
	defer c.mu.Unlock()
	conv, ok := c.items[token]
	if !ok {
		conv = NewConversation(section)
		c.items[token] = conv
	}
	return conv
}

// Lookup returns the conversation for token without creating one.
func (c *Conversations) Lookup(token string) (*Conversation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	conv, ok := c.items[token]
	return conv, ok
}

// Drop forgets the conversation for token.
func (c *Conversations) Drop(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, token)
}
