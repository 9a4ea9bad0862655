package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// ErrAgentNotFound is returned when no client is registered under a name.
var ErrAgentNotFound = errors.New("agent not found")

// Registry resolves agent names to clients and caches capability cards.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]RemoteAgentClient
	cards   map[string]*CapabilityCard
	logger  *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		clients: make(map[string]RemoteAgentClient),
		cards:   make(map[string]*CapabilityCard),
		logger:  logger.With("component", "agent-registry"),
	}
}

// Register adds a client under name, replacing any previous registration.
func (r *Registry) Register(name string, client RemoteAgentClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[name] = client
	delete(r.cards, name)
	r.logger.Info("registered remote agent", "agent", name)
}

// Resolve returns the client registered under name.
func (r *Registry) Resolve(name string) (RemoteAgentClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return client, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.clients[name]
	return ok
}

// Names returns all registered agent names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Card returns the capability card for name, fetching it once and caching.
func (r *Registry) Card(ctx context.Context, name string) (*CapabilityCard, error) {
	r.mu.RLock()
	card, ok := r.cards[name]
	r.mu.RUnlock()
	if ok {
		return card, nil
	}

	client, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	card, err = client.GetCard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch card for %s: %w", name, err)
	}

	r.mu.Lock()
	r.cards[name] = card
	r.mu.Unlock()
	return card, nil
}

// CapabilityPrompt renders the registered agents and their skills as a
// text block for triage and planning prompts. Agents whose card cannot
// be fetched appear by name only.
func (r *Registry) CapabilityPrompt(ctx context.Context) string {
	var b strings.Builder
	for _, name := range r.Names() {
		card, err := r.Card(ctx, name)
		if err != nil {
			r.logger.Warn("capability card unavailable", "agent", name, "error", err)
			fmt.Fprintf(&b, "- %s\n", name)
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", name, card.Description)
		for _, skill := range card.Skills {
			fmt.Fprintf(&b, "  - %s: %s\n", skill.Name, skill.Description)
		}
	}
	return b.String()
}

// Close closes every registered client, returning the first error.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var firstErr error
	for name, client := range r.clients {
		if err := client.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close client for %s: %w", name, err)
		}
	}
	return firstErr
}
