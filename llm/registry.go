package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrUnknownModel   = errors.New("unknown model")
	ErrDuplicateModel = errors.New("model already registered")
	ErrInvalidParams  = errors.New("invalid model parameters")
)

// Model is a callable entry in the registry. Invoke takes the request
// parameters as JSON and returns a JSON-encodable result.
type Model struct {
	ID          string `json:"id"`
	Collection  string `json:"collection"`
	Description string `json:"description"`

	Invoke func(ctx context.Context, params json.RawMessage) (any, error) `json:"-"`
}

type Registry struct {
	mu     sync.RWMutex
	models map[string]Model
}

func NewRegistry() *Registry {
	return &Registry{models: make(map[string]Model)}
}

func (r *Registry) Register(m Model) error {
	if m.ID == "" || m.Invoke == nil {
		return fmt.Errorf("model %q needs an id and an invoke function", m.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.models[m.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateModel, m.ID)
	}
	r.models[m.ID] = m
	return nil
}

func (r *Registry) Get(id string) (Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[id]
	return m, ok
}

// List returns every model ordered by id.
func (r *Registry) List() []Model {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Model, 0, len(r.models))
	for _, m := range r.models {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Registry) Invoke(ctx context.Context, id string, params json.RawMessage) (any, error) {
	m, ok := r.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, id)
	}
	return m.Invoke(ctx, params)
}
