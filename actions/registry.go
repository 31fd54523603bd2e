package actions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"clementus360/ai-helper-web/config"
)

var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrDuplicateAction = errors.New("action already registered")
	ErrInvalidParams   = errors.New("invalid action parameters")
)

// Action is a programmatic step that can be run by name with JSON parameters.
type Action struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	Run func(ctx context.Context, params json.RawMessage) (any, error) `json:"-"`
}

type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]Action)}
}

func (r *Registry) Register(a Action) error {
	if a.Name == "" || a.Run == nil {
		return fmt.Errorf("action %q needs a name and a run function", a.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.actions[a.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAction, a.Name)
	}
	r.actions[a.Name] = a
	return nil
}

func (r *Registry) Get(name string) (Action, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actions[name]
	return a, ok
}

// List returns every action ordered by name.
func (r *Registry) List() []Action {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Action, 0, len(r.actions))
	for _, a := range r.actions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) Run(ctx context.Context, name string, params json.RawMessage) (any, error) {
	a, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	config.Logger.Debugf("Running action %s", name)
	return a.Run(ctx, params)
}

func decodeParams(params json.RawMessage, into any) error {
	if len(params) == 0 {
		return fmt.Errorf("%w: empty body", ErrInvalidParams)
	}
	if err := json.Unmarshal(params, into); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}
