package supabase

import (
	"clementus360/ai-helper-web/config"
	"clementus360/ai-helper-web/types"
	"errors"
	"os"

	"github.com/supabase-community/supabase-go"
)

var ErrMissingCredentials = errors.New("SUPABASE_URL or SUPABASE_KEY is missing")

// Store reads sessions, messages and tasks on behalf of the caller. Every
// query runs through a client carrying the caller's JWT so row level
// security applies.
type Store struct {
	apiURL string
	apiKey string
}

func NewStore(apiURL, apiKey string) (*Store, error) {
	if apiURL == "" || apiKey == "" {
		return nil, ErrMissingCredentials
	}
	return &Store{apiURL: apiURL, apiKey: apiKey}, nil
}

func Init() *Store {
	store, err := NewStore(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_KEY"))
	if err != nil {
		config.Logger.Fatal(err)
	}
	return store
}

func (s *Store) clientFor(id types.Identity) (*supabase.Client, error) {
	return supabase.NewClient(s.apiURL, s.apiKey, &supabase.ClientOptions{
		Headers: map[string]string{
			"Authorization": "Bearer " + id.Token,
		},
	})
}
