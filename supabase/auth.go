package supabase

import (
	"clementus360/ai-helper-web/types"
	"fmt"

	gotrue "github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
)

// SignIn exchanges an email and password for a session through Supabase auth.
func (s *Store) SignIn(email, password string) (types.AuthSession, error) {
	client, err := supabase.NewClient(s.apiURL, s.apiKey, nil)
	if err != nil {
		return types.AuthSession{}, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	resp, err := client.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return types.AuthSession{}, fmt.Errorf("sign in failed: %w", err)
	}

	return types.AuthSession{
		AccessToken: resp.AccessToken,
		ExpiresIn:   resp.ExpiresIn,
	}, nil
}

// SignUp creates an account. With email confirmation enabled the returned
// session has no access token.
func (s *Store) SignUp(email, password string) (types.AuthSession, error) {
	client, err := supabase.NewClient(s.apiURL, s.apiKey, nil)
	if err != nil {
		return types.AuthSession{}, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	resp, err := client.Auth.Signup(gotrue.SignupRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return types.AuthSession{}, fmt.Errorf("sign up failed: %w", err)
	}

	return types.AuthSession{
		AccessToken: resp.Session.AccessToken,
		ExpiresIn:   resp.Session.ExpiresIn,
	}, nil
}

// SignOut revokes the session behind token.
func (s *Store) SignOut(token string) error {
	client, err := supabase.NewClient(s.apiURL, s.apiKey, nil)
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}

	if err := client.Auth.WithToken(token).Logout(); err != nil {
		return fmt.Errorf("sign out failed: %w", err)
	}
	return nil
}
