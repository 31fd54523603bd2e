package supabase

import (
	"clementus360/ai-helper-web/config"
	"clementus360/ai-helper-web/types"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
)

var (
	ErrNoToken      = errors.New("no access token")
	ErrInvalidToken = errors.New("invalid access token")
)

// IdentityFromRequest reads the caller's access token from the session
// cookie, falling back to the Authorization header. The token is parsed
// but not verified; Supabase checks it on every query.
func IdentityFromRequest(r *http.Request) (types.Identity, error) {
	var tokenString string
	if c, err := r.Cookie(config.AccessTokenCookie); err == nil {
		tokenString = c.Value
	}
	if tokenString == "" {
		tokenString = strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	}
	if tokenString == "" {
		return types.Identity{}, ErrNoToken
	}

	token, _, err := new(jwt.Parser).ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return types.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return types.Identity{}, fmt.Errorf("%w: unexpected claims", ErrInvalidToken)
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return types.Identity{}, fmt.Errorf("%w: missing sub", ErrInvalidToken)
	}

	return types.Identity{UserID: sub, Token: tokenString}, nil
}
