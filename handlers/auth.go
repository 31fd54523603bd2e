package handlers

import (
	"clementus360/ai-helper-web/config"
	"clementus360/ai-helper-web/types"
	"clementus360/ai-helper-web/views"
	"net/http"
	"strings"
)

// Authenticator is the Supabase auth surface the sign-in forms need.
type Authenticator interface {
	SignIn(email, password string) (types.AuthSession, error)
	SignUp(email, password string) (types.AuthSession, error)
	SignOut(token string) error
}

// LoginHandler signs the user in from the login form and stores the access
// token in a cookie.
func LoginHandler(auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, password, ok := credentials(r)
		if !ok {
			redirect(w, r, "/login?error="+views.AuthMissingFields)
			return
		}

		session, err := auth.SignIn(email, password)
		if err != nil || session.AccessToken == "" {
			config.Logger.Warn("Sign in failed: ", err)
			redirect(w, r, "/login?error="+views.AuthBadLogin)
			return
		}

		setAccessToken(w, session)
		redirect(w, r, "/dashboard")
	}
}

// SignupHandler creates the account. When email confirmation is pending no
// session comes back, so the user is sent to the login page instead.
func SignupHandler(auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, password, ok := credentials(r)
		if !ok {
			redirect(w, r, "/signup?error="+views.AuthMissingFields)
			return
		}

		session, err := auth.SignUp(email, password)
		if err != nil {
			config.Logger.Warn("Sign up failed: ", err)
			redirect(w, r, "/signup?error="+views.AuthSignUpFailed)
			return
		}
		if session.AccessToken == "" {
			redirect(w, r, "/login?notice="+views.AuthConfirmEmail)
			return
		}

		setAccessToken(w, session)
		redirect(w, r, "/dashboard")
	}
}

// LogoutHandler revokes the session if there is one and always clears the cookie.
func LogoutHandler(auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(config.AccessTokenCookie); err == nil && c.Value != "" {
			if err := auth.SignOut(c.Value); err != nil {
				config.Logger.Warn("Sign out failed: ", err)
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     config.AccessTokenCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   config.CookieSecure(),
			SameSite: http.SameSiteLaxMode,
		})
		redirect(w, r, "/login?notice="+views.AuthSignedOut)
	}
}

func credentials(r *http.Request) (email, password string, ok bool) {
	email = strings.TrimSpace(r.PostFormValue("email"))
	password = r.PostFormValue("password")
	return email, password, email != "" && password != ""
}

func setAccessToken(w http.ResponseWriter, session types.AuthSession) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.AccessTokenCookie,
		Value:    session.AccessToken,
		Path:     "/",
		MaxAge:   session.ExpiresIn,
		HttpOnly: true,
		Secure:   config.CookieSecure(),
		SameSite: http.SameSiteLaxMode,
	})
}

// redirect answers a form post with a GET of target.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}
