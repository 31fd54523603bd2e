package views

import "net/http"

// Status codes the auth handlers put in the query string when redirecting
// back to a form.
const (
	AuthMissingFields = "missing"
	AuthBadLogin      = "credentials"
	AuthSignUpFailed  = "failed"
	AuthConfirmEmail  = "confirm"
	AuthSignedOut     = "signed_out"
)

var authMessages = map[string]string{
	AuthMissingFields: "Enter your email and password.",
	AuthBadLogin:      "That email and password did not match an account.",
	AuthSignUpFailed:  "We could not create your account. Try a different email or a longer password.",
	AuthConfirmEmail:  "Check your email to confirm your account, then sign in.",
	AuthSignedOut:     "You have been signed out.",
}

type authData struct {
	Action string
	Error  string
	Notice string
	// AltHref and AltLabel link to the other auth page.
	AltHref  string
	AltLabel string
}

// authStatus maps the error and notice query codes to fixed text; unknown
// codes are dropped so nothing from the URL reaches the page.
func authStatus(r *http.Request, data authData) authData {
	q := r.URL.Query()
	data.Error = authMessages[q.Get("error")]
	data.Notice = authMessages[q.Get("notice")]
	return data
}

func newLoginView() View {
	return &templateView{
		name: "login",
		data: func(r *http.Request) any {
			return authStatus(r, authData{
				Action:   "/login",
				AltHref:  "/signup",
				AltLabel: "Create an account",
			})
		},
	}
}

func newSignUpView() View {
	return &templateView{
		name: "signup",
		data: func(r *http.Request) any {
			return authStatus(r, authData{
				Action:   "/signup",
				AltHref:  "/login",
				AltLabel: "Already have an account? Sign in",
			})
		},
	}
}
