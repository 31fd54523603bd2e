package routes

import (
	"clementus360/ai-helper-web/actions"
	"clementus360/ai-helper-web/handlers"
	"clementus360/ai-helper-web/llm"
	"clementus360/ai-helper-web/views"
	"net/http"
)

// Deps is everything the non-page routes need next to the views.
type Deps struct {
	Views     views.Set
	Identify  views.IdentityFunc
	Auth      handlers.Authenticator
	Messages  handlers.ChatStore
	Chat      llm.ChatModel
	ChatModel string
	Models    *llm.Registry
	Actions   *actions.Registry
}

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux, deps Deps) error {
	if err := RegisterPageRoutes(mux, AppRoutes(deps.Views), deps.Views.Sidebar); err != nil {
		return err
	}
	RegisterAuthRoutes(mux, deps.Auth)
	RegisterChatRoutes(mux, deps)
	RegisterRegistryRoutes(mux, deps)
	RegisterAssetRoutes(mux)
	return nil
}

// RegisterAuthRoutes registers the form posts of the login, signup and sign out buttons
func RegisterAuthRoutes(mux *http.ServeMux, auth handlers.Authenticator) {
	mux.HandleFunc("POST /login", handlers.LoginHandler(auth))
	mux.HandleFunc("POST /signup", handlers.SignupHandler(auth))
	mux.HandleFunc("POST /logout", handlers.LogoutHandler(auth))
}

// RegisterChatRoutes registers the chat form post
func RegisterChatRoutes(mux *http.ServeMux, deps Deps) {
	mux.HandleFunc("POST /chat/{"+views.ChatIDParam+"}",
		handlers.ChatHandler(deps.Messages, deps.Chat, deps.ChatModel, deps.Identify))
}

// RegisterRegistryRoutes registers the model and action registries
func RegisterRegistryRoutes(mux *http.ServeMux, deps Deps) {
	mux.HandleFunc("GET /models", handlers.ModelsHandler(deps.Models))
	mux.HandleFunc("POST /models/{id}", handlers.InvokeModelHandler(deps.Models, deps.Identify))
	mux.HandleFunc("GET /actions", handlers.ActionsHandler(deps.Actions))
	mux.HandleFunc("POST /actions/{name}", handlers.RunActionHandler(deps.Actions, deps.Identify))
}

// RegisterAssetRoutes registers the stylesheet and health check
func RegisterAssetRoutes(mux *http.ServeMux) {
	mux.Handle("GET /static/", handlers.StaticHandler())
	mux.HandleFunc("GET /healthz", handlers.HealthHandler)
}
