package main

import (
	"clementus360/ai-helper-web/actions"
	"clementus360/ai-helper-web/config"
	"clementus360/ai-helper-web/llm"
	"clementus360/ai-helper-web/middleware"
	"clementus360/ai-helper-web/routes"
	"clementus360/ai-helper-web/supabase"
	"clementus360/ai-helper-web/views"
	"net/http"
)

func main() {

	config.LoadEnv()
	config.InitLogger()
	store := supabase.Init()

	openai := llm.NewOpenAI(llm.OpenAIConfig{
		APIKey:  config.OpenAIKey(),
		BaseURL: config.OpenAIBaseURL(),
	})
	if config.OpenAIKey() == "" {
		config.Logger.Warn("OPENAI_API_KEY is not set, chat replies will use the fallback message")
	}

	models := llm.NewRegistry()
	if err := llm.RegisterOpenAI(models, openai); err != nil {
		config.Logger.Fatal("Failed to register models:", err)
	}
	acts := actions.NewRegistry()
	if err := actions.RegisterBuiltins(acts, nil); err != nil {
		config.Logger.Fatal("Failed to register actions:", err)
	}

	set := views.NewSet(views.Deps{
		Store:    store,
		Identify: supabase.IdentityFromRequest,
		Links:    config.SidebarLinks,
	})

	mux := http.NewServeMux()
	err := routes.RegisterAllRoutes(mux, routes.Deps{
		Views:     set,
		Identify:  supabase.IdentityFromRequest,
		Auth:      store,
		Messages:  store,
		Chat:      openai,
		ChatModel: config.OpenAIModel(),
		Models:    models,
		Actions:   acts,
	})
	if err != nil {
		config.Logger.Fatal("Failed to register routes:", err)
	}

	handler := middleware.Chain(
		middleware.RequestIDMiddleware,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)(mux)

	addr := ":" + config.Port()
	config.Logger.Infof("Server is running on port %s", config.Port())
	config.Logger.Fatal(http.ListenAndServe(addr, handler))
}
