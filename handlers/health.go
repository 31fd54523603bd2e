package handlers

import (
	"clementus360/ai-helper-web/types"
	"clementus360/ai-helper-web/views"
	"net/http"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.HealthResponse{
		Success: true,
		Status:  "ok",
	})
}

// StaticHandler serves the embedded assets. Mount it under /static/.
func StaticHandler() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(views.StaticFS())))
}
