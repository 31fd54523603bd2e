package handlers

import (
	"bytes"
	"clementus360/ai-helper-web/config"
	"clementus360/ai-helper-web/views"
	"net/http"
)

// PageHandler renders view as a full HTML document. The page is built in
// memory first so a failing view never leaves a half-written response.
func PageHandler(title string, view views.View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r = views.WithRequestCache(r)
		root, err := view.Render(r)
		if err != nil {
			config.Logger.Error("Failed to render ", view.Name(), ": ", err)
			writeError(w, "Something went wrong rendering this page", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := views.WriteDocument(&buf, title, root); err != nil {
			config.Logger.Error("Failed to write document for ", view.Name(), ": ", err)
			writeError(w, "Something went wrong rendering this page", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		buf.WriteTo(w)
	}
}
