package handlers

import (
	"clementus360/ai-helper-web/actions"
	"clementus360/ai-helper-web/config"
	"clementus360/ai-helper-web/llm"
	"clementus360/ai-helper-web/views"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const maxParamsBytes = 1 << 20

// ModelsHandler lists the registered models.
func ModelsHandler(reg *llm.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"models": reg.List()})
	}
}

// InvokeModelHandler runs the model named by the {id} path segment with the
// request body as its parameters.
func InvokeModelHandler(reg *llm.Registry, identify views.IdentityFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := readParams(w, r, identify)
		if !ok {
			return
		}

		id := r.PathValue("id")
		out, err := reg.Invoke(r.Context(), id, params)
		switch {
		case errors.Is(err, llm.ErrUnknownModel):
			writeJSONError(w, "Unknown model", http.StatusNotFound)
		case errors.Is(err, llm.ErrInvalidParams):
			writeJSONError(w, err.Error(), http.StatusBadRequest)
		case err != nil:
			config.Logger.Error("Model ", id, " failed: ", err)
			writeJSONError(w, "Model call failed", http.StatusBadGateway)
		default:
			writeJSON(w, http.StatusOK, map[string]any{"result": out})
		}
	}
}

// ActionsHandler lists the registered actions.
func ActionsHandler(reg *actions.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"actions": reg.List()})
	}
}

// RunActionHandler runs the action named by the {name} path segment.
func RunActionHandler(reg *actions.Registry, identify views.IdentityFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := readParams(w, r, identify)
		if !ok {
			return
		}

		name := r.PathValue("name")
		out, err := reg.Run(r.Context(), name, params)
		switch {
		case errors.Is(err, actions.ErrUnknownAction):
			writeJSONError(w, "Unknown action", http.StatusNotFound)
		case errors.Is(err, actions.ErrInvalidParams):
			writeJSONError(w, err.Error(), http.StatusBadRequest)
		case err != nil:
			config.Logger.Error("Action ", name, " failed: ", err)
			writeJSONError(w, "Action failed", http.StatusBadGateway)
		default:
			writeJSON(w, http.StatusOK, map[string]any{"result": out})
		}
	}
}

// readParams checks the caller and reads the JSON body. It writes the
// error response itself and reports whether the handler should continue.
func readParams(w http.ResponseWriter, r *http.Request, identify views.IdentityFunc) (json.RawMessage, bool) {
	id, err := identify(r)
	if err != nil || id.Anonymous() {
		writeJSONError(w, "Missing or invalid access token", http.StatusUnauthorized)
		return nil, false
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxParamsBytes))
	if err != nil {
		writeJSONError(w, "Could not read request body", http.StatusBadRequest)
		return nil, false
	}
	if !json.Valid(body) {
		writeJSONError(w, "Invalid JSON body", http.StatusBadRequest)
		return nil, false
	}
	return body, true
}
