package handlers

import (
	"clementus360/ai-helper-web/config"
	"clementus360/ai-helper-web/llm"
	"clementus360/ai-helper-web/types"
	"clementus360/ai-helper-web/views"
	"net/http"
	"net/url"
	"strings"
)

const fallbackReply = "I'm having trouble processing that right now. Could you rephrase what you're struggling with?"

// ChatStore is the message history of a chat session.
type ChatStore interface {
	GetMessages(id types.Identity, sessionID string) ([]types.Message, error)
	SaveMessage(id types.Identity, sessionID, sender, content string) error
}

// ChatHandler takes the chat form post, asks the model for a reply and
// sends the browser back to the chat page.
func ChatHandler(store ChatStore, model llm.ChatModel, modelName string, identify views.IdentityFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.PathValue(views.ChatIDParam)
		chatURL := "/chat/" + url.PathEscape(sessionID)

		id, err := identify(r)
		if err != nil || id.Anonymous() {
			redirect(w, r, "/login")
			return
		}

		message := strings.TrimSpace(r.PostFormValue("message"))
		if message == "" {
			redirect(w, r, chatURL)
			return
		}

		// Load the recent history before adding the new message to it
		history, err := store.GetMessages(id, sessionID)
		if err != nil {
			config.Logger.Warn("Failed to load chat history:", err)
			history = nil
		}
		if len(history) > config.MaxContextMessages {
			history = history[len(history)-config.MaxContextMessages:]
		}

		// Save the user message
		if err := store.SaveMessage(id, sessionID, "user", message); err != nil {
			config.Logger.Error("Failed to save message:", err)
			writeError(w, "Could not save message", http.StatusInternalServerError)
			return
		}

		reply := askModel(r, model, modelName, id, history, message)

		// Save the AI message
		if err := store.SaveMessage(id, sessionID, "ai", reply); err != nil {
			config.Logger.Error("Failed to save AI message:", err)
			writeError(w, "Could not save AI response", http.StatusInternalServerError)
			return
		}

		redirect(w, r, chatURL)
	}
}

func askModel(r *http.Request, model llm.ChatModel, modelName string, id types.Identity, history []types.Message, message string) string {
	msgs := make([]llm.ChatMessage, 0, len(history)+1)
	for _, m := range history {
		role := "user"
		if m.FromAI() {
			role = "assistant"
		}
		msgs = append(msgs, llm.ChatMessage{Role: role, Content: m.Content})
	}
	msgs = append(msgs, llm.ChatMessage{Role: "user", Content: message})

	req := llm.NewChatRequest(modelName, msgs)
	req.User = id.UserID

	resp, err := model.Chat(r.Context(), req)
	if err != nil {
		config.Logger.Error("Failed to get AI response:", err)
		return fallbackReply
	}
	text, err := resp.Text()
	if err != nil || strings.TrimSpace(text) == "" {
		config.Logger.Warn("Empty AI response:", err)
		return fallbackReply
	}
	return text
}
