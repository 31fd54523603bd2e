package views

import (
	"net/http"

	"clementus360/ai-helper-web/config"
	"clementus360/ai-helper-web/types"
)

// ChatIDParam is the path segment naming the chat session.
const ChatIDParam = "chat_id"

type chatData struct {
	ChatID   string
	SignedIn bool
	Messages []types.Message
	Metrics  *types.SessionMetrics
	Notice   string
}

func newChatView(deps Deps) View {
	return &templateView{
		name: "chat",
		data: func(r *http.Request) any {
			id := deps.identity(r)
			data := chatData{
				ChatID:   r.PathValue(ChatIDParam),
				SignedIn: !id.Anonymous(),
			}
			if id.Anonymous() || data.ChatID == "" {
				return data
			}

			messages, err := deps.Store.GetMessages(id, data.ChatID)
			if err != nil {
				config.Logger.Warn("Failed to fetch messages for session ", data.ChatID, ": ", err)
				data.Notice = "This conversation could not be loaded."
				return data
			}
			data.Messages = messages

			metrics, found, err := deps.Store.GetSessionMetrics(id, data.ChatID)
			if err != nil {
				config.Logger.Warn("Failed to fetch session metrics:", err)
			} else if found {
				data.Metrics = &metrics
			}
			return data
		},
	}
}
