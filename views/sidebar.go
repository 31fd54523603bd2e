package views

import (
	"net/http"

	"clementus360/ai-helper-web/config"
	"clementus360/ai-helper-web/types"
)

type sidebarData struct {
	Links    []types.NavLink
	Sessions []types.Session
}

func newSidebarView(deps Deps) View {
	return &templateView{
		name: "sidebar",
		data: func(r *http.Request) any {
			data := sidebarData{Links: deps.Links}

			id := deps.identity(r)
			if id.Anonymous() {
				return data
			}
			sessions, err := deps.sessions(r, id)
			if err != nil {
				config.Logger.Warn("Failed to fetch sidebar sessions:", err)
				return data
			}
			if len(sessions) > config.MaxSidebarSessions {
				sessions = sessions[:config.MaxSidebarSessions]
			}
			data.Sessions = sessions
			return data
		},
	}
}
