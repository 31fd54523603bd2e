package views

import (
	"net/http"

	"clementus360/ai-helper-web/config"
	"clementus360/ai-helper-web/types"
)

type dashboardData struct {
	SignedIn bool
	Sessions []types.Session
	Tasks    []types.Task
	Notice   string
}

func newDashboardView(deps Deps) View {
	return &templateView{
		name: "dashboard",
		data: func(r *http.Request) any {
			id := deps.identity(r)
			data := dashboardData{SignedIn: !id.Anonymous()}
			if id.Anonymous() {
				return data
			}

			// Both lists are non-critical; render whatever loaded.
			sessions, err := deps.sessions(r, id)
			if err != nil {
				config.Logger.Warn("Failed to fetch sessions:", err)
				data.Notice = "Some of your data could not be loaded."
			}
			data.Sessions = sessions

			tasks, err := deps.Store.GetTasks(id, config.MaxDashboardTasks)
			if err != nil {
				config.Logger.Warn("Failed to fetch tasks:", err)
				data.Notice = "Some of your data could not be loaded."
			}
			data.Tasks = tasks

			return data
		},
	}
}
