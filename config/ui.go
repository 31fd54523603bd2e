package config

import "clementus360/ai-helper-web/types"

// Cookie the Supabase client stores the access token in.
const AccessTokenCookie = "sb-access-token"

// Page limits
const (
	MaxSidebarSessions = 10
	MaxDashboardTasks  = 20
	// Earlier messages sent to the chat model with each new one.
	MaxContextMessages = 10
)

// SidebarLinks are the fixed entries of the navigation frame.
var SidebarLinks = []types.NavLink{
	{Label: "Dashboard", Href: "/dashboard"},
}
