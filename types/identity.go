package types

// Identity is the caller as read from their Supabase access token.
type Identity struct {
	UserID string
	Token  string
}

// Anonymous reports whether no user could be identified.
func (i Identity) Anonymous() bool {
	return i.UserID == ""
}
