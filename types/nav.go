package types

type NavLink struct {
	Label string
	Href  string
}

type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
