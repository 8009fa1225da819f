package res

type UserResponse struct {
	ID       string `json:"id"`
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
	LastSeen string `json:"lastSeen"`
}
