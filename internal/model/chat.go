package model

// Role is the author of a chat turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the roles accepted from clients.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// ChatTurn is one message of a chat conversation.
type ChatTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
