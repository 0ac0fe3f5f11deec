package models

// ChatRole identifies the author of a transcript entry.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "model"
)

// ChatMessage is one entry of a session transcript. Transcripts are
// append-only and held in memory for the lifetime of the session.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}
