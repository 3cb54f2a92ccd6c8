package store

const (
	// MessageRoleUser labels the human turn of a conversation.
	MessageRoleUser = "user"
	// MessageRoleSystem labels server-generated notices.
	MessageRoleSystem = "system"
)

// Message is one conversation turn. Role is either MessageRoleUser,
// MessageRoleSystem, or an assistant role name (Auto, PM, ...). Messages are
// append-only; creation order is the conversation order.
type Message struct {
	ID        int32
	UID       string
	ProjectID int32
	Role      string
	Content   string
	CreatedTs int64
}

type FindMessage struct {
	ID        *int32
	UID       *string
	ProjectID *int32
}
