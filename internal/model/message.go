package model

import "time"

// Message is one entry in a group's ledger. CreatedAt is assigned by the
// database at insert time and is the sole ordering key; ties are broken by
// id, which follows insertion order.
//
// Username is a view field resolved from the sender at read time, never
// stored on the row. It is null when the sender cannot be resolved.
type Message struct {
	ID        int64     `json:"id"`
	GroupID   int64     `json:"group_id"`
	SenderID  int64     `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Username  *string   `json:"username"`
}

// PostMessageRequest mirrors the client payload, camelCase keys included.
// The client echoes its own username so the response can carry it without a
// second lookup.
type PostMessageRequest struct {
	GroupID  int64  `json:"groupId" validate:"required,gt=0"`
	SenderID int64  `json:"senderId" validate:"required,gt=0"`
	Content  string `json:"content" validate:"required"`
	Username string `json:"username"`
}
