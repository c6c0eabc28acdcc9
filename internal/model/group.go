package model

import "time"

// Group is a named channel scoping a set of messages. Groups are immutable
// once created and are never deleted.
type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=64"`
	Description string `json:"description" validate:"max=256"`
	CreatedBy   int64  `json:"created_by" validate:"required,gt=0"`
}
