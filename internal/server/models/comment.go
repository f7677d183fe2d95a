package models

import "time"

// Comment is a reader comment attached to a post.
type Comment struct {
	ID        string
	PostID    string
	Author    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
