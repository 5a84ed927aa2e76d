package model

import "time"

// --- Domain Object ---

// Tag is the article tag domain model.
type Tag struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Slug      string
}

// --- Data Transfer Objects ---

// CreateTagRequest is the request body for creating a tag.
type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

// UpdateTagRequest is the request body for updating a tag.
type UpdateTagRequest struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

// TagResponse is the standard API shape of a tag.
type TagResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
}
