package model

import "time"

// --- Domain Object ---

// Category is the article category domain model.
type Category struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Slug      string
}

// --- Data Transfer Objects ---

// CreateCategoryRequest is the request body for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug"`
}

// UpdateCategoryRequest is the request body for updating a category.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

// CategoryResponse is the standard API shape of a category.
type CategoryResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
}
