package model

import "time"

// --- Domain Object ---

// ContactMessage is a message submitted through the public contact page.
type ContactMessage struct {
	ID        string
	CreatedAt time.Time
	Name      string
	Email     string
	Subject   string
	Message   string
}

// --- Data Transfer Objects ---

// SubmitContactRequest is the public contact form body.
type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// ContactMessageResponse is the admin-facing shape of a contact message.
type ContactMessageResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
}

// ContactMessageListResponse is the paginated admin listing.
type ContactMessageListResponse struct {
	List     []*ContactMessageResponse `json:"list"`
	Total    int                       `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"pageSize"`
}
