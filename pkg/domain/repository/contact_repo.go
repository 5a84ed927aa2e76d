package repository

import (
	"context"

	"github.com/officinaverde/blog-api/pkg/domain/model"
)

// ContactMessageRepository is the persistence abstraction for contact-page
// submissions.
type ContactMessageRepository interface {
	Create(ctx context.Context, req *model.SubmitContactRequest) (*model.ContactMessage, error)
	List(ctx context.Context, page, pageSize int) ([]*model.ContactMessage, int, error)
}
