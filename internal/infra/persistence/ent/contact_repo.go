package ent

import (
	"context"
	"fmt"

	"github.com/officinaverde/blog-api/ent"
	"github.com/officinaverde/blog-api/ent/contactmessage"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/domain/repository"
	"github.com/officinaverde/blog-api/pkg/idgen"
)

type contactMessageRepo struct {
	db *ent.Client
}

// NewContactMessageRepo is the constructor for contactMessageRepo.
func NewContactMessageRepo(db *ent.Client) repository.ContactMessageRepository {
	return &contactMessageRepo{db: db}
}

func (r *contactMessageRepo) toModel(m *ent.ContactMessage) *model.ContactMessage {
	if m == nil {
		return nil
	}
	publicID := mustPublicID(m.ID, idgen.EntityTypeContactMessage)
	return &model.ContactMessage{
		ID:        publicID,
		CreatedAt: m.CreatedAt,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
	}
}

func (r *contactMessageRepo) Create(ctx context.Context, req *model.SubmitContactRequest) (*model.ContactMessage, error) {
	created, err := r.db.ContactMessage.Create().
		SetName(req.Name).
		SetEmail(req.Email).
		SetSubject(req.Subject).
		SetMessage(req.Message).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return r.toModel(created), nil
}

func (r *contactMessageRepo) List(ctx context.Context, page, pageSize int) ([]*model.ContactMessage, int, error) {
	query := r.db.ContactMessage.Query()

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	entities, err := query.
		Order(ent.Desc(contactmessage.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}

	models := make([]*model.ContactMessage, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
	}
	return models, total, nil
}
