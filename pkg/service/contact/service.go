package contact

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/officinaverde/blog-api/pkg/constant"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/domain/repository"
)

type Service interface {
	// Submit validates and stores a public contact form submission.
	Submit(ctx context.Context, req *model.SubmitContactRequest) (*model.ContactMessageResponse, error)
	// List pages through stored messages, newest first. Admin only.
	List(ctx context.Context, page, pageSize int) (*model.ContactMessageListResponse, error)
}

type serviceImpl struct {
	repo repository.ContactMessageRepository
}

func NewService(repo repository.ContactMessageRepository) Service {
	return &serviceImpl{repo: repo}
}

func (s *serviceImpl) Submit(ctx context.Context, req *model.SubmitContactRequest) (*model.ContactMessageResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", constant.ErrValidation)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("%w: message must not be empty", constant.ErrValidation)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", constant.ErrValidation)
	}

	m, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return toResponse(m), nil
}

func (s *serviceImpl) List(ctx context.Context, page, pageSize int) (*model.ContactMessageListResponse, error) {
	q := repository.PageQuery{Page: page, PageSize: pageSize}
	q.Normalize()

	messages, total, err := s.repo.List(ctx, q.Page, q.PageSize)
	if err != nil {
		return nil, err
	}

	list := make([]*model.ContactMessageResponse, len(messages))
	for i, m := range messages {
		list[i] = toResponse(m)
	}
	return &model.ContactMessageListResponse{
		List:     list,
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

func toResponse(m *model.ContactMessage) *model.ContactMessageResponse {
	return &model.ContactMessageResponse{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
	}
}
