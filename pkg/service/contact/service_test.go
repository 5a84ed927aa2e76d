package contact

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/officinaverde/blog-api/pkg/constant"
	"github.com/officinaverde/blog-api/pkg/domain/model"
)

// fakeContactRepo keeps submissions in insertion order, newest first on List.
type fakeContactRepo struct {
	messages []*model.ContactMessage
}

func (r *fakeContactRepo) Create(_ context.Context, req *model.SubmitContactRequest) (*model.ContactMessage, error) {
	m := &model.ContactMessage{
		ID:      fmt.Sprintf("msg-%d", len(r.messages)+1),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	r.messages = append(r.messages, m)
	return m, nil
}

func (r *fakeContactRepo) List(_ context.Context, page, pageSize int) ([]*model.ContactMessage, int, error) {
	reversed := make([]*model.ContactMessage, 0, len(r.messages))
	for i := len(r.messages) - 1; i >= 0; i-- {
		reversed = append(reversed, r.messages[i])
	}
	start := (page - 1) * pageSize
	if start > len(reversed) {
		start = len(reversed)
	}
	end := start + pageSize
	if end > len(reversed) {
		end = len(reversed)
	}
	return reversed[start:end], len(r.messages), nil
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(&fakeContactRepo{})
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *model.SubmitContactRequest
		wantErr bool
	}{
		{
			name: "valid submission",
			req:  &model.SubmitContactRequest{Name: "Marco", Email: "marco@example.com", Message: "Buongiorno"},
		},
		{
			name:    "blank name",
			req:     &model.SubmitContactRequest{Name: "   ", Email: "marco@example.com", Message: "Buongiorno"},
			wantErr: true,
		},
		{
			name:    "blank message",
			req:     &model.SubmitContactRequest{Name: "Marco", Email: "marco@example.com", Message: " "},
			wantErr: true,
		},
		{
			name:    "malformed email",
			req:     &model.SubmitContactRequest{Name: "Marco", Email: "not-an-email", Message: "Buongiorno"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tt.req)
			if tt.wantErr {
				if !errors.Is(err, constant.ErrValidation) {
					t.Errorf("Submit() error = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Submit() error = %v", err)
			}
		})
	}
}

func TestListNormalizesPagination(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		req := &model.SubmitContactRequest{
			Name:    "Marco",
			Email:   "marco@example.com",
			Message: fmt.Sprintf("messaggio %d", i+1),
		}
		if _, err := svc.Submit(ctx, req); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
	}

	// Out-of-range values fall back to page 1, size 10.
	resp, err := svc.List(ctx, 0, -5)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if resp.Page != 1 || resp.PageSize != 10 {
		t.Errorf("Page/PageSize = %d/%d, want 1/10", resp.Page, resp.PageSize)
	}
	if resp.Total != 3 || len(resp.List) != 3 {
		t.Fatalf("Total = %d, len = %d, want 3/3", resp.Total, len(resp.List))
	}
	if resp.List[0].Message != "messaggio 3" {
		t.Errorf("first message = %q, want newest first", resp.List[0].Message)
	}
}
