package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/officinaverde/blog-api/internal/pkg/security"
	"github.com/officinaverde/blog-api/pkg/constant"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/domain/repository"
	"github.com/officinaverde/blog-api/pkg/idgen"
)

// AuthService owns registration, login and session refresh. There is no
// ambient session state: identity travels in the JWT claims and every gated
// call receives it explicitly.
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.SessionResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.SessionResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*model.SessionResponse, error)
	// CurrentUser resolves the public user ID carried in the access token.
	CurrentUser(ctx context.Context, publicUserID string) (*model.UserResponse, error)
}

type authServiceImpl struct {
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
	tokenSvc  *TokenService
}

func NewAuthService(userRepo repository.UserRepository, txManager repository.TransactionManager, tokenSvc *TokenService) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		txManager: txManager,
		tokenSvc:  tokenSvc,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.SessionResponse, error) {
	var created *model.User
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		if _, err := repos.User.FindByEmail(ctx, req.Email); err == nil {
			return fmt.Errorf("%w: email already registered", constant.ErrConflict)
		} else if !errors.Is(err, constant.ErrNotFound) {
			return err
		}

		hash, err := security.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		created, err = repos.User.Create(ctx, &model.User{
			Email:        req.Email,
			PasswordHash: hash,
			Nickname:     req.Nickname,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[auth] new account registered: %s", created.Email)
	return s.session(created)
}

func (s *authServiceImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.SessionResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			return nil, fmt.Errorf("%w: wrong email or password", constant.ErrUnauthorized)
		}
		return nil, err
	}

	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: wrong email or password", constant.ErrUnauthorized)
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		log.Printf("[auth] failed to record login time for %s: %v", user.Email, err)
	}

	return s.session(user)
}

func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*model.SessionResponse, error) {
	claims, err := s.tokenSvc.Parse(refreshToken)
	if err != nil {
		return nil, err
	}

	dbID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return nil, constant.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, dbID)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			return nil, constant.ErrInvalidToken
		}
		return nil, err
	}

	return s.session(user)
}

func (s *authServiceImpl) CurrentUser(ctx context.Context, publicUserID string) (*model.UserResponse, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicUserID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return nil, constant.ErrNotFound
	}
	user, err := s.userRepo.FindByID(ctx, dbID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user)
}

func (s *authServiceImpl) session(user *model.User) (*model.SessionResponse, error) {
	session, err := s.tokenSvc.IssueSession(user)
	if err != nil {
		return nil, err
	}
	session.User, err = toUserResponse(user)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func toUserResponse(user *model.User) (*model.UserResponse, error) {
	publicID, err := idgen.GeneratePublicID(user.ID, idgen.EntityTypeUser)
	if err != nil {
		return nil, fmt.Errorf("failed to generate public user ID: %w", err)
	}
	return &model.UserResponse{
		ID:          publicID,
		Email:       user.Email,
		Nickname:    user.Nickname,
		IsAdmin:     user.IsAdmin,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}, nil
}
