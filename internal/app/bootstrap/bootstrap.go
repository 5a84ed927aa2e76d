package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/officinaverde/blog-api/internal/pkg/security"
	"github.com/officinaverde/blog-api/pkg/domain/model"
	"github.com/officinaverde/blog-api/pkg/domain/repository"
)

const (
	defaultAdminEmail    = "admin@officinaverde.it"
	defaultAdminNickname = "Amministratore"
)

type Bootstrapper struct {
	txManager repository.TransactionManager
}

func NewBootstrapper(txManager repository.TransactionManager) *Bootstrapper {
	return &Bootstrapper{txManager: txManager}
}

// SeedAdminAccount creates the initial administrator when the user table is
// empty. Credentials come from BLOG_ADMIN_EMAIL / BLOG_ADMIN_PASSWORD; without
// a password no account is created and the admin surface stays unreachable
// until one is registered and promoted by hand.
func (b *Bootstrapper) SeedAdminAccount(ctx context.Context) error {
	return b.txManager.Do(ctx, func(repos repository.Repositories) error {
		count, err := repos.User.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		if count > 0 {
			return nil
		}

		password := os.Getenv("BLOG_ADMIN_PASSWORD")
		if password == "" {
			log.Println("[bootstrap] no users found and BLOG_ADMIN_PASSWORD not set, skipping admin seeding")
			return nil
		}

		email := os.Getenv("BLOG_ADMIN_EMAIL")
		if email == "" {
			email = defaultAdminEmail
		}

		hash, err := security.HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		if _, err := repos.User.Create(ctx, &model.User{
			Email:        email,
			PasswordHash: hash,
			Nickname:     defaultAdminNickname,
			IsAdmin:      true,
		}); err != nil {
			return fmt.Errorf("failed to create admin account: %w", err)
		}

		log.Printf("[bootstrap] created initial admin account %s", email)
		return nil
	})
}
