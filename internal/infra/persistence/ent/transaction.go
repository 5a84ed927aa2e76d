package ent

import (
	"context"
	"fmt"

	"github.com/officinaverde/blog-api/ent"
	"github.com/officinaverde/blog-api/pkg/domain/repository"
)

// entTransactionManager is the Ent-backed transaction manager implementation.
type entTransactionManager struct {
	entClient *ent.Client
	dbType    string
}

// NewEntTransactionManager is the constructor for entTransactionManager.
func NewEntTransactionManager(client *ent.Client, dbType string) repository.TransactionManager {
	return &entTransactionManager{
		entClient: client,
		dbType:    dbType,
	}
}

// Do opens an Ent transaction and wraps every repository in the Repositories
// aggregate with the transactional client.
func (tm *entTransactionManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := tm.entClient.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to open transaction: %w", err)
	}

	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()

	repos := repository.Repositories{
		Article:        NewArticleRepo(tx.Client(), tm.dbType),
		Tag:            NewTagRepo(tx.Client()),
		Category:       NewCategoryRepo(tx.Client()),
		User:           NewUserRepo(tx.Client()),
		ContactMessage: NewContactMessageRepo(tx.Client()),
	}

	if err := fn(repos); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("transaction failed: %w, rollback also failed: %v", err, rerr)
		}
		return err
	}

	return tx.Commit()
}
