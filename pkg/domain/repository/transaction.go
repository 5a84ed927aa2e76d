package repository

import "context"

// Repositories aggregates every repository that can take part in a single
// transaction.
type Repositories struct {
	Article        ArticleRepository
	Tag            TagRepository
	Category       CategoryRepository
	User           UserRepository
	ContactMessage ContactMessageRepository
}

// TransactionManager runs a unit of business logic with all repository
// operations inside one database transaction.
//
// Note that the article service's create+tags and update+tags paths
// intentionally do NOT run under a transaction: the two-step shape and its
// partial-failure state are part of the documented contract.
type TransactionManager interface {
	// Do calls fn with transaction-bound repositories. If fn returns an error
	// the transaction rolls back, otherwise it commits.
	Do(ctx context.Context, fn func(repos Repositories) error) error
}
