package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so every repository can run
// against the pool or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.Repositories
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:           db,
		Repositories: newRepositories(db),
	}
}

func newRepositories(dbtx DBTX) repository.Repositories {
	return repository.Repositories{
		Users:         NewUserRepository(dbtx),
		Verifications: NewVerificationRequestRepository(dbtx),
		Categories:    NewCategoryRepository(dbtx),
		Jobs:          NewJobRepository(dbtx),
		Applications:  NewApplicationRepository(dbtx),
		Notifications: NewNotificationRepository(dbtx),
	}
}

// WithinTx binds all repositories to one transaction, runs fn, and commits
// only when fn succeeds. The workflow layer relies on this to keep state
// transitions and their in-app notifications atomic.
func (s *Store) WithinTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(newRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("rollback failed: %v (original: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The insert races required to stay atomic (one pending
// verification per user, one application per job/user pair) resolve through
// these constraints rather than application locks.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// mapMutationError converts driver-level failures into the coded taxonomy.
func mapMutationError(err error, conflictMsg string) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return domain.Wrap(domain.CodeConflict, conflictMsg, err)
	}
	return err
}

// mapLookupError converts sql.ErrNoRows into a coded not-found error.
func mapLookupError(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Wrap(domain.CodeNotFound, notFoundMsg, err)
	}
	return err
}
