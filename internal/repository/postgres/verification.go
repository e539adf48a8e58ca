package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

type verificationRequestRepository struct {
	db DBTX
}

func NewVerificationRequestRepository(db DBTX) repository.VerificationRequestRepository {
	return &verificationRequestRepository{db: db}
}

func (r *verificationRequestRepository) Create(ctx context.Context, req *domain.VerificationRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	req.CreatedAt = time.Now().UTC()

	// A partial unique index on (user_id) WHERE status = 'pending' backs the
	// one-pending-request-per-user invariant under concurrent submits.
	query := `INSERT INTO verification_requests (id, user_id, reason, status, created_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, req.ID, req.UserID, req.Reason, req.Status, req.CreatedAt)
	return mapMutationError(err, "a pending verification request already exists")
}

func (r *verificationRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.VerificationRequest, error) {
	req := &domain.VerificationRequest{}
	query := `SELECT id, user_id, reason, status, created_at FROM verification_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&req.ID, &req.UserID, &req.Reason, &req.Status, &req.CreatedAt)
	if err != nil {
		return nil, mapLookupError(err, "verification request not found")
	}
	return req, nil
}

func (r *verificationRequestRepository) HasPending(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM verification_requests WHERE user_id = $1 AND status = $2)`
	err := r.db.QueryRowContext(ctx, query, userID, domain.VerificationStatusPending).Scan(&exists)
	return exists, err
}

// UpdateStatus decides a pending request. The status predicate turns the
// decision into a compare-and-set so concurrent decides cannot both commit;
// the losing update affects zero rows and reports a conflict. Callers
// resolve existence beforehand.
func (r *verificationRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VerificationStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE verification_requests SET status = $1 WHERE id = $2 AND status = $3`,
		status, id, domain.VerificationStatusPending)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.E(domain.CodeConflict, "verification request has already been decided")
	}
	return nil
}

func (r *verificationRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.VerificationRequest, error) {
	query := `SELECT id, user_id, reason, status, created_at FROM verification_requests
	          WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *verificationRequestRepository) ListAll(ctx context.Context) ([]domain.VerificationRequest, error) {
	query := `SELECT id, user_id, reason, status, created_at FROM verification_requests
	          ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *verificationRequestRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.VerificationRequest, error) {
	query := `SELECT id, user_id, reason, status, created_at FROM verification_requests
	          WHERE status = 'pending' AND created_at < $1 ORDER BY created_at`
	return r.list(ctx, query, cutoff)
}

func (r *verificationRequestRepository) list(ctx context.Context, query string, args ...any) ([]domain.VerificationRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.VerificationRequest
	for rows.Next() {
		var req domain.VerificationRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.Reason, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
