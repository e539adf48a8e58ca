package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Menwuyelet/jobboard/internal/domain"
	"github.com/Menwuyelet/jobboard/internal/logger"
	"github.com/Menwuyelet/jobboard/internal/repository"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, email, role, first_name, last_name, gender, nationality,
	       can_post_ajob, jobs_posted, number_of_hires, is_active, password_hash, date_joined`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	logger.EnterMethod("userRepository.Create", "email", u.Email, "username", u.Username)

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.DateJoined = time.Now().UTC()

	query := `INSERT INTO users (id, username, email, role, first_name, last_name, gender, nationality,
	          can_post_ajob, jobs_posted, number_of_hires, is_active, password_hash, date_joined)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	logger.DatabaseCall("INSERT", "users", "userID", u.ID)

	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Username, u.Email, u.Role, u.FirstName, u.LastName, u.Gender, u.Nationality,
		u.CanPostAJob, u.JobsPosted, u.NumberOfHires, u.IsActive, u.PasswordHash, u.DateJoined)
	if err != nil {
		logger.ExitMethodWithError("userRepository.Create", err, "email", u.Email)
		return mapMutationError(err, "email or username already taken")
	}
	logger.ExitMethod("userRepository.Create", "userID", u.ID)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.FirstName, &u.LastName, &u.Gender,
		&u.Nationality, &u.CanPostAJob, &u.JobsPosted, &u.NumberOfHires, &u.IsActive,
		&u.PasswordHash, &u.DateJoined)
	if err != nil {
		return nil, mapLookupError(err, "user not found")
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET username = $1, email = $2, first_name = $3, last_name = $4,
	          gender = $5, nationality = $6, is_active = $7, password_hash = $8 WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		u.Username, u.Email, u.FirstName, u.LastName, u.Gender, u.Nationality,
		u.IsActive, u.PasswordHash, u.ID)
	if err != nil {
		return mapMutationError(err, "email or username already taken")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.E(domain.CodeNotFound, "user not found")
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.E(domain.CodeNotFound, "user not found")
	}
	return nil
}

func (r *userRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY date_joined`
	rows, err := r.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.FirstName, &u.LastName,
			&u.Gender, &u.Nationality, &u.CanPostAJob, &u.JobsPosted, &u.NumberOfHires,
			&u.IsActive, &u.PasswordHash, &u.DateJoined); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) SetCanPost(ctx context.Context, id uuid.UUID, canPost bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET can_post_ajob = $1 WHERE id = $2`, canPost, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.E(domain.CodeNotFound, "user not found")
	}
	return nil
}

func (r *userRepository) IncrementJobsPosted(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET jobs_posted = jobs_posted + 1 WHERE id = $1`, id)
	return err
}

func (r *userRepository) IncrementNumberOfHires(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET number_of_hires = number_of_hires + 1 WHERE id = $1`, id)
	return err
}
