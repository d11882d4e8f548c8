package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jdgames/account-service/internal/authz"
	"github.com/jdgames/account-service/internal/platform/httpx"
)

// Repository defines persistence operations for account records.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, acct *Account) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	UpdateRole(ctx context.Context, id uuid.UUID, role authz.Role) error
	SetSuspended(ctx context.Context, id uuid.UUID, suspended bool) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const accountColumns = `id, nickname, username, email, password_hash, role, is_staff, is_suspended, created_at, updated_at`

// editableColumns is the fixed set of columns the permissive edit path may
// touch. Column names interpolated into UPDATE statements must come from
// this set; values are always parameterized.
var editableColumns = map[string]struct{}{
	"nickname":     {},
	"username":     {},
	"email":        {},
	"role":         {},
	"is_staff":     {},
	"is_suspended": {},
}

// FindByUsername fetches an account by its unique username.
func (r *PGRepository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE username = $1`, username)
	return scanAccount(row)
}

// FindByID fetches an account by its identifier.
func (r *PGRepository) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

// UsernameOrEmailTaken reports whether any account already claims the
// username or the email.
func (r *PGRepository) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1 OR email = $2)`,
		username, email).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("account: uniqueness check: %w", err)
	}
	return taken, nil
}

// Create inserts a new account record. A unique-index violation, including
// one raised by a concurrent signup that passed the pre-check, is reported
// as a duplicate.
func (r *PGRepository) Create(ctx context.Context, acct *Account) error {
	now := time.Now().UTC()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (id, nickname, username, email, password_hash, role, is_staff, is_suspended, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		acct.ID, acct.Nickname, acct.Username, acct.Email, acct.PasswordHash,
		acct.Role, acct.IsStaff, acct.IsSuspended, now)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username or email already exists", httpx.ErrDuplicate)
		}
		return fmt.Errorf("account: create: %w", err)
	}
	return nil
}

// UpdateFields applies an arbitrary field map to the account row. Keys
// outside editableColumns are rejected before any statement is built.
func (r *PGRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields to update", httpx.ErrValidation)
	}
	assignments := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)
	for column, value := range fields {
		if _, ok := editableColumns[column]; !ok {
			return fmt.Errorf("%w: unknown field %q", httpx.ErrValidation, column)
		}
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	args = append(args, time.Now().UTC())
	assignments = append(assignments, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE accounts SET %s WHERE id = $%d`, strings.Join(assignments, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username or email already exists", httpx.ErrDuplicate)
		}
		return fmt.Errorf("account: update fields: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user not found", httpx.ErrNotFound)
	}
	return nil
}

// UpdateRole updates only the role field.
func (r *PGRepository) UpdateRole(ctx context.Context, id uuid.UUID, role authz.Role) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts SET role = $1, updated_at = $2 WHERE id = $3`,
		role, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("account: update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user not found", httpx.ErrNotFound)
	}
	return nil
}

// SetSuspended updates only the suspended flag.
func (r *PGRepository) SetSuspended(ctx context.Context, id uuid.UUID, suspended bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts SET is_suspended = $1, updated_at = $2 WHERE id = $3`,
		suspended, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("account: set suspended: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user not found", httpx.ErrNotFound)
	}
	return nil
}

func scanAccount(row pgx.Row) (*Account, error) {
	var acct Account
	err := row.Scan(&acct.ID, &acct.Nickname, &acct.Username, &acct.Email,
		&acct.PasswordHash, &acct.Role, &acct.IsStaff, &acct.IsSuspended,
		&acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, fmt.Errorf("account: scan: %w", err)
	}
	return &acct, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ Repository = (*PGRepository)(nil)
