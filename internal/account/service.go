package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jdgames/account-service/internal/auth"
	"github.com/jdgames/account-service/internal/authz"
	"github.com/jdgames/account-service/internal/platform/httpx"
)

// Service wraps account business rules.
type Service struct {
	logger *slog.Logger
	repo   Repository
	codec  *auth.Codec
	policy authz.Policy
	cache  *Cache
}

// NewService constructs a new Service.
func NewService(logger *slog.Logger, repo Repository, codec *auth.Codec, policy authz.Policy, cache *Cache) *Service {
	return &Service{logger: logger, repo: repo, codec: codec, policy: policy, cache: cache}
}

// LoginResult carries the issued session token and the account summary.
type LoginResult struct {
	Token   string  `json:"token"`
	Account Summary `json:"user"`
}

// Login verifies username/password credentials and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	acct, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", httpx.ErrNotFound)
		}
		return nil, err
	}
	if !auth.VerifyPassword(password, acct.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid password", httpx.ErrValidation)
	}
	token, err := s.codec.Issue(acct.ID, acct.Username, acct.Role)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user logged in", slog.String("username", acct.Username))
	return &LoginResult{Token: token, Account: acct.Summary()}, nil
}

// SignupInput is the field set required to create an account.
type SignupInput struct {
	Nickname string
	Username string
	Email    string
	Password string
}

// Signup creates a new account with the default player role. Two concurrent
// signups can both pass the uniqueness pre-check; the store's unique indexes
// resolve that race and the repository reports it as a duplicate.
func (s *Service) Signup(ctx context.Context, in SignupInput) error {
	taken, err := s.repo.UsernameOrEmailTaken(ctx, in.Username, in.Email)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: username or email already exists", httpx.ErrDuplicate)
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return err
	}
	acct := &Account{
		ID:           uuid.New(),
		Nickname:     in.Nickname,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         authz.RolePlayer,
	}
	if err := s.repo.Create(ctx, acct); err != nil {
		return err
	}
	s.logger.Info("account created", slog.String("username", in.Username))
	return nil
}

// GetProfile returns the public projection for an account. The identifier
// is validated before any store access.
func (s *Service) GetProfile(ctx context.Context, rawID string) (*Profile, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID format", httpx.ErrValidation)
	}
	if profile, ok := s.cache.GetProfile(ctx, id); ok {
		return profile, nil
	}
	acct, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", httpx.ErrNotFound)
		}
		return nil, err
	}
	profile := acct.Profile()
	s.cache.SetProfile(ctx, profile)
	return profile, nil
}

// Edit applies an open field map to the target account. The caller may edit
// its own account unconditionally; editing another account requires the
// edit-other capability.
func (s *Service) Edit(ctx context.Context, identity *authz.Identity, rawID string, updates map[string]any) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID format", httpx.ErrValidation)
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return fmt.Errorf("%w: user not found", httpx.ErrNotFound)
		}
		return err
	}
	if identity.ID != id && !s.policy.Allows(identity.Role, authz.CapEditOtherAccounts) {
		return fmt.Errorf("%w: access denied", httpx.ErrForbidden)
	}
	if err := s.repo.UpdateFields(ctx, id, updates); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	s.logger.Info("account updated",
		slog.String("id", id.String()),
		slog.String("by", identity.Username))
	return nil
}

// EditRole updates only the role field. The new role must belong to the
// closed role set.
func (s *Service) EditRole(ctx context.Context, rawID, rawRole string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID format", httpx.ErrValidation)
	}
	role, ok := authz.ParseRole(rawRole)
	if !ok {
		return fmt.Errorf("%w: invalid role", httpx.ErrValidation)
	}
	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	s.logger.Info("role updated",
		slog.String("id", id.String()),
		slog.String("role", string(role)))
	return nil
}

// SetSuspended updates only the suspended flag.
func (s *Service) SetSuspended(ctx context.Context, rawID string, suspended bool) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID format", httpx.ErrValidation)
	}
	if err := s.repo.SetSuspended(ctx, id, suspended); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	s.logger.Info("suspension updated",
		slog.String("id", id.String()),
		slog.Bool("suspended", suspended))
	return nil
}
