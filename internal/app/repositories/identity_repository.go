package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IndiraMehta/EduTask/internal/app/models"
	"github.com/IndiraMehta/EduTask/internal/pkg/apperrors"
	"github.com/IndiraMehta/EduTask/internal/pkg/dberrors"
)

// IdentityRepository handles credential and refresh token storage
type IdentityRepository struct {
	db *pgxpool.Pool
}

// NewIdentityRepository creates a new IdentityRepository instance
func NewIdentityRepository(db *pgxpool.Pool) *IdentityRepository {
	return &IdentityRepository{db: db}
}

// Create inserts a new identity and returns its numeric ID.
func (r *IdentityRepository) Create(ctx context.Context, identity *models.Identity) (int64, error) {
	query := squirrel.Insert("identities").
		Columns("uid", "email", "password_hash").
		Values(identity.UID, identity.Email, identity.PasswordHash).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build identity insert query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("failed to create identity: %w", err)
	}
	return id, nil
}

// GetByEmail retrieves an identity by email. Returns nil when not found.
func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	query := squirrel.Select("id", "uid", "email", "password_hash", "created_at").
		From("identities").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build identity query: %w", err)
	}

	identity := &models.Identity{}
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&identity.ID, &identity.UID, &identity.Email, &identity.PasswordHash, &identity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity by email: %w", err)
	}
	return identity, nil
}

// GetByUID retrieves an identity by its stable uid. Returns nil when not found.
func (r *IdentityRepository) GetByUID(ctx context.Context, uid string) (*models.Identity, error) {
	query := squirrel.Select("id", "uid", "email", "password_hash", "created_at").
		From("identities").
		Where(squirrel.Eq{"uid": uid}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build identity query: %w", err)
	}

	identity := &models.Identity{}
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&identity.ID, &identity.UID, &identity.Email, &identity.PasswordHash, &identity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity by uid: %w", err)
	}
	return identity, nil
}

// GetByID retrieves an identity by its numeric ID. Returns nil when not found.
func (r *IdentityRepository) GetByID(ctx context.Context, id int64) (*models.Identity, error) {
	query := squirrel.Select("id", "uid", "email", "password_hash", "created_at").
		From("identities").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build identity query: %w", err)
	}

	identity := &models.Identity{}
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&identity.ID, &identity.UID, &identity.Email, &identity.PasswordHash, &identity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity by id: %w", err)
	}
	return identity, nil
}

// SaveRefreshToken stores a refresh token for an identity.
func (r *IdentityRepository) SaveRefreshToken(ctx context.Context, identityID int64, token string, expiresAt time.Time) error {
	query := squirrel.Insert("refresh_tokens").
		Columns("identity_id", "token", "expires_at").
		Values(identityID, token, expiresAt).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build refresh token insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken looks up a refresh token and validates its state.
func (r *IdentityRepository) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := squirrel.Select("id", "identity_id", "token", "expires_at", "revoked").
		From("refresh_tokens").
		Where(squirrel.Eq{"token": token}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build refresh token query: %w", err)
	}

	rt := &models.RefreshToken{}
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&rt.ID, &rt.IdentityID, &rt.Token, &rt.ExpiresAt, &rt.Revoked,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	if rt.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(rt.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}
	return rt, nil
}

// RevokeRefreshToken marks a refresh token as revoked.
func (r *IdentityRepository) RevokeRefreshToken(ctx context.Context, token string) error {
	query := squirrel.Update("refresh_tokens").
		Set("revoked", true).
		Where(squirrel.Eq{"token": token}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build refresh token update query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
