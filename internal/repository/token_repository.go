package repository

import (
	"context"
	"database/sql"
	"time"
)

// Account types stored alongside refresh tokens.  Both customers and
// companies authenticate, so each token row records which table the
// account id points into.
const (
	AccountCustomer = "CUSTOMER"
	AccountCompany  = "COMPANY"
)

// TokenRepo persists and validates refresh tokens.  Only the SHA-256
// hash of a token is stored (single 'token_hash' column).
type TokenRepo struct{ DB *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

// StoreRefresh inserts a refresh token hash row for an account.
func (r *TokenRepo) StoreRefresh(ctx context.Context, accountType string, accountID uint64, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO refresh_tokens (account_type, account_id, token_hash, expires_at) VALUES (?,?,?,?)",
		accountType, accountID, tokenHash, exp)
	return err
}

// ValidateRefresh returns the account type and id if a non-revoked,
// non-expired token exists for the given hash.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (string, uint64, error) {
	var (
		accountType string
		accountID   uint64
		expiresAt   time.Time
		revokedAt   sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT account_type, account_id, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&accountType, &accountID, &expiresAt, &revokedAt)
	if err != nil {
		return "", 0, err
	}
	if revokedAt.Valid {
		return "", 0, sql.ErrNoRows
	}
	if time.Now().UTC().After(expiresAt) {
		return "", 0, sql.ErrNoRows
	}
	return accountType, accountID, nil
}

// RevokeByHash marks a token as revoked.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		tokenHash)
	return err
}

// RevokeAllForAccount revokes all of an account's active tokens.
func (r *TokenRepo) RevokeAllForAccount(ctx context.Context, accountType string, accountID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE account_type=? AND account_id=? AND revoked_at IS NULL",
		accountType, accountID)
	return err
}
