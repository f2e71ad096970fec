package db

import (
	"context"

	"github.com/wojtuswowo/charity-connect-rbac/internal/models"
)

func (db *Database) CreateAccount(ctx context.Context, acct models.Account) (models.Account, error) {
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO accounts (email, password_hash, first_name, last_name, role, is_approved)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		acct.Email, acct.PasswordHash, acct.FirstName, acct.LastName, acct.Role, acct.IsApproved,
	).Scan(&acct.ID, &acct.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "accounts_email_key") {
			return models.Account{}, models.ErrDuplicateEmail
		}
		return models.Account{}, err
	}

	return acct, nil
}

func (db *Database) GetAccount(ctx context.Context, id int) (models.Account, error) {
	var acct models.Account

	err := db.Pool.QueryRow(ctx,
		`SELECT id, email, password_hash, first_name, last_name, role, is_approved, created_at
		 FROM accounts WHERE id = $1`,
		id,
	).Scan(&acct.ID, &acct.Email, &acct.PasswordHash, &acct.FirstName, &acct.LastName,
		&acct.Role, &acct.IsApproved, &acct.CreatedAt)
	if err != nil {
		return models.Account{}, mapNoRows(err)
	}

	return acct, nil
}

func (db *Database) GetAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	var acct models.Account

	err := db.Pool.QueryRow(ctx,
		`SELECT id, email, password_hash, first_name, last_name, role, is_approved, created_at
		 FROM accounts WHERE email = $1`,
		email,
	).Scan(&acct.ID, &acct.Email, &acct.PasswordHash, &acct.FirstName, &acct.LastName,
		&acct.Role, &acct.IsApproved, &acct.CreatedAt)
	if err != nil {
		return models.Account{}, mapNoRows(err)
	}

	return acct, nil
}

func (db *Database) ListPendingAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, email, password_hash, first_name, last_name, role, is_approved, created_at
		 FROM accounts WHERE is_approved = FALSE ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var acct models.Account
		if err := rows.Scan(&acct.ID, &acct.Email, &acct.PasswordHash, &acct.FirstName,
			&acct.LastName, &acct.Role, &acct.IsApproved, &acct.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, acct)
	}

	return accounts, rows.Err()
}

func (db *Database) ApproveAccount(ctx context.Context, id int) error {
	tag, err := db.Pool.Exec(ctx,
		"UPDATE accounts SET is_approved = TRUE WHERE id = $1", id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
