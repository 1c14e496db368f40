package postgres

import (
	"context"
	"fmt"

	"favsetter/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable = "users"
)

// StoreUser inserts a user. A taken email is reported as storage.ErrDuplicate.
func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var result PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", translateError(err))
	}

	return result.ToDomain(), nil
}

// UserByEmail returns the user registered with email, or nil.
func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.findUser(ctx, goqu.I("email").Eq(email))
}

// UserByID returns the user with the given ID, or nil.
func (p *PgSQL) UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error) {
	return p.findUser(ctx, goqu.I("id").Eq(uuid.UUID(ID)))
}

// UpdateUserPassword stores a new password hash and refreshes updated_at.
func (p *PgSQL) UpdateUserPassword(ctx context.Context,
	ID domain.UserID,
	passwordHash string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"password_hash": passwordHash,
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(ID))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user password in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) findUser(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
