package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/accounts/repository/accounts"
	"encore.app/accounts/repository/regions"
)

// Repository combines all domain-specific queriers
type Repository struct {
	Accounts accounts.Querier
	Regions  regions.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Accounts: accounts.New(db),
		Regions:  regions.New(db),
	}
}
