package pgsql

import (
	portsrepo "github.com/healthpredictor/health_predictor_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo: newPgxUserRepository(dbPool),
	}
}
