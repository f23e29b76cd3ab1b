package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/metrics"
	image_repository "localbuzz-feed-service/internal/repository/image"
	image_repository_postgres "localbuzz-feed-service/internal/repository/image/postgres"
	post_repository "localbuzz-feed-service/internal/repository/post"
	post_repository_postgres "localbuzz-feed-service/internal/repository/post/postgres"
	vote_repository "localbuzz-feed-service/internal/repository/vote"
	vote_repository_postgres "localbuzz-feed-service/internal/repository/vote/postgres"
)

type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

type Transaction interface {
	PostRepository() post_repository.Repository
	VoteRepository() vote_repository.Repository
	ImageRepository() image_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type PostgresUnitOfWork struct {
	pool    *pgxpool.Pool
	log     *logger.Logger
	metrics metrics.Provider
}

func NewPostgresUOW(pool *pgxpool.Pool, log *logger.Logger, metrics metrics.Provider) UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log, metrics: metrics}
}

func (uow *PostgresUnitOfWork) Begin(ctx context.Context) (Transaction, error) {
	tx, err := uow.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: uow.log, metrics: uow.metrics}, nil
}

type PostgresTransaction struct {
	tx      pgx.Tx
	log     *logger.Logger
	metrics metrics.Provider
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) PostRepository() post_repository.Repository {
	return post_repository_postgres.NewPostRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) VoteRepository() vote_repository.Repository {
	return vote_repository_postgres.NewVoteRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) ImageRepository() image_repository.Repository {
	return image_repository_postgres.NewImageRepository(t.tx, t.log)
}
