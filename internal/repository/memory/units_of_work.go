// Package memory provides an in-process unit of work over the memory
// repositories. There is no real transaction: Commit and Rollback are
// no-ops, which is sufficient for behavioural tests.
package memory

import (
	"context"

	image_repository "localbuzz-feed-service/internal/repository/image"
	post_repository "localbuzz-feed-service/internal/repository/post"
	"localbuzz-feed-service/internal/repository/postgres"
	vote_repository "localbuzz-feed-service/internal/repository/vote"
)

type MemoryUnitOfWork struct {
	posts  post_repository.Repository
	votes  vote_repository.Repository
	images image_repository.Repository
}

func NewMemoryUOW(
	posts post_repository.Repository,
	votes vote_repository.Repository,
	images image_repository.Repository,
) postgres.UnitOfWork {
	return &MemoryUnitOfWork{posts: posts, votes: votes, images: images}
}

func (uow *MemoryUnitOfWork) Begin(ctx context.Context) (postgres.Transaction, error) {
	return &memoryTransaction{uow: uow}, nil
}

type memoryTransaction struct {
	uow *MemoryUnitOfWork
}

func (t *memoryTransaction) Commit(ctx context.Context) error   { return nil }
func (t *memoryTransaction) Rollback(ctx context.Context) error { return nil }

func (t *memoryTransaction) PostRepository() post_repository.Repository {
	return t.uow.posts
}

func (t *memoryTransaction) VoteRepository() vote_repository.Repository {
	return t.uow.votes
}

func (t *memoryTransaction) ImageRepository() image_repository.Repository {
	return t.uow.images
}
