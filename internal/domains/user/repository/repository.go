package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lodging/infras/otel"
	"lodging/infras/postgres"
	"lodging/internal/domains/user/model"
	gDto "lodging/shared/dto"
	gRepo "lodging/shared/repository"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

// repositoryImpl only adds lookups by login name on top of the generic repository.
type repositoryImpl struct {
	gRepo.Repository[model.User]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// UsernameFilter matches the account with the given login name.
func UsernameFilter(username string) gDto.FilterGroup {
	return gDto.And(gDto.Eq(model.TableName, model.FieldUsername, username))
}

// GetByUsername returns a zero User when no account matches.
func (r *repositoryImpl) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return r.Get(ctx, UsernameFilter(username)) //nolint:wrapcheck
}
