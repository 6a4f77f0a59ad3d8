package repository

import (
	"app/internal/domain/model"
	"context"
)

type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	List(ctx context.Context) ([]model.Recipe, error)
	FindByID(ctx context.Context, id int64) (model.Recipe, error)
	Update(ctx context.Context, recipe *model.Recipe) error
	Delete(ctx context.Context, id int64) error
}
