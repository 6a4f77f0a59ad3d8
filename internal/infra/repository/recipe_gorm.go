package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"

	"gorm.io/gorm"
)

type RecipeGormRepository struct {
	db *gorm.DB
}

// DI
func NewRecipeGormRepository(db *gorm.DB) *RecipeGormRepository {
	return &RecipeGormRepository{db: db}
}

func (r *RecipeGormRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

func (r *RecipeGormRepository) List(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := r.db.WithContext(ctx).Order("id asc").Find(&recipes).Error; err != nil {
		return []model.Recipe{}, translateDBError(err)
	}
	return recipes, nil
}

func (r *RecipeGormRepository) FindByID(ctx context.Context, id int64) (model.Recipe, error) {
	var rec model.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return model.Recipe{}, translateDBError(err)
	}
	return rec, nil
}

func (r *RecipeGormRepository) Update(ctx context.Context, recipe *model.Recipe) error {
	res := r.db.WithContext(ctx).Model(&model.Recipe{}).
		Where("id = ?", recipe.ID).
		Updates(map[string]interface{}{
			"title":        recipe.Title,
			"description":  recipe.Description,
			"ingredients":  recipe.Ingredients,
			"instructions": recipe.Instructions,
		})

	if res.Error != nil {
		return translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *RecipeGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Recipe{}, id)

	if res.Error != nil {
		return translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
