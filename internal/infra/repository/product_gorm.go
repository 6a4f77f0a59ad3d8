package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) Create(ctx context.Context, product *model.Product) error {
	if err := r.db.WithContext(ctx).Omit("Category").Create(product).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

// 名前昇順＋カテゴリ結合でページング
func (r *ProductGormRepository) List(ctx context.Context, offset int, limit int) ([]model.Product, error) {
	var products []model.Product

	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("name asc").
		Offset(offset).
		Limit(limit).
		Find(&products).Error

	if err != nil {
		return []model.Product{}, translateDBError(err)
	}
	return products, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&p).Error

	if err != nil {
		return model.Product{}, translateDBError(err)
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, product *model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"price":       product.Price,
			"category_id": product.CategoryID,
		})

	if res.Error != nil {
		return translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)

	if res.Error != nil {
		return translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品名の部分一致（ILIKE）
func (r *ProductGormRepository) Search(ctx context.Context, query string) ([]model.Product, error) {
	var products []model.Product

	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name asc").
		Find(&products).Error

	if err != nil {
		return []model.Product{}, translateDBError(err)
	}
	return products, nil
}
