package postgres

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, translateError(err, "failed to find product by ID")
	}

	return &entity.Product{
		ID:         productM.ID,
		Title:      productM.Title,
		Price:      productM.Price,
		OwnerID:    productM.OwnerID,
		IsActive:   productM.IsActive,
		IsApproved: productM.IsApproved,
		CreatedAt:  productM.CreatedAt,
		UpdatedAt:  productM.UpdatedAt,
	}, nil
}
