package catalog

import (
	"context"
	"errors"

	"github.com/angelmondragon/cantina-pos-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository defines the catalog read operations.
type ProductRepository interface {
	FindByID(context.Context, uuid.UUID) (*models.Product, error)
	ListByCategory(context.Context, string) ([]models.Product, error)
	ListLiquorSubcategory(context.Context, string) ([]models.Product, error)
}

// Repository is the GORM-backed product catalog.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads one product.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product")
	}
	return &product, nil
}

// ListByCategory returns the active products of a menu category, ordered
// the way the menu pages show them.
func (r *Repository) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("category = ? AND is_active", category).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing category products")
	}
	return products, nil
}

// ListLiquorSubcategory returns the active bottles of one liquor family
// (TEQUILA, WHISKY, ...).
func (r *Repository) ListLiquorSubcategory(ctx context.Context, name string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("subcategory = ? AND is_active", name).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing liquor products")
	}
	return products, nil
}
