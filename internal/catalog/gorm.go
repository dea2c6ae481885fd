package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"spa_router_echo/internal/models"
)

// GormCatalog reads products from the products table
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a GormCatalog
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// List returns every product ordered by id
func (c *GormCatalog) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Get returns the product with the given id
func (c *GormCatalog) Get(ctx context.Context, id string) (models.Product, error) {
	n, err := parseID(id)
	if err != nil {
		return models.Product{}, err
	}

	var product models.Product
	err = c.db.WithContext(ctx).First(&product, n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %d: %w", n, err)
	}
	return product, nil
}

// Seed inserts the demo products when the table is empty
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := DemoProducts()
	if err := db.WithContext(ctx).Create(&products).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}
