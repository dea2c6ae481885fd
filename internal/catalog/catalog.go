package catalog

import (
	"context"
	"errors"
	"strconv"

	"spa_router_echo/internal/models"
)

// ErrProductNotFound is returned when an id has no backing product
var ErrProductNotFound = errors.New("product not found")

// Catalog is the backing data of the products pages
type Catalog interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
}

// parseID converts a path parameter to a product id.
// Non-numeric ids can never exist, so they report ErrProductNotFound.
func parseID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 32)
	if err != nil || n == 0 {
		return 0, ErrProductNotFound
	}
	return uint(n), nil
}

// DemoProducts returns the courses shipped with the site
func DemoProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "React Router Guide",
			Price:       "$29.99",
			Description: "Complete guide to React Router v6 with practical examples.",
			Details: []string{
				"Learn client-side routing",
				"Dynamic routes with parameters",
				"Nested routes and layouts",
				"Protected routes",
				"Advanced patterns",
			},
		},
		{
			ID:          2,
			Name:        "SPA Development",
			Price:       "$39.99",
			Description: "Master Single Page Application development with React.",
			Details: []string{
				"SPA architecture",
				"Component composition",
				"State management",
				"Routing techniques",
				"Performance optimization",
			},
		},
		{
			ID:          3,
			Name:        "Web Development Pro",
			Price:       "$49.99",
			Description: "Complete web development course covering frontend and basics.",
			Details: []string{
				"HTML/CSS fundamentals",
				"JavaScript advanced",
				"React framework",
				"Routing and navigation",
				"Best practices",
			},
		},
		{
			ID:          4,
			Name:        "Advanced React",
			Price:       "$59.99",
			Description: "Advanced React patterns and best practices.",
			Details: []string{
				"Hooks and custom hooks",
				"Performance tuning",
				"Code splitting",
				"Error boundaries",
				"Testing strategies",
			},
		},
	}
}

// StaticCatalog serves a fixed product list
type StaticCatalog struct {
	products []models.Product
}

// NewStaticCatalog creates a catalog over products, kept in the given order
func NewStaticCatalog(products []models.Product) *StaticCatalog {
	return &StaticCatalog{products: products}
}

// List returns every product
func (c *StaticCatalog) List(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

// Get returns the product with the given id
func (c *StaticCatalog) Get(_ context.Context, id string) (models.Product, error) {
	n, err := parseID(id)
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range c.products {
		if p.ID == n {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}
