package catalog

import (
	"github.com/angelmondragon/cantina-pos-backend/pkg/db/models"
	"github.com/google/uuid"
)

// ProductDTO is the catalog payload returned to clients. Liquor rows carry
// per-tier prices; everything else uses the single price.
type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Subcategory *string   `json:"subcategory,omitempty"`
	PriceBottle *float64  `json:"price_bottle,omitempty"`
	PriceLiter  *float64  `json:"price_liter,omitempty"`
	PriceCup    *float64  `json:"price_cup,omitempty"`
	Price       *float64  `json:"price,omitempty"`
}

func toProductDTO(product models.Product) ProductDTO {
	return ProductDTO{
		ID:          product.ID,
		Name:        product.Name,
		Type:        product.Type.String(),
		Category:    product.Category,
		Subcategory: product.Subcategory,
		PriceBottle: product.PriceBottle,
		PriceLiter:  product.PriceLiter,
		PriceCup:    product.PriceCup,
		Price:       product.Price,
	}
}

func toProductDTOs(products []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		out = append(out, toProductDTO(product))
	}
	return out
}
