package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/cantina-pos-backend/pkg/enums"
)

// Product represents one menu listing. Liquor rows carry per-tier prices
// (bottle/liter/cup); food and beverage rows carry a single price.
type Product struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string            `gorm:"column:name;not null"`
	Type        enums.ProductType `gorm:"column:type;not null"`
	Category    string            `gorm:"column:category;not null"`
	Subcategory *string           `gorm:"column:subcategory"`
	PriceBottle *float64          `gorm:"column:price_bottle;type:numeric(10,2)"`
	PriceLiter  *float64          `gorm:"column:price_liter;type:numeric(10,2)"`
	PriceCup    *float64          `gorm:"column:price_cup;type:numeric(10,2)"`
	Price       *float64          `gorm:"column:price;type:numeric(10,2)"`
	IsActive    bool              `gorm:"column:is_active;not null"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table regardless of GORM pluralization settings.
func (Product) TableName() string {
	return "products"
}

// PriceFor returns the price for the requested tier, when the product is
// offered in it.
func (p Product) PriceFor(tier enums.PriceTier) (float64, bool) {
	var price *float64
	switch tier {
	case enums.PriceTierBottle:
		price = p.PriceBottle
	case enums.PriceTierLiter:
		price = p.PriceLiter
	case enums.PriceTierCup:
		price = p.PriceCup
	case enums.PriceTierSingle:
		price = p.Price
	}
	if price == nil {
		return 0, false
	}
	return *price, true
}
