package model

type Product struct {
	DTO
	Name       string           `gorm:"not null" validate:"required" json:"name"`
	Slug       string           `gorm:"index" json:"slug"`
	Price      float64          `gorm:"not null" json:"price"`
	Stock      int              `gorm:"default:0" json:"stock"`
	CategoryID uint             `gorm:"index;not null" json:"categoryId"`
	Category   *ProductCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

type Products []Product

type FilterProduct struct {
	SearchKey  string `query:"search"`
	CategoryID *uint  `query:"category"`
	Limit      *int   `query:"limit"`
	Page       *int   `query:"page"`
}
