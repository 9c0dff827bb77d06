package model

import "time"

// ProductCategory uses a plain nullable DeletedAt column instead of
// gorm.DeletedAt: archived categories stay visible to the admin listing,
// the timestamp only derives the published/archived status.
type ProductCategory struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Slug      string     `gorm:"index" json:"slug"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`

	// ProductCount is selected as an aggregate by the listing query.
	ProductCount int64 `gorm:"->;-:migration" json:"productCount"`
}

type ProductCategories []ProductCategory

type CreateCategoryInput struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type EditCategoryInput struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type FilterCategory struct {
	Search string `query:"search"`
	Column string `query:"column"`
	Method string `query:"method"`
	Page   int    `query:"page"`
}
