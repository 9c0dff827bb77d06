package model

import "time"

type UserAddress struct {
	DTO
	UserID     uint    `gorm:"index;not null" json:"userId"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Province   string  `gorm:"not null" json:"province"`
	City       string  `gorm:"not null" json:"city"`
	Street     string  `json:"street"`
	PostalCode string  `json:"postalCode"`
	Detail     string  `json:"detail"`

	// Main is filled at response time from the primary pointer, never stored.
	Main bool `gorm:"-" json:"main,omitempty"`
}

// UserPrimaryAddress designates one of a user's addresses as the default.
// The unique index on UserID keeps it at most one row per user even when
// two requests race on the same account.
type UserPrimaryAddress struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId"`
	AddressID uint      `gorm:"not null" json:"addressId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AddressInput struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Province   string  `json:"province" validate:"required"`
	City       string  `json:"city" validate:"required"`
	Street     string  `json:"street"`
	PostalCode string  `json:"postalCode"`
	Detail     string  `json:"detail"`
	Main       bool    `json:"main"`
}
