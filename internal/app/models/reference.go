package models

import (
	"time"
)

// Language is a lookup record based on the 'languages' table
type Language struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Code      string    `json:"code" db:"code" example:"de"` // Unique
	Name      string    `json:"name" db:"name" example:"German"`
	IsActive  bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Country is a lookup record based on the 'countries' table
type Country struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Code      string    `json:"code" db:"code" example:"DE"` // Unique
	Name      string    `json:"name" db:"name" example:"Germany"`
	IsActive  bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Major is a lookup record based on the 'majors' table
type Major struct {
	ID         int64     `json:"id" db:"id" example:"1"`
	Name       string    `json:"name" db:"name" example:"Software Engineering"` // Unique
	Department string    `json:"department" db:"department" example:"Engineering"`
	IsActive   bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
