package models

import "time"

// FullName is stored as embedded full_name_* columns.
type FullName struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// Address is stored as embedded address_* columns.
type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// User is the stored user record. Password never leaves the service in JSON.
type User struct {
	ID       uint     `json:"-" gorm:"primaryKey"`
	UserID   int64    `json:"userId" gorm:"uniqueIndex;not null"`
	Username string   `json:"username" gorm:"uniqueIndex;type:varchar(100);not null"`
	Password string   `json:"-" gorm:"type:varchar(255);not null"`
	FullName FullName `json:"fullName" gorm:"embedded;embeddedPrefix:full_name_"`
	Age      int      `json:"age"`
	Email    string   `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	IsActive bool     `json:"isActive" gorm:"not null"`
	Hobbies  Hobbies  `json:"hobbies" gorm:"type:text;serializer:json"`
	Address  Address  `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	// Orders is only populated by the order endpoints; every other read clears it.
	Orders    []Order   `json:"orders,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// WithoutOrders returns a copy of u with the orders projection removed.
func (u User) WithoutOrders() User {
	u.Orders = nil
	return u
}
