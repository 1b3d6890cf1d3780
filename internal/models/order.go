package models

// Order is a single line owned by a User. Orders are kept in insertion order.
type Order struct {
	ID          uint    `json:"-" gorm:"primaryKey"`
	OwnerID     uint    `json:"-" gorm:"index;not null"`
	ProductName string  `json:"productName" gorm:"not null" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"min=1"`
}

// Total is price times quantity.
func (o Order) Total() float64 {
	return o.Price * float64(o.Quantity)
}
