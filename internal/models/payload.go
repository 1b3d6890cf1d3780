package models

import (
	"encoding/json"
	"errors"
)

// Hobbies decodes from either a JSON list of strings or a single string,
// which becomes a one-element list.
type Hobbies []string

func (h *Hobbies) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*h = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return errors.New("hobbies must be a string or a list of strings")
	}
	*h = Hobbies{single}
	return nil
}

// UserPayload is the inbound body of the create and update endpoints.
type UserPayload struct {
	UserID   int64    `json:"userId" validate:"min=1"`
	Username string   `json:"username" validate:"required"`
	Password string   `json:"password" validate:"required"`
	FullName FullName `json:"fullName"`
	Age      int      `json:"age" validate:"min=1"`
	Email    string   `json:"email" validate:"required,email"`
	IsActive *bool    `json:"isActive"`
	Hobbies  Hobbies  `json:"hobbies" validate:"required,min=1,dive,required"`
	Address  Address  `json:"address"`
	Orders   []Order  `json:"orders" validate:"omitempty,dive"`
}

// ToUser converts a validated payload into a record. isActive defaults to true.
func (p UserPayload) ToUser() *User {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	u := &User{
		UserID:   p.UserID,
		Username: p.Username,
		Password: p.Password,
		FullName: p.FullName,
		Age:      p.Age,
		Email:    p.Email,
		IsActive: active,
		Hobbies:  p.Hobbies,
		Address:  p.Address,
	}
	if p.Orders != nil {
		u.Orders = make([]Order, len(p.Orders))
		for i, o := range p.Orders {
			u.Orders[i] = Order{ProductName: o.ProductName, Price: o.Price, Quantity: o.Quantity}
		}
	}
	return u
}
