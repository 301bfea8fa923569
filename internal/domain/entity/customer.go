package entity

import "time"

// Customer representa un cliente del punto de venta.
type Customer struct {
	ID         string
	Name       string
	DocumentID string // cédula o NIT
	Email      string
	Phone      string
	Address    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
