package entity

import "time"

// Order is a purchase placed by an existing customer. CustomerID must
// reference a stored Customer whenever an order is created or updated.
type Order struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customerId" gorm:"index;not null"`
	OrderDate  time.Time `json:"orderDate" gorm:"not null"`
}
