package entity

// Customer is a buyer that orders are placed against.
//
// There is deliberately no gorm association to Order here: deleting a
// customer leaves its orders in place (allow-orphan), so no database
// constraint may sit on orders.customer_id. The reference is enforced
// by the repositories instead.
type Customer struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"type:varchar(100);not null"`
	Email string `json:"email" gorm:"type:text"`
}
