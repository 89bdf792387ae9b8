package domain

// Order represents one row of the legacy 'order' table. Orders originate
// outside this tool and are immutable here. The date is stored as text in
// the legacy schema.
type Order struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Date       string    `gorm:"size:255" json:"date"`
	CustomerID int64     `json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID" json:"-"`

	// CustomerName is filled at query time from the customer join.
	CustomerName string `gorm:"-" json:"customer_name,omitempty"`
}

func (Order) TableName() string { return "order" }

// OrderLine associates an order with a purchased product and quantity.
// Subtotals (quantity x product price) are derived, never stored.
type OrderLine struct {
	OrderID   int64    `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ProductID int64    `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Quantity  int      `json:"quantity"`
	Order     *Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (OrderLine) TableName() string { return "order_line" }
