package domain

// Product represents one row of the legacy 'product' catalog table.
// The price column is VARCHAR in the legacy schema; use Money for any
// arithmetic or comparison.
type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"size:255" json:"description"`
	Price       string `gorm:"size:255" json:"price"`
	Image       string `gorm:"size:255" json:"image"`
}

// TableName maps to the legacy singular table name.
func (Product) TableName() string { return "product" }

// PriceEUR renders the stored price as a two-decimal EUR amount,
// falling back to the raw column text when it does not parse.
func (p Product) PriceEUR() string {
	m, err := ParseMoney(p.Price)
	if err != nil {
		return p.Price + " EUR"
	}
	return m.EUR()
}
