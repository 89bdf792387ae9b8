package console

import (
	"errors"

	"github.com/tiendadam/storepanel/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const orderRule = "  |------|--------------|------|---------------------------|"

// ListOrders prints every order with the owning customer's display
// name. The legacy table is named 'order', so the customer names are
// resolved with a second query instead of a raw join against a
// reserved identifier.
func (p *Panel) ListOrders() {
	p.println("")
	db, ok := p.database()
	if !ok {
		return
	}

	var orders []domain.Order
	if err := db.Order("id").Find(&orders).Error; err != nil {
		p.reportDBError("list orders", err)
		return
	}

	var customers []domain.Customer
	if err := db.Find(&customers).Error; err != nil {
		p.reportDBError("list order customers", err)
		return
	}
	names := make(map[int64]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.DisplayName()
	}

	p.println("  === ORDER LIST ===")
	p.printf("  | %-4s | %-12s | %-4s | %-25s |\n", "ID", "DATE", "CUST", "CUSTOMER NAME")
	p.println(orderRule)
	for _, o := range orders {
		p.printf("  | %-4d | %-12s | %-4d | %-25s |\n", o.ID, o.Date, o.CustomerID, names[o.CustomerID])
	}
	p.println(orderRule)
	p.printf("  Total: %d order(s)\n", len(orders))
}

type orderDetailRow struct {
	Title    string
	Quantity int
	Price    string
}

const detailRule = "  |------------------------|----------|------------|------------|"

// OrderDetail prints one order's header plus its line items with
// per-line subtotals and a grand total. An order with no lines renders
// an empty table and a 0.00 total.
func (p *Panel) OrderDetail() {
	p.println("")
	id, ok := p.promptID("ID of the order to view: ")
	if !ok {
		return
	}

	db, ok := p.database()
	if !ok {
		return
	}

	var order domain.Order
	err := db.First(&order, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		p.printf("  [!] No order with ID %d exists.\n", id)
		return
	case err != nil:
		p.reportDBError("find order", err)
		return
	}

	var customer domain.Customer
	err = db.First(&customer, order.CustomerID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		p.printf("  [!] No order with ID %d exists.\n", id)
		return
	case err != nil:
		p.reportDBError("find order customer", err)
		return
	}
	order.CustomerName = customer.DisplayName()

	p.println("")
	p.printf("  === ORDER #%d ===\n", order.ID)
	p.printf("  Date:     %s\n", order.Date)
	p.printf("  Customer: %s\n", order.CustomerName)
	p.println("")

	var rows []orderDetailRow
	err = db.Model(&domain.OrderLine{}).
		Select("product.title, order_line.quantity, product.price").
		Joins("JOIN product ON product.id = order_line.product_id").
		Where("order_line.order_id = ?", id).
		Order("order_line.product_id").
		Scan(&rows).Error
	if err != nil {
		p.reportDBError("load order lines", err)
		return
	}

	p.printf("  | %-22s | %-8s | %10s | %10s |\n", "PRODUCT", "QTY", "PRICE", "SUBTOTAL")
	p.println(detailRule)

	var total domain.Money
	for _, row := range rows {
		price, err := domain.ParseMoney(row.Price)
		if err != nil {
			zap.S().Warnf("order %d: unparseable price %q", id, row.Price)
			continue
		}
		subtotal := price.Mul(row.Quantity)
		total = total.Add(subtotal)
		p.printf("  | %-22s | %-8d | %10s | %10s |\n", row.Title, row.Quantity, price.EUR(), subtotal.EUR())
	}

	p.println(detailRule)
	p.printf("  | %-22s | %-8s | %10s | %10s |\n", "", "", "TOTAL", total.EUR())
}
