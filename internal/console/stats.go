package console

import (
	"github.com/tiendadam/storepanel/internal/domain"
	"go.uber.org/zap"
)

// ShowStatistics prints the aggregate store report. Every block that
// has no data yet is skipped rather than failing the whole report.
// Extreme-value ties (price, order count) resolve to the lowest
// identifier.
func (p *Panel) ShowStatistics() {
	p.println("")
	db, ok := p.database()
	if !ok {
		return
	}

	p.println("  === STORE STATISTICS ===")

	var productCount, customerCount, orderCount int64
	if err := db.Model(&domain.Product{}).Count(&productCount).Error; err != nil {
		p.reportDBError("count products", err)
		return
	}
	if err := db.Model(&domain.Customer{}).Count(&customerCount).Error; err != nil {
		p.reportDBError("count customers", err)
		return
	}
	if err := db.Model(&domain.Order{}).Count(&orderCount).Error; err != nil {
		p.reportDBError("count orders", err)
		return
	}
	p.printf("  Products in catalog:    %d\n", productCount)
	p.printf("  Registered customers:   %d\n", customerCount)
	p.printf("  Orders placed:          %d\n", orderCount)
	p.println("  ----------------------------------------")

	var products []domain.Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		p.reportDBError("load products for statistics", err)
		return
	}
	var dearest, cheapest *domain.Product
	var dearestPrice, cheapestPrice domain.Money
	for i := range products {
		m, err := domain.ParseMoney(products[i].Price)
		if err != nil {
			zap.S().Warnf("product %d: unparseable price %q", products[i].ID, products[i].Price)
			continue
		}
		// strict comparisons keep the lowest id on ties
		if dearest == nil || m.GreaterThan(dearestPrice) {
			dearest, dearestPrice = &products[i], m
		}
		if cheapest == nil || m.LessThan(cheapestPrice) {
			cheapest, cheapestPrice = &products[i], m
		}
	}
	if dearest != nil {
		p.printf("  Most expensive product: %s (%s)\n", dearest.Title, dearestPrice.EUR())
	}
	if cheapest != nil {
		p.printf("  Cheapest product:       %s (%s)\n", cheapest.Title, cheapestPrice.EUR())
	}
	p.println("  ----------------------------------------")

	var top struct {
		CustomerID int64
		Num        int64
	}
	err := db.Model(&domain.Order{}).
		Select("customer_id, COUNT(*) AS num").
		Group("customer_id").
		Order("num DESC, customer_id ASC").
		Limit(1).
		Scan(&top).Error
	if err != nil {
		p.reportDBError("find best customer", err)
		return
	}
	if top.Num > 0 {
		var customer domain.Customer
		if err := db.First(&customer, top.CustomerID).Error; err != nil {
			p.reportDBError("load best customer", err)
			return
		}
		p.printf("  Best customer:          %s (%d orders)\n", customer.DisplayName(), top.Num)
	}

	type revenueRow struct {
		Quantity int
		Price    string
	}
	var lines []revenueRow
	err = db.Model(&domain.OrderLine{}).
		Select("order_line.quantity, product.price").
		Joins("JOIN product ON product.id = order_line.product_id").
		Scan(&lines).Error
	if err != nil {
		p.reportDBError("load revenue lines", err)
		return
	}
	if len(lines) > 0 {
		var revenue domain.Money
		for _, line := range lines {
			m, err := domain.ParseMoney(line.Price)
			if err != nil {
				zap.S().Warnf("revenue: unparseable price %q", line.Price)
				continue
			}
			revenue = revenue.Add(m.Mul(line.Quantity))
		}
		p.printf("  Total revenue:          %s\n", revenue.EUR())
	}
}
