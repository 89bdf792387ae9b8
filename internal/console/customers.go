package console

import "github.com/tiendadam/storepanel/internal/domain"

const customerRule = "  |------|-----------------|----------------------|---------------------------|"

// ListCustomers prints every registered customer ordered by identifier.
func (p *Panel) ListCustomers() {
	p.println("")
	db, ok := p.database()
	if !ok {
		return
	}

	var customers []domain.Customer
	if err := db.Order("id").Find(&customers).Error; err != nil {
		p.reportDBError("list customers", err)
		return
	}

	p.println("  === CUSTOMER LIST ===")
	p.printf("  | %-4s | %-15s | %-20s | %-25s |\n", "ID", "FIRST NAME", "LAST NAME", "EMAIL")
	p.println(customerRule)
	for _, c := range customers {
		p.printf("  | %-4d | %-15s | %-20s | %-25s |\n", c.ID, c.FirstName, c.LastName, c.Email)
	}
	p.println(customerRule)
	p.printf("  Total: %d customer(s)\n", len(customers))
}

// RegisterCustomer collects a new customer record. The first name is
// required and the email must contain "@"; both re-prompt until valid.
func (p *Panel) RegisterCustomer() {
	p.println("")
	p.println("  === NEW CUSTOMER ===")

	db, ok := p.database()
	if !ok {
		return
	}

	firstName, ok := p.promptRequired("First name: ", "The first name cannot be empty.")
	if !ok {
		return
	}
	lastName, ok := p.prompt("Last name: ")
	if !ok {
		return
	}
	email, ok := p.promptEmail("Email: ")
	if !ok {
		return
	}

	customer := domain.Customer{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
	if err := db.Create(&customer).Error; err != nil {
		p.reportDBError("create customer", err)
		return
	}
	p.printf("  [OK] Customer '%s' registered.\n", customer.DisplayName())
}
