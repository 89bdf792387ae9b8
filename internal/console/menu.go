package console

func (p *Panel) printMenu() {
	p.println("")
	p.println("  ===========================================")
	p.println("             CONTROL PANEL MENU")
	p.println("  ===========================================")
	p.println("  --- PRODUCTS ---")
	p.println("  1. List products")
	p.println("  2. Search product")
	p.println("  3. Add product")
	p.println("  4. Delete product")
	p.println("  --- CUSTOMERS ---")
	p.println("  5. List customers")
	p.println("  6. Register customer")
	p.println("  --- ORDERS ---")
	p.println("  7. List orders")
	p.println("  8. Order detail")
	p.println("  --- SUMMARY ---")
	p.println("  9. Store statistics")
	p.println("  0. Exit")
	p.println("  ===========================================")
	p.printf("  Option: ")
}

// Run drives the menu until the user picks 0 or the input stream ends.
// Every operation completes fully before the next choice is read.
func (p *Panel) Run() {
	p.println("")
	p.println("  ===========================================")
	p.println("      STORE CONTROL PANEL - tiendadam")
	p.println("  ===========================================")

	for {
		p.printMenu()
		choice, ok := p.readLine()
		if !ok {
			break
		}

		switch choice {
		case "0":
			p.println("")
			p.println("  Control panel closed. See you next time!")
			return
		case "1":
			p.ListProducts()
		case "2":
			p.SearchProducts()
		case "3":
			p.AddProduct()
		case "4":
			p.DeleteProduct()
		case "5":
			p.ListCustomers()
		case "6":
			p.RegisterCustomer()
		case "7":
			p.ListOrders()
		case "8":
			p.OrderDetail()
		case "9":
			p.ShowStatistics()
		default:
			p.println("  [!] Invalid option. Choose 0 to 9.")
		}
	}

	p.println("")
	p.println("  Control panel closed. See you next time!")
}
