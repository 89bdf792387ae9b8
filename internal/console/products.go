package console

import (
	"errors"

	"github.com/tiendadam/storepanel/internal/domain"
	"gorm.io/gorm"
)

// defaultProductImage is the placeholder stored when no image is given,
// matching the asset shipped with the store front end.
const defaultProductImage = "producto.webp"

const productRule = "  |------|------------------------|--------------------------------|------------|----------------------|"

func (p *Panel) productHeader() {
	p.printf("  | %-4s | %-22s | %-30s | %10s | %-20s |\n", "ID", "TITLE", "DESCRIPTION", "PRICE", "IMAGE")
	p.println(productRule)
}

func (p *Panel) productRow(prod domain.Product) {
	p.printf("  | %-4d | %-22s | %-30s | %10s | %-20s |\n",
		prod.ID, prod.Title, prod.Description, prod.PriceEUR(), prod.Image)
}

// ListProducts prints the whole catalog ordered by identifier.
func (p *Panel) ListProducts() {
	p.println("")
	db, ok := p.database()
	if !ok {
		return
	}

	var products []domain.Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		p.reportDBError("list products", err)
		return
	}

	p.println("  === PRODUCT CATALOG ===")
	p.productHeader()
	for _, prod := range products {
		p.productRow(prod)
	}
	p.println(productRule)
	p.printf("  Total: %d product(s)\n", len(products))
}

// SearchProducts matches a substring against title or description.
// An empty query is rejected before any database call.
func (p *Panel) SearchProducts() {
	p.println("")
	query, ok := p.prompt("Search product (title or description): ")
	if !ok {
		return
	}
	if query == "" {
		p.println("  [!] Enter something to search for.")
		return
	}

	db, ok := p.database()
	if !ok {
		return
	}

	pattern := "%" + query + "%"
	var products []domain.Product
	err := db.Where("title LIKE ? OR description LIKE ?", pattern, pattern).
		Order("id").
		Find(&products).Error
	if err != nil {
		p.reportDBError("search products", err)
		return
	}

	if len(products) == 0 {
		p.printf("  [i] No products found for '%s'.\n", query)
		return
	}

	p.println("  Results:")
	p.productHeader()
	for _, prod := range products {
		p.productRow(prod)
	}
	p.println(productRule)
	p.printf("  Found: %d product(s)\n", len(products))
}

// AddProduct collects a new catalog entry interactively and inserts it.
// The price is written back as canonical two-decimal text.
func (p *Panel) AddProduct() {
	p.println("")
	p.println("  === NEW PRODUCT ===")

	db, ok := p.database()
	if !ok {
		return
	}

	title, ok := p.promptRequired("Product title: ", "The title cannot be empty.")
	if !ok {
		return
	}
	description, ok := p.prompt("Description: ")
	if !ok {
		return
	}
	price, ok := p.promptPrice("Price (EUR): ")
	if !ok {
		return
	}
	image, ok := p.prompt("Image file name (e.g. camiseta.jpg): ")
	if !ok {
		return
	}
	if image == "" {
		image = defaultProductImage
	}

	product := domain.Product{
		Title:       title,
		Description: description,
		Price:       price.Storage(),
		Image:       image,
	}
	if err := db.Create(&product).Error; err != nil {
		p.reportDBError("create product", err)
		return
	}
	p.printf("  [OK] Product '%s' added to the catalog.\n", title)
}

// DeleteProduct removes a product after an existence check and an
// explicit confirmation. Constraint failures (order lines referencing
// the product) come back as a reported error, never a crash.
func (p *Panel) DeleteProduct() {
	p.println("")
	id, ok := p.promptID("ID of the product to delete: ")
	if !ok {
		return
	}

	db, ok := p.database()
	if !ok {
		return
	}

	var product domain.Product
	err := db.First(&product, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		p.printf("  [!] No product with ID %d exists.\n", id)
		return
	case err != nil:
		p.reportDBError("find product", err)
		return
	}

	p.printf("  Product: %s\n", product.Title)
	if !p.confirm("Confirm deletion? (s/n): ") {
		p.println("  [i] Deletion cancelled.")
		return
	}

	if err := db.Delete(&domain.Product{}, id).Error; err != nil {
		p.reportDBError("delete product", err)
		p.println("      (There may be orders referencing this product.)")
		return
	}
	p.printf("  [OK] Product '%s' deleted.\n", product.Title)
}
