// Package memstore is the in-memory store behind the bundled development
// backend. Persistent storage is an external collaborator of the real system;
// the devserver only needs seeded data with the same observable behavior.
package memstore

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gestionpyme/ventas-console/internal/domain/entity"
	"github.com/gestionpyme/ventas-console/pkg/apperror"
	"github.com/gestionpyme/ventas-console/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// StockShortageError is returned when a sale would oversell a product
type StockShortageError struct {
	ProductName string
	Available   int
}

func (e *StockShortageError) Error() string {
	return fmt.Sprintf("Cantidad insuficiente de stock para %s. Disponible: %d", e.ProductName, e.Available)
}

// OperatorAccount is a seeded console user
type OperatorAccount struct {
	User         entity.User
	PasswordHash []byte
}

// Store holds all devserver state behind one lock
type Store struct {
	mu        sync.Mutex
	customers []entity.Customer
	products  []entity.Product
	sales     []entity.Sale
	operators map[string]OperatorAccount
}

// New creates an empty store
func New() *Store {
	return &Store{operators: make(map[string]OperatorAccount)}
}

// AddOperator registers a console account with a bcrypt-hashed password
func (s *Store) AddOperator(name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.operators[strings.ToLower(email)] = OperatorAccount{
		User: entity.User{
			ID:    uuid.New(),
			Name:  name,
			Email: email,
		},
		PasswordHash: hash,
	}
	return nil
}

// AddCustomer registers a customer
func (s *Store) AddCustomer(customer entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	s.customers = append(s.customers, customer)
}

// AddProduct registers a product
func (s *Store) AddProduct(product entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	s.products = append(s.products, product)
}

// Authenticate verifies an operator's credentials
func (s *Store) Authenticate(email, password string) (*entity.User, error) {
	s.mu.Lock()
	account, ok := s.operators[strings.ToLower(email)]
	s.mu.Unlock()

	if !ok {
		return nil, apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	user := account.User
	return &user, nil
}

// SearchCustomers returns the page of customers whose name or identification
// contains query, plus the index of the last page.
func (s *Store) SearchCustomers(query string, params pagination.Params) ([]entity.Customer, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]entity.Customer, 0, len(s.customers))
	for _, customer := range s.customers {
		if matches(query, customer.Name, customer.Identification) {
			matched = append(matched, customer)
		}
	}

	params.Normalize()
	return pagination.Page(matched, params), pagination.LastPage(len(matched), params.PerPage)
}

// SearchProducts returns the page of products whose name or code contains
// query, plus the index of the last page.
func (s *Store) SearchProducts(query string, params pagination.Params) ([]entity.Product, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]entity.Product, 0, len(s.products))
	for _, product := range s.products {
		if matches(query, product.Name, product.Code) {
			matched = append(matched, product)
		}
	}

	params.Normalize()
	return pagination.Page(matched, params), pagination.LastPage(len(matched), params.PerPage)
}

// CreateSale validates and records a sale, decrementing stock atomically under
// the store lock. Prices come from the stored products, never the request. The
// operation is all-or-nothing: any invalid line leaves every stock level
// untouched.
func (s *Store) CreateSale(customerID uuid.UUID, details []entity.SaleDetailInput) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.findCustomer(customerID)
	if !ok || !customer.IsActive() {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if len(details) == 0 {
		return nil, apperror.NewValidationError(map[string][]string{
			"detalles": {"Debe agregar al menos un producto."},
		})
	}

	// Validate every line before touching stock. The payload may repeat a
	// product, so requested quantities are accumulated per product first.
	requested := make(map[uuid.UUID]int, len(details))
	for _, detail := range details {
		if detail.Quantity < 1 {
			return nil, apperror.NewValidationError(map[string][]string{
				"detalles": {"La cantidad debe ser mayor a cero."},
			})
		}
		requested[detail.ProductID] += detail.Quantity
	}

	for productID, quantity := range requested {
		idx := s.findProduct(productID)
		if idx < 0 || !s.products[idx].IsActive() {
			return nil, apperror.NewNotFoundError("Product")
		}
		if quantity > s.products[idx].Stock {
			return nil, &StockShortageError{
				ProductName: s.products[idx].Name,
				Available:   s.products[idx].Stock,
			}
		}
	}

	sale := entity.Sale{
		ID:       "V-" + uuid.New().String()[:8],
		Customer: &customer,
		Date:     time.Now().Format("2006-01-02 15:04"),
	}
	for _, detail := range details {
		idx := s.findProduct(detail.ProductID)
		product := s.products[idx]
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(detail.Quantity)))

		s.products[idx].Stock -= detail.Quantity
		sale.Details = append(sale.Details, entity.SaleDetail{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    detail.Quantity,
			UnitPrice:   product.Price,
			Subtotal:    subtotal,
		})
		sale.Total = sale.Total.Add(subtotal)
	}

	s.sales = append(s.sales, sale)
	return &sale, nil
}

// ListSales returns all recorded sales, newest first
func (s *Store) ListSales() []entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Sale, 0, len(s.sales))
	for i := len(s.sales) - 1; i >= 0; i-- {
		out = append(out, s.sales[i])
	}
	return out
}

// GetSale returns one recorded sale
func (s *Store) GetSale(id string) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sale := range s.sales {
		if sale.ID == id {
			found := sale
			return &found, nil
		}
	}
	return nil, apperror.NewNotFoundError("Sale")
}

// ProductStock returns a product's current stock level
func (s *Store) ProductStock(id uuid.UUID) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProduct(id)
	if idx < 0 {
		return 0, false
	}
	return s.products[idx].Stock, true
}

func (s *Store) findCustomer(id uuid.UUID) (entity.Customer, bool) {
	for _, customer := range s.customers {
		if customer.ID == id {
			return customer, true
		}
	}
	return entity.Customer{}, false
}

func (s *Store) findProduct(id uuid.UUID) int {
	for i, product := range s.products {
		if product.ID == id {
			return i
		}
	}
	return -1
}

func matches(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
