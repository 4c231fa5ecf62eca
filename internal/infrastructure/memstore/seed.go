package memstore

import (
	"log"

	"github.com/gestionpyme/ventas-console/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// NewSeeded creates a store populated with a development dataset: one operator
// account and a handful of customers and products, including an inactive entry
// of each kind.
func NewSeeded() *Store {
	s := New()

	if err := s.AddOperator("Operador", "operador@gestionpyme.com", "operador123"); err != nil {
		log.Printf("[memstore] failed to seed operator: %v", err)
	}

	customers := []entity.Customer{
		{Name: "María Fernanda López", Identification: "CC-1002003004", Estado: entity.EstadoActivo},
		{Name: "Carlos Andrés Gómez", Identification: "CC-1010101010", Estado: entity.EstadoActivo},
		{Name: "Distribuciones El Trébol", Identification: "NIT-900123456", Estado: entity.EstadoActivo},
		{Name: "Juliana Restrepo", Identification: "CC-1098765432", Estado: entity.EstadoActivo},
		{Name: "Almacén La Esquina", Identification: "NIT-901987654", Estado: 0},
	}
	for _, customer := range customers {
		s.AddCustomer(customer)
	}

	products := []entity.Product{
		{Code: "CAF-500", Name: "Café Molido 500g", Price: decimal.NewFromInt(18500), Stock: 5, Estado: entity.EstadoActivo},
		{Code: "ARR-1K", Name: "Arroz Blanco 1kg", Price: decimal.NewFromInt(4200), Stock: 120, Estado: entity.EstadoActivo},
		{Code: "AZU-1K", Name: "Azúcar Refinada 1kg", Price: decimal.NewFromInt(3800), Stock: 80, Estado: entity.EstadoActivo},
		{Code: "ACE-1L", Name: "Aceite de Girasol 1L", Price: decimal.NewFromInt(12900), Stock: 34, Estado: entity.EstadoActivo},
		{Code: "LEC-1L", Name: "Leche Entera 1L", Price: decimal.NewFromInt(3500), Stock: 60, Estado: entity.EstadoActivo},
		{Code: "PAN-500", Name: "Panela en Bloque 500g", Price: decimal.NewFromInt(2700), Stock: 0, Estado: entity.EstadoActivo},
		{Code: "CHO-250", Name: "Chocolate de Mesa 250g", Price: decimal.NewFromInt(6400), Stock: 25, Estado: 0},
	}
	for _, product := range products {
		s.AddProduct(product)
	}

	return s
}
