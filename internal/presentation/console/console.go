// Package console is the operator-facing terminal front end over the
// application services.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gestionpyme/ventas-console/internal/application/service"
	"github.com/gestionpyme/ventas-console/internal/domain/entity"
	"github.com/gestionpyme/ventas-console/pkg/apperror"
	"github.com/gestionpyme/ventas-console/pkg/loading"
	"github.com/google/uuid"
)

// Console drives the sale-creation flow: customer search, product search with
// quantities, draft review and submission.
type Console struct {
	customers *service.Lookup[entity.Customer]
	products  *service.Lookup[entity.Product]
	drafts    *service.DraftService
	sales     *service.SaleService
	gauge     *loading.Gauge

	// searchWait bounds how long one debounced search round-trip may take
	// before the console re-prompts with whatever candidates it has.
	searchWait time.Duration

	in  *bufio.Scanner
	out io.Writer
}

// New creates a console reading operator input from in and writing to out
func New(
	customers *service.Lookup[entity.Customer],
	products *service.Lookup[entity.Product],
	drafts *service.DraftService,
	sales *service.SaleService,
	gauge *loading.Gauge,
	searchWait time.Duration,
	in io.Reader,
	out io.Writer,
) *Console {
	return &Console{
		customers:  customers,
		products:   products,
		drafts:     drafts,
		sales:      sales,
		gauge:      gauge,
		searchWait: searchWait,
		in:         bufio.NewScanner(in),
		out:        out,
	}
}

// Run shows the main menu until the operator exits or input ends
func (c *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "=== Gestión de Ventas ===")
		fmt.Fprintln(c.out, "[1] Crear venta")
		fmt.Fprintln(c.out, "[2] Listado de ventas")
		fmt.Fprintln(c.out, "[3] Detalle de venta")
		fmt.Fprintln(c.out, "[0] Salir")

		choice, ok := c.prompt("Opción: ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.createSale(ctx)
		case "2":
			c.listSales(ctx)
		case "3":
			c.showSale(ctx)
		case "0":
			return nil
		default:
			fmt.Fprintln(c.out, "Opción no válida.")
		}
	}
}

// createSale walks the operator through assembling and saving one draft. An
// abandoned draft is discarded without persistence.
func (c *Console) createSale(ctx context.Context) {
	defer c.drafts.Reset()

	customer, ok := pick(c, ctx, c.customers, "Buscar cliente (nombre o identificación): ", "clientes")
	if !ok {
		return
	}
	c.drafts.SetCustomer(customer.ID)
	fmt.Fprintf(c.out, "Cliente seleccionado: %s\n", customer.DisplayLabel())

	for {
		c.renderDraft()
		fmt.Fprintln(c.out, "[a] Agregar producto  [+ código] [- código] [x código]  [g] Guardar  [q] Abandonar")

		input, ok := c.prompt("> ")
		if !ok {
			return
		}
		command, arg, _ := strings.Cut(strings.TrimSpace(input), " ")
		arg = strings.TrimSpace(arg)

		switch command {
		case "a":
			c.addProduct(ctx)
		case "+":
			c.adjustLine(arg, c.drafts.IncrementLine, func(line entity.SaleLine) string {
				return fmt.Sprintf("No hay suficiente stock para aumentar la cantidad de %s.", line.Product.Name)
			})
		case "-":
			c.adjustLine(arg, c.drafts.DecrementLine, nil)
		case "x":
			if line, ok := c.lineByCode(arg); ok {
				c.drafts.RemoveLine(line.Product.ID)
			} else {
				fmt.Fprintln(c.out, "No hay una línea con ese código.")
			}
		case "g":
			if c.saveSale(ctx) {
				return
			}
		case "q":
			return
		default:
			fmt.Fprintln(c.out, "Comando no válido.")
		}
	}
}

// addProduct searches, resolves and admits one product into the draft
func (c *Console) addProduct(ctx context.Context) {
	product, ok := pick(c, ctx, c.products, "Buscar producto (nombre o código): ", "productos")
	if !ok {
		return
	}

	quantity := 1
	if input, ok := c.prompt("Cantidad [1]: "); ok && strings.TrimSpace(input) != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			fmt.Fprintln(c.out, apperror.ErrInvalidQuantity.Message)
			return
		}
		quantity = parsed
	}

	if err := c.drafts.AddLine(product, quantity); err != nil {
		if apperror.IsStockRejection(err) {
			fmt.Fprintf(c.out, "Stock insuficiente para %s. Disponible: %d\n", product.Name, product.Stock)
			return
		}
		fmt.Fprintln(c.out, apperror.GetAppError(err).Message)
	}
}

// adjustLine applies a quantity mutation to the line matching a product code
func (c *Console) adjustLine(code string, mutate func(productID uuid.UUID) error, onStock func(entity.SaleLine) string) {
	line, ok := c.lineByCode(code)
	if !ok {
		fmt.Fprintln(c.out, "No hay una línea con ese código.")
		return
	}

	if err := mutate(line.Product.ID); err != nil {
		if apperror.IsStockRejection(err) && onStock != nil {
			fmt.Fprintln(c.out, onStock(line))
			return
		}
		fmt.Fprintln(c.out, apperror.GetAppError(err).Message)
	}
}

// saveSale submits the draft; returns true when the flow is finished
func (c *Console) saveSale(ctx context.Context) bool {
	saleID, err := c.sales.Submit(ctx, c.drafts.Draft())
	switch {
	case err == nil:
		fmt.Fprintf(c.out, "Venta registrada exitosamente. ID: %s\n", saleID)
		c.drafts.Reset()
		return true
	case apperror.IsStockConflict(err):
		// Draft preserved: the operator can reduce quantities and retry.
		fmt.Fprintln(c.out, "Error al guardar la venta: Cantidad insuficiente de Stock para el producto deseado.")
		return false
	case apperror.IsTransport(err):
		fmt.Fprintln(c.out, "No se pudo guardar la venta. Intente nuevamente.")
		return false
	default:
		fmt.Fprintln(c.out, apperror.GetAppError(err).Message)
		return false
	}
}

func (c *Console) lineByCode(code string) (entity.SaleLine, bool) {
	code = strings.TrimSpace(code)
	for _, line := range c.drafts.Draft().Lines {
		if strings.EqualFold(line.Product.Code, code) {
			return line, true
		}
	}
	return entity.SaleLine{}, false
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// pick runs one search-and-confirm round until the operator resolves a
// candidate or cancels with an empty search. Selection requires re-typing the
// exact display label shown in the list; anything else stays unselected.
func pick[T service.Selectable](c *Console, ctx context.Context, lookup *service.Lookup[T], label, noun string) (T, bool) {
	var zero T
	for {
		query, ok := c.prompt(label)
		if !ok || strings.TrimSpace(query) == "" {
			return zero, false
		}

		// Drop any stale update signal before issuing the new query.
		select {
		case <-lookup.Updates():
		default:
		}
		lookup.SetQuery(ctx, query)

		if c.gauge.Busy() {
			fmt.Fprintln(c.out, "Cargando...")
		}
		select {
		case <-lookup.Updates():
		case <-time.After(c.searchWait):
		}

		candidates := lookup.Candidates()
		if len(candidates) == 0 {
			fmt.Fprintf(c.out, "No se encontraron %s.\n", noun)
			continue
		}
		for _, candidate := range candidates {
			fmt.Fprintf(c.out, "  - %s\n", candidate.DisplayLabel())
		}

		input, ok := c.prompt("Selección (texto exacto): ")
		if !ok {
			return zero, false
		}
		if selected, resolved := service.Resolve(strings.TrimSpace(input), candidates); resolved {
			return selected, true
		}
		fmt.Fprintln(c.out, "Sin selección: el texto debe coincidir exactamente con un candidato.")
	}
}
