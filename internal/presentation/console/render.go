package console

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
)

func (c *Console) renderDraft() {
	draft := c.drafts.Draft()

	fmt.Fprintln(c.out)
	if len(draft.Lines) == 0 {
		fmt.Fprintln(c.out, "(sin productos)")
	} else {
		w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Código\tProducto\tPrecio\tCantidad\tSubtotal")
		for _, line := range draft.Lines {
			fmt.Fprintf(w, "%s\t%s\t$%s\t%d\t$%s\n",
				line.Product.Code,
				line.Product.Name,
				line.Product.Price.String(),
				line.Quantity,
				line.Subtotal.String(),
			)
		}
		w.Flush()
	}
	fmt.Fprintf(c.out, "Total: $%s\n", draft.Total.String())
}

func (c *Console) listSales(ctx context.Context) {
	sales, err := c.sales.List(ctx)
	if err != nil {
		fmt.Fprintln(c.out, "Error al cargar las ventas.")
		return
	}
	if len(sales) == 0 {
		fmt.Fprintln(c.out, "No hay ventas registradas.")
		return
	}

	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCliente\tTotal\tFecha")
	for _, sale := range sales {
		customerName := ""
		if sale.Customer != nil {
			customerName = sale.Customer.Name
		}
		fmt.Fprintf(w, "%s\t%s\t$%s\t%s\n", sale.ID, customerName, sale.Total.String(), sale.Date)
	}
	w.Flush()
}

func (c *Console) showSale(ctx context.Context) {
	id, ok := c.prompt("ID de la venta: ")
	if !ok || strings.TrimSpace(id) == "" {
		return
	}

	sale, err := c.sales.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		fmt.Fprintln(c.out, "No se pudo cargar el detalle de la venta.")
		return
	}

	fmt.Fprintf(c.out, "Venta %s — %s\n", sale.ID, sale.Date)
	if sale.Customer != nil {
		fmt.Fprintf(c.out, "Cliente: %s\n", sale.Customer.DisplayLabel())
	}

	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Producto\tPrecio\tCantidad\tSubtotal")
	for _, detail := range sale.Details {
		fmt.Fprintf(w, "%s\t$%s\t%d\t$%s\n", detail.ProductName, detail.UnitPrice.String(), detail.Quantity, detail.Subtotal.String())
	}
	w.Flush()
	fmt.Fprintf(c.out, "Total: $%s\n", sale.Total.String())
}
