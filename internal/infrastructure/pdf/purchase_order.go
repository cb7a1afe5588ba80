// Package pdf genera la orden de compra imprimible a partir de la lista de
// reposición: los insumos bajo su punto de reorden con la cantidad sugerida
// para volver al stock ideal.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Cafetería + Proveedor  │  Fecha de emisión          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Insumo | Unidad | Stock | Ideal | Pedido | Costo     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL ESTIMADO DEL PEDIDO                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafeteria-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 93, Green: 64, Blue: 55}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPurchaseOrderGenerator genera órdenes de compra con Maroto v2.
type MarotoPurchaseOrderGenerator struct {
	ShopName string
}

// NewMarotoPurchaseOrderGenerator construye el generador.
func NewMarotoPurchaseOrderGenerator(shopName string) *MarotoPurchaseOrderGenerator {
	return &MarotoPurchaseOrderGenerator{ShopName: shopName}
}

// GeneratePurchaseOrder arma el PDF y devuelve sus bytes. supplier puede ser
// vacío (orden consolidada de todos los proveedores).
func (g *MarotoPurchaseOrderGenerator) GeneratePurchaseOrder(
	_ context.Context,
	supplier string,
	issuedAt time.Time,
	suggestions []dto.ReplenishmentSuggestionDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de compra", true).
		WithAuthor(g.ShopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.ShopName, supplier, issuedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	total := decimal.Zero
	for _, s := range suggestions {
		m.AddRows(detailRow(s))
		total = total.Add(s.EstimatedOrderCost)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: cafetería + proveedor (izq) y fecha de emisión (der).
func headerRow(shopName, supplier string, issuedAt time.Time) core.Row {
	destino := "Todos los proveedores"
	if supplier != "" {
		destino = supplier
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Proveedor: "+destino, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+issuedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		col.New(4).Add(text.New("Insumo", header)),
		col.New(1).Add(text.New("Unidad", header)),
		col.New(2).Add(text.New("Stock actual", headerRight)),
		col.New(1).Add(text.New("Ideal", headerRight)),
		col.New(1).Add(text.New("Pedido", headerRight)),
		col.New(1).Add(text.New("C.Unit", headerRight)),
		col.New(2).Add(text.New("Costo est.", headerRight)),
	)
}

func detailRow(s dto.ReplenishmentSuggestionDTO) core.Row {
	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	return row.New(6).Add(
		col.New(4).Add(text.New(s.Name, cell)),
		col.New(1).Add(text.New(s.Unit, cell)),
		col.New(2).Add(text.New(s.CurrentStock.String(), cellRight)),
		col.New(1).Add(text.New(s.IdealStock.String(), cellRight)),
		col.New(1).Add(text.New(s.SuggestedOrderQty.String(), cellRight)),
		col.New(1).Add(text.New(s.UnitCost.StringFixed(2), cellRight)),
		col.New(2).Add(text.New(s.EstimatedOrderCost.StringFixed(2), cellRight)),
	)
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(8).Add(
		col.New(8).Add(text.New("TOTAL ESTIMADO DEL PEDIDO", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
		})),
		col.New(4).Add(text.New("$ "+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorPrimary,
		})),
	)
}
