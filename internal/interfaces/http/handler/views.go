package handler

import (
	"time"

	cartdomain "goggles_shop/internal/domain/cart"
	catalogdomain "goggles_shop/internal/domain/catalog"
	orderdomain "goggles_shop/internal/domain/order"
)

// JSON views. Money is rendered as fixed-point strings so the decimal amounts
// reach clients without float conversion.

type productView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	ImageURL      string `json:"image_url"`
	Category      string `json:"category"`
	LensColor     string `json:"lens_color"`
	FrameStyle    string `json:"frame_style"`
	StockQuantity int    `json:"stock_quantity"`
	Available     bool   `json:"available"`
}

func toProductView(p catalogdomain.Product) productView {
	return productView{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price.StringFixed(2),
		ImageURL:      p.ImageURL,
		Category:      p.Category,
		LensColor:     p.LensColor,
		FrameStyle:    p.FrameStyle,
		StockQuantity: p.StockQuantity,
		Available:     p.Available(),
	}
}

func toProductViews(products []catalogdomain.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return views
}

type cartItemView struct {
	LineID   string      `json:"line_id"`
	Product  productView `json:"product"`
	Quantity int         `json:"quantity"`
	Subtotal string      `json:"subtotal"`
}

type cartView struct {
	Items     []cartItemView `json:"items"`
	Total     string         `json:"total"`
	ItemCount int            `json:"item_count"`
}

func toCartView(s *cartdomain.Summary) cartView {
	items := make([]cartItemView, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, cartItemView{
			LineID:   item.Line.ID,
			Product:  toProductView(item.Product),
			Quantity: item.Line.Quantity,
			Subtotal: item.Subtotal().StringFixed(2),
		})
	}
	return cartView{
		Items:     items,
		Total:     s.Total().StringFixed(2),
		ItemCount: s.ItemCount(),
	}
}

type orderLineView struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

type orderView struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customer_name"`
	Email           string          `json:"email"`
	ShippingAddress string          `json:"shipping_address"`
	PlacedAt        time.Time       `json:"placed_at"`
	TotalAmount     string          `json:"total_amount"`
	Status          string          `json:"status"`
	Lines           []orderLineView `json:"lines"`
}

func toOrderView(o *orderdomain.Order) orderView {
	lines := make([]orderLineView, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, orderLineView{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.StringFixed(2),
			Subtotal:    line.Subtotal().StringFixed(2),
		})
	}
	return orderView{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		Email:           o.Email,
		ShippingAddress: o.ShippingAddress,
		PlacedAt:        o.PlacedAt,
		TotalAmount:     o.TotalAmount.StringFixed(2),
		Status:          o.Status,
		Lines:           lines,
	}
}

type fieldErrorView struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func toFieldErrorViews(fields []orderdomain.FieldError) []fieldErrorView {
	views := make([]fieldErrorView, 0, len(fields))
	for _, f := range fields {
		views = append(views, fieldErrorView{Field: f.Field, Reason: f.Reason})
	}
	return views
}
