package avro

import (
	"time"

	domain "goggles_shop/internal/domain/order"
)

// OrderConfirmedNative maps an order to the native form goavro expects for
// OrderConfirmedSchema. Union values must be wrapped as
// map[string]interface{}{"type": value}.
func OrderConfirmedNative(o *domain.Order) map[string]interface{} {
	items := make([]interface{}, 0, len(o.Lines))
	for _, line := range o.Lines {
		items = append(items, map[string]interface{}{
			"product_id": line.ProductID,
			"quantity":   int64(line.Quantity),
			"unit_price": line.UnitPrice.StringFixed(2),
		})
	}

	native := map[string]interface{}{
		"order_id":       o.ID,
		"status":         o.Status,
		"total_amount":   o.TotalAmount.StringFixed(2),
		"placed_at":      o.PlacedAt.UTC().Format(time.RFC3339),
		"customer_email": nil,
		"items":          items,
	}
	if o.Email != "" {
		native["customer_email"] = map[string]interface{}{"string": o.Email}
	}
	return native
}
