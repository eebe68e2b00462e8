package avro

// OrderConfirmedSchema is the Avro schema for order-confirmed events.
// Money fields are strings: the decimal amounts must survive the wire without
// binary floating-point drift.
const OrderConfirmedSchema = `{
	"type": "record",
	"name": "OrderConfirmed",
	"namespace": "shop.orders",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "status", "type": "string"},
		{"name": "total_amount", "type": "string"},
		{"name": "placed_at", "type": "string"},
		{"name": "customer_email", "type": ["null", "string"], "default": null},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "OrderConfirmedItem",
				"fields": [
					{"name": "product_id", "type": "string"},
					{"name": "quantity", "type": "long"},
					{"name": "unit_price", "type": "string"}
				]
			}
		}}
	]
}`
