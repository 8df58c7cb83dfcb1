package order

// Order is the purchase record awaiting tax computation. Field names are
// the wire contract. Total is recomputed on every request; whatever the
// client sent in it is ignored.
type Order struct {
	OrderID         int     `json:"order_id"`
	ProductID       int     `json:"product_id"`
	Quantity        int     `json:"quantity"`
	Subtotal        float32 `json:"subtotal"`
	ShippingAddress string  `json:"shipping_address"`
	ShippingZip     string  `json:"shipping_zip"`
	Total           float32 `json:"total"`
}
