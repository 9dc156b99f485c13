package models

type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"` // cents
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}

func (i CartItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// CartTotal returns the sum of price x quantity over all lines.
func CartTotal(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}
