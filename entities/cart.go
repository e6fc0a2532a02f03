package entities

type CartItem struct {
	Seed     SeedType `json:"seed"`
	Quantity int      `json:"quantity"`
}

// Cart accumulates seed lines keyed by seed ID. Total is always recomputed
// from the lines, never stored independently of its derivation.
type Cart struct {
	Items         []CartItem `json:"items"`
	Total         float64    `json:"total"`
	AppliedCoupon *Coupon    `json:"appliedCoupon,omitempty"`
}

func (c *Cart) Recalculate() {
	total := 0.0
	for _, item := range c.Items {
		total += item.Seed.Price * float64(item.Quantity)
	}
	c.Total = total
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
