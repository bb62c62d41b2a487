package catalog

// Offer holds the listed price for a product.
type Offer struct {
	// Price is in integer currency units (cents).
	Price int64 `yaml:"price"`
}

// Product is a marketplace listing. Each product seeds one simulated market.
type Product struct {
	SKU   string `yaml:"sku"`
	Title string `yaml:"title"`
	Offer Offer  `yaml:"offer"`
}

// Agent is a purchasing agent registered on the marketplace.
type Agent struct {
	AgentID     string   `yaml:"agent_id"`
	Name        string   `yaml:"name"`
	TotalOrders int      `yaml:"total_orders"`
	TrustScore  *float64 `yaml:"trust_score,omitempty"`
}

// Seller is a merchant registered on the marketplace.
type Seller struct {
	SellerID      string   `yaml:"seller_id"`
	BusinessName  string   `yaml:"business_name"`
	TotalProducts int      `yaml:"total_products"`
	TrustScore    *float64 `yaml:"trust_score,omitempty"`
	TotalSales    int64    `yaml:"total_sales,omitempty"`
}

// Catalog is the full seed data set consumed by the simulation engines.
type Catalog struct {
	Products []Product `yaml:"products"`
	Agents   []Agent   `yaml:"agents"`
	Sellers  []Seller  `yaml:"sellers"`
}

// Roster returns the agent display names, used as the synthetic
// counterparty pool for the order book simulator.
func (c Catalog) Roster() []string {
	names := make([]string, 0, len(c.Agents))
	for _, a := range c.Agents {
		names = append(names, a.Name)
	}
	return names
}

// SKUs returns all product SKUs in catalog order.
func (c Catalog) SKUs() []string {
	out := make([]string, 0, len(c.Products))
	for _, p := range c.Products {
		out = append(out, p.SKU)
	}
	return out
}
