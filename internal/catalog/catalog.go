package catalog

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoProducts = errors.New("catalog has no products")
	ErrNoAgents   = errors.New("catalog has no agents")
)

func ptr(v float64) *float64 { return &v }

// Default returns the built-in demo catalog. It mirrors the seed data the
// console ships with when no catalog file is provided.
func Default() Catalog {
	return Catalog{
		Products: []Product{
			{SKU: "SKU-CAM-4K01", Title: "4K Dash Camera", Offer: Offer{Price: 12900}},
			{SKU: "SKU-KBD-M87", Title: "Mechanical Keyboard 87", Offer: Offer{Price: 8400}},
			{SKU: "SKU-SSD-2TB", Title: "NVMe SSD 2TB", Offer: Offer{Price: 15600}},
			{SKU: "SKU-HUB-USBC", Title: "USB-C Hub 8-in-1", Offer: Offer{Price: 4300}},
			{SKU: "SKU-LMP-DESK", Title: "Smart Desk Lamp", Offer: Offer{Price: 3900}},
			{SKU: "SKU-SPK-BT12", Title: "Bluetooth Speaker BT12", Offer: Offer{Price: 6700}},
		},
		Agents: []Agent{
			{AgentID: "agt-nova", Name: "Nova", TotalOrders: 42},
			{AgentID: "agt-atlas", Name: "Atlas", TotalOrders: 31},
			{AgentID: "agt-quill", Name: "Quill", TotalOrders: 18},
			{AgentID: "agt-ember", Name: "Ember", TotalOrders: 7},
			{AgentID: "agt-sable", Name: "Sable", TotalOrders: 0},
			{AgentID: "agt-orion", Name: "Orion", TotalOrders: 55},
			{AgentID: "agt-lyra", Name: "Lyra", TotalOrders: 12},
			{AgentID: "agt-vega", Name: "Vega", TotalOrders: 3},
		},
		Sellers: []Seller{
			{SellerID: "slr-hanmi", BusinessName: "Hanmi Electronics", TotalProducts: 12, TrustScore: ptr(88), TotalSales: 1240},
			{SellerID: "slr-brightco", BusinessName: "BrightCo Supply", TotalProducts: 5, TrustScore: ptr(63), TotalSales: 310},
			{SellerID: "slr-peakgear", BusinessName: "PeakGear Outfitters", TotalProducts: 8, TotalSales: 540},
			{SellerID: "slr-domo", BusinessName: "Domo Home Goods", TotalProducts: 3, TrustScore: ptr(45), TotalSales: 96},
			{SellerID: "slr-kite", BusinessName: "Kite Wholesale", TotalProducts: 9, TrustScore: ptr(92), TotalSales: 2030},
		},
	}
}

// Load reads a catalog from a YAML file.
func Load(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errors.Wrapf(err, "read catalog %s", path)
	}
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Catalog{}, errors.Wrapf(err, "parse catalog %s", path)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, errors.Wrapf(err, "invalid catalog %s", path)
	}
	return c, nil
}

// Validate checks the minimum the engines need to run.
func (c Catalog) Validate() error {
	if len(c.Products) == 0 {
		return ErrNoProducts
	}
	if len(c.Agents) == 0 {
		return ErrNoAgents
	}
	for _, p := range c.Products {
		if p.SKU == "" {
			return errors.New("product with empty sku")
		}
		if p.Offer.Price <= 0 {
			return errors.Errorf("product %s has non-positive price", p.SKU)
		}
	}
	for _, a := range c.Agents {
		if a.AgentID == "" || a.Name == "" {
			return errors.New("agent with empty id or name")
		}
	}
	return nil
}
