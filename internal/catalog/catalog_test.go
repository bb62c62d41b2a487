package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.NotEmpty(t, c.Roster())
	assert.Len(t, c.SKUs(), len(c.Products))
}

func TestLoadCatalog(t *testing.T) {
	raw := `
products:
  - sku: SKU-X
    title: Widget X
    offer:
      price: 1200
agents:
  - agent_id: agt-a
    name: Alpha
    total_orders: 4
sellers:
  - seller_id: slr-z
    business_name: Zeta Corp
    total_products: 2
    trust_score: 55
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	require.Len(t, c.Products, 1)
	assert.Equal(t, int64(1200), c.Products[0].Offer.Price)
	require.Len(t, c.Sellers, 1)
	require.NotNil(t, c.Sellers[0].TrustScore)
	assert.Equal(t, 55.0, *c.Sellers[0].TrustScore)
}

func TestLoadCatalogRejectsInvalid(t *testing.T) {
	raw := `
products:
  - sku: SKU-X
    title: Widget X
    offer:
      price: 0
agents:
  - agent_id: agt-a
    name: Alpha
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
