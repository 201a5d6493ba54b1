package seller

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

// fixedGenerator returns a generator with a deterministic clock and ID
// source so structural output can be compared across calls.
func fixedGenerator() *Generator {
	counter := 0
	return New(Config{},
		WithClock(func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		}),
		WithIDSource(func() string {
			counter++
			return fmt.Sprintf("00000000-0000-4000-8000-%012d", counter)
		}),
	)
}

func groceryInput() *model.SellerData {
	return &model.SellerData{
		ProviderName: "Fresh Mart",
		Domain:       model.DomainField{Names: []string{"Grocery"}},
		Stores: []model.Store{
			{
				Locality:               "Indiranagar",
				City:                   "Bengaluru",
				GPS:                    "12.978,77.640",
				SupportedSubcategories: []string{"Fruits and Vegetables"},
			},
		},
		Items: []model.SellerItem{
			{
				Name:      "Alphonso Mango",
				Category:  "Fruits and Vegetables",
				Price:     "120",
				MRP:       "150",
				VegNonVeg: "veg",
			},
		},
	}
}

func TestGenerateSingleStoreSingleItem(t *testing.T) {
	payload, err := fixedGenerator().Generate(groceryInput())
	require.NoError(t, err)

	assert.Equal(t, DomainGrocery, payload.Context.Domain)
	assert.Equal(t, "on_search", payload.Context.Action)

	require.Len(t, payload.Message.Catalog.BPPProviders, 1)
	provider := payload.Message.Catalog.BPPProviders[0]

	require.Len(t, provider.Locations, 1)
	assert.Equal(t, "L1", provider.Locations[0].ID)
	assert.Equal(t, "12.978,77.640", provider.Locations[0].GPS)

	require.Len(t, provider.Fulfillments, 1)
	assert.Equal(t, "F1", provider.Fulfillments[0].ID)
	assert.Equal(t, FulfillmentDelivery, provider.Fulfillments[0].Type)

	assert.Empty(t, provider.Categories)

	require.Len(t, provider.Items, 1)
	item := provider.Items[0]
	assert.Equal(t, "I1", item.ID)
	assert.Empty(t, item.ParentItemID)
	assert.Equal(t, "120.00", item.Price.Value)
	assert.Equal(t, "150.00", item.Price.MaximumValue)
	assert.Equal(t, "L1", item.LocationID)
	assert.Equal(t, "F1", item.FulfillmentID)

	require.NotEmpty(t, item.Tags)
	assert.Equal(t, "veg_nonveg", item.Tags[0].Code)
	assert.Equal(t, "veg", item.Tags[0].List[0].Code)
}

func TestGenerateNoParentItemIDInSerializedOutput(t *testing.T) {
	payload, err := fixedGenerator().Generate(groceryInput())
	require.NoError(t, err)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "parent_item_id")
	assert.NotContains(t, string(raw), `"categories"`)
}

func TestGenerateZeroStoresEmitsDefaultLocation(t *testing.T) {
	data := groceryInput()
	data.Stores = nil

	payload, err := fixedGenerator().Generate(data)
	require.NoError(t, err)

	provider := payload.Message.Catalog.BPPProviders[0]
	require.Len(t, provider.Locations, 1)
	assert.Equal(t, "L1", provider.Locations[0].ID)
	assert.Equal(t, defaultGPS, provider.Locations[0].GPS)
	assert.Equal(t, defaultCity, provider.Locations[0].Address.City)

	// One default timing tag plus one default serviceability tag.
	require.Len(t, provider.Tags, 2)
	assert.Equal(t, "timing", provider.Tags[0].Code)
	assert.Equal(t, "serviceability", provider.Tags[1].Code)
}

func TestGenerateVariantEmissionCounts(t *testing.T) {
	data := groceryInput()
	data.Items = []model.SellerItem{
		{
			Name:  "Basmati Rice",
			Code:  "RICE01",
			Price: "200",
			Variants: []model.Variant{
				{Name: "1kg", Price: "200", VariantCombination: map[string]string{"weight": "1kg"}},
				{Name: "5kg", Price: "900", VariantCombination: map[string]string{"weight": "5kg"}},
			},
		},
	}

	payload, err := fixedGenerator().Generate(data)
	require.NoError(t, err)
	provider := payload.Message.Catalog.BPPProviders[0]

	// Two variants plus the parent by default.
	require.Len(t, provider.Items, 3)
	require.Len(t, provider.Categories, 1)
	groupID := provider.Categories[0].ID
	assert.Regexp(t, `^V[A-Za-z0-9]{1,11}$`, groupID)

	for _, item := range provider.Items {
		assert.Equal(t, groupID, item.ParentItemID)
	}
	// Variant codes derive from the parent unless overridden.
	assert.Equal(t, "RICE01-1", provider.Items[0].Descriptor.Code)
	assert.Equal(t, "RICE01-2", provider.Items[1].Descriptor.Code)
	assert.Equal(t, "RICE01", provider.Items[2].Descriptor.Code)
}

func TestGenerateVariantsWithoutParentInCatalog(t *testing.T) {
	include := false
	data := groceryInput()
	data.IncludeParentInCatalog = &include
	data.Items = []model.SellerItem{
		{
			Name:  "Basmati Rice",
			Price: "200",
			Variants: []model.Variant{
				{Name: "1kg", Price: "200"},
				{Name: "5kg", Price: "900"},
			},
		},
	}

	payload, err := fixedGenerator().Generate(data)
	require.NoError(t, err)
	assert.Len(t, payload.Message.Catalog.BPPProviders[0].Items, 2)
}

func TestGenerateIdempotentWithFixedSources(t *testing.T) {
	first, err := fixedGenerator().Generate(groceryInput())
	require.NoError(t, err)
	second, err := fixedGenerator().Generate(groceryInput())
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(firstJSON), string(secondJSON))
}

func TestGenerateAllMultiDomain(t *testing.T) {
	data := groceryInput()
	data.Domain = model.DomainField{Names: []string{"Grocery", "Fashion"}, Multi: true}

	payloads, err := fixedGenerator().GenerateAll(data)
	require.NoError(t, err)
	require.Len(t, payloads, 2)
	assert.Equal(t, DomainGrocery, payloads["Grocery"].Context.Domain)
	assert.Equal(t, DomainFashion, payloads["Fashion"].Context.Domain)
}

func TestGenerateCarriesRequestTransactionID(t *testing.T) {
	data := groceryInput()
	data.TransactionID = "txn-123"

	payload, err := fixedGenerator().Generate(data)
	require.NoError(t, err)
	assert.Equal(t, "txn-123", payload.Context.TransactionID)
}

func TestGenerateNilInput(t *testing.T) {
	_, err := fixedGenerator().Generate(nil)
	assert.Error(t, err)
	_, err = fixedGenerator().GenerateAll(nil)
	assert.Error(t, err)
}

func TestResolveDomain(t *testing.T) {
	assert.Equal(t, DomainGrocery, ResolveDomain([]string{"Grocery"}))
	assert.Equal(t, DomainFnB, ResolveDomain([]string{"f&b"}))
	assert.Equal(t, DomainFashion, ResolveDomain([]string{"Bogus", "Fashion"}))
	// Unknown names silently fall back to Grocery.
	assert.Equal(t, DomainGrocery, ResolveDomain([]string{"Bogus"}))
	assert.Equal(t, DomainGrocery, ResolveDomain(nil))
}
