package seller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

func TestExpandFulfillments(t *testing.T) {
	assert.Equal(t, []string{FulfillmentDelivery}, expandFulfillments(model.Store{}))

	all := expandFulfillments(model.Store{SupportedFulfillments: model.DomainList{"All"}})
	assert.Equal(t, []string{FulfillmentOrder, FulfillmentDelivery, FulfillmentSelfPickup}, all)

	mixed := expandFulfillments(model.Store{SupportedFulfillments: model.DomainList{"self-pickup", "DELIVERY", "Delivery"}})
	assert.Equal(t, []string{FulfillmentSelfPickup, FulfillmentDelivery}, mixed)

	// Nothing recognised still yields Delivery.
	unknown := expandFulfillments(model.Store{SupportedFulfillments: model.DomainList{"Teleport"}})
	assert.Equal(t, []string{FulfillmentDelivery}, unknown)
}

func TestBuildFulfillmentsDedupesAcrossStores(t *testing.T) {
	stores := []model.Store{
		{SupportedFulfillments: model.DomainList{"Delivery"}},
		{SupportedFulfillments: model.DomainList{"Delivery", "Self-Pickup"}},
	}
	list, byType := buildFulfillments(stores)

	require.Len(t, list, 2)
	assert.Equal(t, "F1", list[0].ID)
	assert.Equal(t, FulfillmentDelivery, list[0].Type)
	assert.Equal(t, "F2", list[1].ID)
	assert.Equal(t, FulfillmentSelfPickup, list[1].Type)
	assert.Equal(t, "F1", byType[FulfillmentDelivery])
	assert.Equal(t, "F2", byType[FulfillmentSelfPickup])
}

func TestBuildLocationsDefaults(t *testing.T) {
	locs := buildLocations(nil)
	require.Len(t, locs, 1)
	assert.Equal(t, "L1", locs[0].ID)
	assert.Equal(t, defaultGPS, locs[0].GPS)

	locs = buildLocations([]model.Store{
		{Locality: "Koramangala"},
		{City: "Mysuru", GPS: "12.295,76.639"},
	})
	require.Len(t, locs, 2)
	assert.Equal(t, "L1", locs[0].ID)
	assert.Equal(t, "Koramangala", locs[0].Address.Locality)
	assert.Equal(t, defaultCity, locs[0].Address.City)
	assert.Equal(t, "L2", locs[1].ID)
	assert.Equal(t, "12.295,76.639", locs[1].GPS)
}

func TestStoreIndexFor(t *testing.T) {
	stores := []model.Store{
		{Name: "Main Branch", Locality: "Indiranagar", City: "Bengaluru"},
		{Locality: "Jayanagar", City: "Bengaluru"},
	}
	assert.Equal(t, 0, storeIndexFor(stores, "main branch"))
	assert.Equal(t, 1, storeIndexFor(stores, "Jayanagar"))
	// Unmatched names fall back to the first store.
	assert.Equal(t, 0, storeIndexFor(stores, "Whitefield"))
	assert.Equal(t, 0, storeIndexFor(stores, ""))
}
