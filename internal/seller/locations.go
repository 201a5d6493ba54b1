package seller

import (
	"fmt"
	"strings"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

// Fulfillment types known to the retail protocol.
const (
	FulfillmentOrder      = "Order"
	FulfillmentDelivery   = "Delivery"
	FulfillmentSelfPickup = "Self-Pickup"
)

// allFulfillmentTypes is the expansion order for a store declaring "All".
var allFulfillmentTypes = []string{FulfillmentOrder, FulfillmentDelivery, FulfillmentSelfPickup}

// Hard-coded fallbacks for stores with missing address/GPS fields.
const (
	defaultGPS      = "12.967555,77.749666"
	defaultLocality = "Marathahalli"
	defaultStreet   = "Outer Ring Road"
	defaultCity     = "Bengaluru"
	defaultState    = "Karnataka"
	defaultAreaCode = "560103"
)

// buildLocations converts stores into location records, L1..Ln. An empty
// store list yields exactly one default location.
func buildLocations(stores []model.Store) []model.Location {
	if len(stores) == 0 {
		return []model.Location{defaultLocation("L1")}
	}
	locations := make([]model.Location, 0, len(stores))
	for i, store := range stores {
		loc := model.Location{
			ID:  fmt.Sprintf("L%d", i+1),
			GPS: orDefault(store.GPS, defaultGPS),
			Address: &model.Address{
				Locality: orDefault(store.Locality, defaultLocality),
				Street:   orDefault(store.Street, defaultStreet),
				City:     orDefault(store.City, defaultCity),
				State:    orDefault(store.State, defaultState),
				AreaCode: orDefault(store.AreaCode, defaultAreaCode),
			},
		}
		locations = append(locations, loc)
	}
	return locations
}

func defaultLocation(id string) model.Location {
	return model.Location{
		ID:  id,
		GPS: defaultGPS,
		Address: &model.Address{
			Locality: defaultLocality,
			Street:   defaultStreet,
			City:     defaultCity,
			State:    defaultState,
			AreaCode: defaultAreaCode,
		},
	}
}

// expandFulfillments resolves a store's declared fulfillment support into
// concrete types: "All" expands to every known type, nothing declared
// defaults to Delivery.
func expandFulfillments(store model.Store) []string {
	if len(store.SupportedFulfillments) == 0 {
		return []string{FulfillmentDelivery}
	}
	types := []string{}
	for _, raw := range store.SupportedFulfillments {
		name := strings.TrimSpace(raw)
		if strings.EqualFold(name, "All") {
			return allFulfillmentTypes
		}
		for _, known := range allFulfillmentTypes {
			if strings.EqualFold(name, known) {
				types = appendUnique(types, known)
			}
		}
	}
	if len(types) == 0 {
		return []string{FulfillmentDelivery}
	}
	return types
}

// buildFulfillments dedupes fulfillment types across stores. First-seen type
// gets F1, subsequent types increment. Zero stores yields a single Delivery
// fulfillment.
func buildFulfillments(stores []model.Store) ([]model.Fulfillment, map[string]string) {
	byType := map[string]string{}
	list := []model.Fulfillment{}
	add := func(typ string) {
		if _, ok := byType[typ]; ok {
			return
		}
		id := fmt.Sprintf("F%d", len(list)+1)
		byType[typ] = id
		list = append(list, model.Fulfillment{ID: id, Type: typ})
	}
	if len(stores) == 0 {
		add(FulfillmentDelivery)
		return list, byType
	}
	for _, store := range stores {
		for _, typ := range expandFulfillments(store) {
			add(typ)
		}
	}
	return list, byType
}

// storeIndexFor matches an item's declared store name against store
// locality/street/city fields. First match wins; no match falls back to
// index 0 rather than erroring.
func storeIndexFor(stores []model.Store, name string) int {
	if name == "" || len(stores) == 0 {
		return 0
	}
	for i, store := range stores {
		if strings.EqualFold(store.Name, name) ||
			strings.EqualFold(store.Locality, name) ||
			strings.EqualFold(store.Street, name) ||
			strings.EqualFold(store.City, name) {
			return i
		}
	}
	return 0
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
