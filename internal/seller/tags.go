package seller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

// Default operating window applied when a store declares no hours.
const (
	defaultDayFrom  = 1
	defaultDayTo    = 7
	defaultTimeFrom = "0000"
	defaultTimeTo   = "2359"
)

// Serviceability defaults: 3 km hyperlocal radius.
const (
	serviceabilityHyperlocal  = "10"
	defaultServiceabilityVal  = "3"
	defaultServiceabilityUnit = "km"
)

// buildProviderTags emits the timing and serviceability tag families per
// store. Serviceability entries are filtered by domain relevance. With zero
// stores a single default tag set is emitted instead.
func buildProviderTags(stores []model.Store, code string, locations []model.Location) []model.TagGroup {
	relevant := domainCategories(code)

	if len(stores) == 0 {
		tags := []model.TagGroup{timingTag(FulfillmentDelivery, locations[0].ID, model.StoreTiming{})}
		if len(relevant) > 0 {
			tags = append(tags, serviceabilityTag(locations[0].ID, model.Serviceability{Category: relevant[0]}))
		}
		return tags
	}

	tags := []model.TagGroup{}
	for i, store := range stores {
		locationID := locations[i].ID

		for _, typ := range expandFulfillments(store) {
			tags = append(tags, timingTag(typ, locationID, storeTimingFor(store, typ)))
		}

		if len(store.Serviceabilities) > 0 {
			for _, sv := range store.Serviceabilities {
				if !categoryRelevant(sv.Category, relevant) {
					continue
				}
				tags = append(tags, serviceabilityTag(locationID, sv))
			}
			continue
		}
		for _, category := range store.SupportedSubcategories {
			if !categoryRelevant(category, relevant) {
				continue
			}
			tags = append(tags, serviceabilityTag(locationID, model.Serviceability{Category: category}))
		}
	}
	return tags
}

// storeTimingFor picks the store's declared window for a fulfillment type.
// A window with no type applies to every type; missing windows default.
func storeTimingFor(store model.Store, typ string) model.StoreTiming {
	for _, t := range store.Timings {
		if strings.EqualFold(t.Type, typ) {
			return t
		}
	}
	for _, t := range store.Timings {
		if t.Type == "" {
			return t
		}
	}
	return model.StoreTiming{}
}

func timingTag(typ, locationID string, t model.StoreTiming) model.TagGroup {
	dayFrom := t.DayFrom
	if dayFrom == 0 {
		dayFrom = defaultDayFrom
	}
	dayTo := t.DayTo
	if dayTo == 0 {
		dayTo = defaultDayTo
	}
	return model.TagGroup{
		Code: "timing",
		List: []model.TagEntry{
			{Code: "type", Value: typ},
			{Code: "location", Value: locationID},
			{Code: "day_from", Value: fmt.Sprintf("%d", dayFrom)},
			{Code: "day_to", Value: fmt.Sprintf("%d", dayTo)},
			{Code: "time_from", Value: orDefault(t.TimeFrom, defaultTimeFrom)},
			{Code: "time_to", Value: orDefault(t.TimeTo, defaultTimeTo)},
		},
	}
}

func serviceabilityTag(locationID string, sv model.Serviceability) model.TagGroup {
	return model.TagGroup{
		Code: "serviceability",
		List: []model.TagEntry{
			{Code: "location", Value: locationID},
			{Code: "category", Value: sv.Category},
			{Code: "type", Value: orDefault(sv.Type, serviceabilityHyperlocal)},
			{Code: "val", Value: orDefault(sv.Val.String(), defaultServiceabilityVal)},
			{Code: "unit", Value: orDefault(sv.Unit, defaultServiceabilityUnit)},
		},
	}
}

// domainAttributeKeys lists which free-form attributes each domain surfaces
// as first-class attribute tags, in emission order.
var domainAttributeKeys = map[string][]string{
	DomainFashion:     {"brand", "size", "colour", "fabric", "gender", "pattern"},
	DomainBPC:         {"brand", "skin_type", "formulation"},
	DomainElectronics: {"brand", "warranty", "storage", "ram"},
	DomainAppliances:  {"brand", "warranty", "storage", "ram"},
	DomainHomeKitchen: {"material", "dimensions"},
	DomainHealth:      {"prescription_required", "dosage"},
}

// itemAttributeTags renders the domain-specific tag groups for one item.
// Grocery and F&B get a veg_nonveg group; everything else surfaces selected
// attributes, and any leftover free-form attribute joins (or starts) the
// generic "attribute" group.
func itemAttributeTags(code string, src model.SellerItem) []model.TagGroup {
	tags := []model.TagGroup{}
	consumed := map[string]bool{}

	switch code {
	case DomainGrocery, DomainFnB:
		tags = append(tags, vegNonVegTag(src.VegNonVeg))
	default:
		entries := []model.TagEntry{}
		for _, key := range domainAttributeKeys[code] {
			if val, ok := src.Attributes[key]; ok && val != "" {
				entries = append(entries, model.TagEntry{Code: key, Value: val})
				consumed[key] = true
			}
		}
		if len(entries) > 0 {
			tags = append(tags, model.TagGroup{Code: "attribute", List: entries})
		}
	}

	leftovers := []string{}
	for key, val := range src.Attributes {
		if !consumed[key] && val != "" {
			leftovers = append(leftovers, key)
		}
	}
	if len(leftovers) == 0 {
		return tags
	}
	sort.Strings(leftovers)

	// Merge into an existing attribute group when one was already started.
	for i := range tags {
		if tags[i].Code == "attribute" {
			for _, key := range leftovers {
				tags[i].List = append(tags[i].List, model.TagEntry{Code: key, Value: src.Attributes[key]})
			}
			return tags
		}
	}
	entries := make([]model.TagEntry, 0, len(leftovers))
	for _, key := range leftovers {
		entries = append(entries, model.TagEntry{Code: key, Value: src.Attributes[key]})
	}
	return append(tags, model.TagGroup{Code: "attribute", List: entries})
}

// vegNonVegTag normalises the veg/non-veg flag; anything mentioning "non"
// counts as non-veg.
func vegNonVegTag(flag string) model.TagGroup {
	value := "veg"
	if strings.Contains(strings.ToLower(flag), "non") {
		value = "non_veg"
	}
	return model.TagGroup{
		Code: "veg_nonveg",
		List: []model.TagEntry{{Code: value, Value: "yes"}},
	}
}
