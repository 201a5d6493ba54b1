package seller

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

// ONDC extension defaults applied when the onboarding input leaves them out.
const (
	defaultReturnWindow = "PT1H"
	defaultTimeToShip   = "PT45M"
	defaultCurrency     = "INR"
	defaultCount        = "99"
)

// buildEnv bundles the per-call synthesis context shared by the catalog
// strategies. Constructed fresh for every generation call.
type buildEnv struct {
	stores            []model.Store
	locations         []model.Location
	fulfillmentByType map[string]string
	ids               *idGen
}

// itemPlacement resolves where an item is fulfilled from: the store-name
// match drives both location and fulfillment linkage.
func (e *buildEnv) itemPlacement(storeName string) (locationID, fulfillmentID string) {
	idx := storeIndexFor(e.stores, storeName)
	if idx >= len(e.locations) {
		idx = 0
	}
	locationID = e.locations[idx].ID

	typ := FulfillmentDelivery
	if idx < len(e.stores) {
		typ = expandFulfillments(e.stores[idx])[0]
	}
	fulfillmentID = e.fulfillmentByType[typ]
	if fulfillmentID == "" {
		// Store declared a type nobody registered; F1 always exists.
		fulfillmentID = "F1"
	}
	return locationID, fulfillmentID
}

// buildRetailItems emits catalog items for the generic (non-F&B) pipeline:
// one item per variant plus, when include_parent_in_catalog is not false,
// the parent itself; exactly one item for variant-less entries.
func buildRetailItems(data *model.SellerData, code string, env *buildEnv, groups variantGroupResult) []model.Item {
	items := []model.Item{}
	for i, src := range data.Items {
		locationID, fulfillmentID := env.itemPlacement(src.StoreName)
		groupID, hasGroup := groups.GroupByItem[i]

		if !hasGroup {
			item := newCatalogItem(env.ids.NextItemID(), src, code)
			item.LocationID = locationID
			item.FulfillmentID = fulfillmentID
			items = append(items, item)
			continue
		}

		for vi, variant := range src.Variants {
			merged := mergeVariant(src, variant, vi)
			item := newCatalogItem(env.ids.NextItemID(), merged, code)
			item.ParentItemID = groupID
			item.LocationID = locationID
			item.FulfillmentID = fulfillmentID
			items = append(items, item)
		}

		if data.ParentInCatalog() {
			item := newCatalogItem(env.ids.NextItemID(), src, code)
			item.ParentItemID = groupID
			item.LocationID = locationID
			item.FulfillmentID = fulfillmentID
			items = append(items, item)
		}
	}
	return items
}

// mergeVariant projects a variant onto its parent item, inheriting every
// field the variant leaves empty. The product code derives from the parent
// unless the variant overrides it.
func mergeVariant(parent model.SellerItem, variant model.Variant, index int) model.SellerItem {
	merged := parent
	merged.Variants = nil

	if variant.Name != "" {
		merged.Name = variant.Name
	}
	switch {
	case variant.Code != "":
		merged.Code = variant.Code
	case parent.Code != "":
		merged.Code = fmt.Sprintf("%s-%d", parent.Code, index+1)
	}
	if len(variant.Images) > 0 {
		merged.Images = variant.Images
	}
	if variant.MRP != "" {
		merged.MRP = variant.MRP
	}
	if variant.Price != "" {
		merged.Price = variant.Price
	}
	if variant.UnitValue != "" {
		merged.UnitValue = variant.UnitValue
	}
	if variant.UnitOfMeasure != "" {
		merged.UnitOfMeasure = variant.UnitOfMeasure
	}
	if variant.AvailableCount != "" {
		merged.AvailableCount = variant.AvailableCount
	}
	if variant.MaximumCount != "" {
		merged.MaximumCount = variant.MaximumCount
	}

	// Surface the combination values as attributes so the domain tagger
	// renders the variant axes (size, colour, ...) on the emitted item.
	if len(variant.VariantCombination) > 0 {
		attrs := map[string]string{}
		for k, v := range parent.Attributes {
			attrs[k] = v
		}
		for k, v := range variant.VariantCombination {
			attrs[k] = v
		}
		merged.Attributes = attrs
	}
	return merged
}

func newCatalogItem(id string, src model.SellerItem, code string) model.Item {
	selling := normalizePrice(src.Price)
	mrp := normalizePrice(src.MRP)
	if src.MRP == "" {
		mrp = selling
	}

	item := model.Item{
		ID: id,
		Descriptor: model.ItemDescriptor{
			Name:      src.Name,
			Code:      src.Code,
			Symbol:    src.Symbol,
			ShortDesc: orDefault(src.ShortDesc, src.Name),
			LongDesc:  orDefault(src.LongDesc, src.Name),
			Images:    src.Images,
		},
		Price: model.ItemPrice{
			Currency:     defaultCurrency,
			Value:        selling,
			MaximumValue: mrp,
		},
		Quantity:   itemQuantity(src),
		CategoryID: itemCategory(src.Category, code),
		Tags:       itemAttributeTags(code, src),

		Returnable:     boolOrDefault(src.Returnable, true),
		Cancellable:    boolOrDefault(src.Cancellable, true),
		ReturnWindow:   orDefault(src.ReturnWindow, defaultReturnWindow),
		TimeToShip:     orDefault(src.TimeToShip, defaultTimeToShip),
		AvailableOnCOD: boolOrDefault(src.AvailableOnCOD, false),
		ConsumerCare:   src.ConsumerCare,
	}
	return item
}

func itemQuantity(src model.SellerItem) *model.ItemQuantity {
	return &model.ItemQuantity{
		Available: &model.ItemQuantityCount{Count: orDefault(src.AvailableCount.String(), defaultCount)},
		Maximum:   &model.ItemQuantityCount{Count: orDefault(src.MaximumCount.String(), defaultCount)},
		Unitized: &model.ItemQuantityUnitized{
			Measure: model.ItemMeasure{
				Value: orDefault(src.UnitValue.String(), "1"),
				Unit:  orDefault(src.UnitOfMeasure, "unit"),
			},
		},
	}
}

// itemCategory falls back to the domain's first subcategory when the item
// declares none; category_id is mandatory in the output schema.
func itemCategory(category, code string) string {
	if category != "" {
		return category
	}
	if set := domainCategories(code); len(set) > 0 {
		return set[0]
	}
	return "Fruits and Vegetables"
}

// normalizePrice parses a loose price string and renders it with two decimal
// places. Missing or malformed prices become "0.00"; shopspring/decimal
// keeps the arithmetic exact.
func normalizePrice(raw model.FlexString) string {
	s := raw.String()
	if s == "" {
		return "0.00"
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "0.00"
	}
	return d.StringFixed(2)
}

func boolOrDefault(v *bool, def bool) *bool {
	if v != nil {
		return v
	}
	return &def
}
