package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SellerData is the loosely-structured seller-onboarding input posted to
// /seller/on_search. Most fields are optional; the generator fills defaults.
type SellerData struct {
	ProviderName string   `json:"provider_name" validate:"required"`
	Symbol       string   `json:"symbol,omitempty"`
	ShortDesc    string   `json:"short_desc,omitempty"`
	LongDesc     string   `json:"long_desc,omitempty"`
	Images       []string `json:"images,omitempty"`

	// Domain accepts either a single name ("Grocery") or an array of names.
	// The array form selects the multi-domain response shape even when it
	// holds a single name.
	Domain DomainField `json:"domain,omitempty"`

	Stores    []Store      `json:"stores,omitempty" validate:"dive"`
	Items     []SellerItem `json:"items,omitempty" validate:"dive"`
	MenuItems []MenuItem   `json:"menu_items,omitempty" validate:"dive"`

	// IncludeParentInCatalog controls whether an item with variants is also
	// emitted as a purchasable catalog entry of its own. Defaults to true.
	IncludeParentInCatalog *bool `json:"include_parent_in_catalog,omitempty"`

	// TransactionID, when present, is carried into the output context
	// instead of a freshly generated one.
	TransactionID string `json:"transaction_id,omitempty"`
}

func (s *SellerData) ParentInCatalog() bool {
	return s.IncludeParentInCatalog == nil || *s.IncludeParentInCatalog
}

// DomainField carries the requested domain names along with whether the
// input used the array form; the response shape follows the input shape,
// so array-ness must survive decoding.
type DomainField struct {
	Names []string
	Multi bool
}

func (d *DomainField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*d = DomainField{}
		return nil
	}
	if data[0] == '[' {
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			return err
		}
		*d = DomainField{Names: names, Multi: true}
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*d = DomainField{Names: []string{name}}
	return nil
}

func (d DomainField) MarshalJSON() ([]byte, error) {
	if d.Multi {
		return json.Marshal(d.Names)
	}
	if len(d.Names) == 0 {
		return []byte("null"), nil
	}
	if len(d.Names) == 1 {
		return json.Marshal(d.Names[0])
	}
	return json.Marshal(d.Names)
}

// DomainList unmarshals from either a JSON string or an array of strings.
type DomainList []string

func (d *DomainList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*d = nil
		return nil
	}
	if data[0] == '[' {
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			return err
		}
		*d = names
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*d = DomainList{name}
	return nil
}

func (d DomainList) MarshalJSON() ([]byte, error) {
	if len(d) == 1 {
		return json.Marshal(d[0])
	}
	return json.Marshal([]string(d))
}

// FlexString accepts a JSON string or number and holds it as a string, since
// onboarding payloads are inconsistent about quoting prices and counts.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("value must be a string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// Int returns the value as an int, or def when empty/unparseable.
func (f FlexString) Int(def int) int {
	if f == "" {
		return def
	}
	if v, err := strconv.Atoi(string(f)); err == nil {
		return v
	}
	return def
}

// Store describes one physical seller location and its serviceability rules.
type Store struct {
	Name     string `json:"name,omitempty"`
	Locality string `json:"locality,omitempty"`
	Street   string `json:"street,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	AreaCode string `json:"area_code,omitempty"`
	GPS      string `json:"gps,omitempty"`

	// SupportedFulfillments is one of Order, Delivery, Self-Pickup or All.
	SupportedFulfillments  DomainList       `json:"supported_fulfillments,omitempty"`
	SupportedSubcategories []string         `json:"supported_subcategories,omitempty"`
	Serviceabilities       []Serviceability `json:"serviceabilities,omitempty"`

	Timings []StoreTiming `json:"timings,omitempty"`
}

// StoreTiming is an operating window: day_from..day_to (1=Monday..7=Sunday)
// with open/close times in HHMM.
type StoreTiming struct {
	Type     string `json:"type,omitempty"` // Order, Delivery, Self-Pickup
	DayFrom  int    `json:"day_from,omitempty"`
	DayTo    int    `json:"day_to,omitempty"`
	TimeFrom string `json:"time_from,omitempty"`
	TimeTo   string `json:"time_to,omitempty"`
}

// Serviceability declares how far a store serves one category.
type Serviceability struct {
	Category string     `json:"category" validate:"required"`
	Type     string     `json:"type,omitempty"` // "10" hyperlocal, "11" intercity, "12" pan-India
	Val      FlexString `json:"val,omitempty"`
	Unit     string     `json:"unit,omitempty"`
}

// SellerItem is one onboarded product, optionally carrying variants.
type SellerItem struct {
	Name          string     `json:"name" validate:"required"`
	Code          string     `json:"code,omitempty"`
	Symbol        string     `json:"symbol,omitempty"`
	ShortDesc     string     `json:"short_desc,omitempty"`
	LongDesc      string     `json:"long_desc,omitempty"`
	Images        []string   `json:"images,omitempty"`
	Category      string     `json:"category,omitempty"`
	MRP           FlexString `json:"mrp,omitempty"`
	Price         FlexString `json:"price,omitempty"`
	StoreName     string     `json:"store_name,omitempty"`
	VegNonVeg     string     `json:"veg_non_veg,omitempty"`
	UnitValue     FlexString `json:"unit_value,omitempty"`
	UnitOfMeasure string     `json:"unit_of_measure,omitempty"`

	AvailableCount FlexString `json:"available_count,omitempty"`
	MaximumCount   FlexString `json:"maximum_count,omitempty"`

	Variants []Variant `json:"variants,omitempty" validate:"dive"`

	// Attributes is the free-form attribute bag (brand, colour, warranty...).
	Attributes map[string]string `json:"attributes,omitempty"`

	// ONDC extension overrides; generator defaults apply when nil/empty.
	Returnable     *bool  `json:"returnable,omitempty"`
	Cancellable    *bool  `json:"cancellable,omitempty"`
	ReturnWindow   string `json:"return_window,omitempty"`
	TimeToShip     string `json:"time_to_ship,omitempty"`
	AvailableOnCOD *bool  `json:"cod_availability,omitempty"`
	ConsumerCare   string `json:"consumer_care,omitempty"`
}

// Variant is one purchasable variation of a SellerItem. Empty fields inherit
// from the parent item.
type Variant struct {
	Name          string     `json:"name,omitempty"`
	Code          string     `json:"code,omitempty"`
	Images        []string   `json:"images,omitempty"`
	MRP           FlexString `json:"mrp,omitempty"`
	Price         FlexString `json:"price,omitempty"`
	UnitValue     FlexString `json:"unit_value,omitempty"`
	UnitOfMeasure string     `json:"unit_of_measure,omitempty"`

	AvailableCount FlexString `json:"available_count,omitempty"`
	MaximumCount   FlexString `json:"maximum_count,omitempty"`

	// VariantCombination maps attribute axis -> value, e.g. {"size": "XL"}.
	VariantCombination map[string]string `json:"variant_combination,omitempty"`
}

// MenuItem is an F&B menu entry with an availability window and optional
// customization groups.
type MenuItem struct {
	Name      string     `json:"name" validate:"required"`
	ShortDesc string     `json:"short_desc,omitempty"`
	LongDesc  string     `json:"long_desc,omitempty"`
	Images    []string   `json:"images,omitempty"`
	Price     FlexString `json:"price,omitempty"`
	Category  string     `json:"category,omitempty"`
	VegNonVeg string     `json:"veg_non_veg,omitempty"`
	StoreName string     `json:"store_name,omitempty"`

	DayFrom  int    `json:"day_from,omitempty"`
	DayTo    int    `json:"day_to,omitempty"`
	TimeFrom string `json:"time_from,omitempty"`
	TimeTo   string `json:"time_to,omitempty"`

	CustomizationGroups []CustomizationGroup `json:"customization_groups,omitempty" validate:"dive"`
}

// CustomizationGroup bounds how many customizations may be picked.
type CustomizationGroup struct {
	Name           string          `json:"name" validate:"required"`
	MinQuantity    int             `json:"min_quantity"`
	MaxQuantity    int             `json:"max_quantity"`
	Customizations []Customization `json:"customizations,omitempty" validate:"dive"`
}

type Customization struct {
	Name      string     `json:"name" validate:"required"`
	Price     FlexString `json:"price,omitempty"`
	Default   bool       `json:"default,omitempty"`
	VegNonVeg string     `json:"veg_non_veg,omitempty"`
}
