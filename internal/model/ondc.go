package model

// OnSearchEnvelope models the top-level ONDC on_search payload emitted by the
// seller simulation engine.
type OnSearchEnvelope struct {
	Context OnSearchContext `json:"context" validate:"required"`
	Message OnSearchMessage `json:"message" validate:"required"`
}

type OnSearchContext struct {
	Domain        string `json:"domain" validate:"required"`
	Country       string `json:"country" validate:"required"`
	City          string `json:"city" validate:"required"`
	Action        string `json:"action" validate:"required,eq=on_search"`
	CoreVersion   string `json:"core_version" validate:"required"`
	BapID         string `json:"bap_id" validate:"required"`
	BapURI        string `json:"bap_uri" validate:"required"`
	BppID         string `json:"bpp_id" validate:"required"`
	BppURI        string `json:"bpp_uri" validate:"required"`
	TransactionID string `json:"transaction_id" validate:"required"`
	MessageID     string `json:"message_id" validate:"required"`
	Timestamp     string `json:"timestamp" validate:"required"`
}

type OnSearchMessage struct {
	Catalog Catalog `json:"catalog" validate:"required"`
}

type Catalog struct {
	BPPDescriptor   BPPDescriptor `json:"bpp/descriptor" validate:"required"`
	BPPFulfillments []Fulfillment `json:"bpp/fulfillments" validate:"dive"`
	BPPProviders    []Provider    `json:"bpp/providers" validate:"dive"`
}

type BPPDescriptor struct {
	Name      string   `json:"name" validate:"required"`
	Symbol    string   `json:"symbol,omitempty"`
	ShortDesc string   `json:"short_desc,omitempty"`
	LongDesc  string   `json:"long_desc,omitempty"`
	Images    []string `json:"images,omitempty" validate:"dive,required"`
}

type Fulfillment struct {
	ID   string `json:"id" validate:"required"`
	Type string `json:"type" validate:"required"`
}

type Provider struct {
	ID           string             `json:"id" validate:"required"`
	TTL          string             `json:"ttl,omitempty"`
	Time         *ProviderTime      `json:"time,omitempty"`
	Descriptor   ProviderDescriptor `json:"descriptor" validate:"required"`
	Locations    []Location         `json:"locations" validate:"dive"`
	Fulfillments []Fulfillment      `json:"fulfillments" validate:"dive"`
	// Categories is omitted entirely when the catalog has no variant groups
	// or menu categories.
	Categories []Category `json:"categories,omitempty" validate:"dive"`
	Items      []Item     `json:"items,omitempty" validate:"dive"`
	Tags       []TagGroup `json:"tags,omitempty" validate:"dive"`
}

type ProviderTime struct {
	Label     string `json:"label" validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
}

type ProviderDescriptor struct {
	Name      string   `json:"name" validate:"required"`
	Symbol    string   `json:"symbol,omitempty"`
	ShortDesc string   `json:"short_desc,omitempty"`
	LongDesc  string   `json:"long_desc,omitempty"`
	Images    []string `json:"images,omitempty" validate:"dive"`
}

type Location struct {
	ID      string    `json:"id" validate:"required"`
	GPS     string    `json:"gps" validate:"required"`
	Address *Address  `json:"address,omitempty"`
	Time    *TimeSlot `json:"time,omitempty"`
}

type Address struct {
	Locality string `json:"locality,omitempty"`
	Street   string `json:"street,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	AreaCode string `json:"area_code,omitempty"`
}

// TimeSlot carries a day range plus an HHMM time range, the shape used by
// location timings and custom_menu availability windows.
type TimeSlot struct {
	Label string     `json:"label,omitempty"`
	Days  string     `json:"days,omitempty"`
	Range *TimeRange `json:"range,omitempty"`
}

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Category struct {
	ID               string             `json:"id" validate:"required"`
	ParentCategoryID string             `json:"parent_category_id,omitempty"`
	Descriptor       CategoryDescriptor `json:"descriptor" validate:"required"`
	Tags             []TagGroup         `json:"tags,omitempty" validate:"dive"`
}

type CategoryDescriptor struct {
	Name      string   `json:"name" validate:"required"`
	ShortDesc string   `json:"short_desc,omitempty"`
	LongDesc  string   `json:"long_desc,omitempty"`
	Images    []string `json:"images,omitempty"`
}

type Item struct {
	ID         string         `json:"id" validate:"required"`
	Descriptor ItemDescriptor `json:"descriptor" validate:"required"`
	Price      ItemPrice      `json:"price" validate:"required"`
	Quantity   *ItemQuantity  `json:"quantity,omitempty"`
	CategoryID string         `json:"category_id" validate:"required"`
	// ParentItemID is only set for items that belong to a generated variant
	// group, or for customization line-items pointing at their menu item.
	ParentItemID  string     `json:"parent_item_id,omitempty"`
	FulfillmentID string     `json:"fulfillment_id,omitempty"`
	LocationID    string     `json:"location_id,omitempty"`
	Related       bool       `json:"related,omitempty"`
	Tags          []TagGroup `json:"tags,omitempty" validate:"dive"`

	// ONDC retail extension attributes.
	Returnable         *bool  `json:"@ondc/org/returnable,omitempty"`
	Cancellable        *bool  `json:"@ondc/org/cancellable,omitempty"`
	SellerPickupReturn *bool  `json:"@ondc/org/seller_pickup_return,omitempty"`
	ReturnWindow       string `json:"@ondc/org/return_window,omitempty"`
	TimeToShip         string `json:"@ondc/org/time_to_ship,omitempty"`
	AvailableOnCOD     *bool  `json:"@ondc/org/available_on_cod,omitempty"`
	ConsumerCare       string `json:"@ondc/org/contact_details_consumer_care,omitempty"`
}

type ItemDescriptor struct {
	Name      string   `json:"name" validate:"required"`
	Code      string   `json:"code,omitempty"`
	Symbol    string   `json:"symbol,omitempty"`
	ShortDesc string   `json:"short_desc,omitempty"`
	LongDesc  string   `json:"long_desc,omitempty"`
	Images    []string `json:"images,omitempty" validate:"dive"`
}

type ItemPrice struct {
	Currency     string `json:"currency" validate:"required"`
	Value        string `json:"value" validate:"required"`
	MaximumValue string `json:"maximum_value,omitempty"`
}

type ItemQuantity struct {
	Available *ItemQuantityCount    `json:"available,omitempty"`
	Maximum   *ItemQuantityCount    `json:"maximum,omitempty"`
	Unitized  *ItemQuantityUnitized `json:"unitized,omitempty"`
}

type ItemQuantityCount struct {
	Count string `json:"count" validate:"required"`
}

type ItemQuantityUnitized struct {
	Measure ItemMeasure `json:"measure" validate:"required"`
}

type ItemMeasure struct {
	Value string `json:"value" validate:"required"`
	Unit  string `json:"unit" validate:"required"`
}

// TagGroup is the ONDC tag container: a group code plus code/value entries.
type TagGroup struct {
	Code string     `json:"code" validate:"required"`
	List []TagEntry `json:"list" validate:"required,dive"`
}

type TagEntry struct {
	Code  string `json:"code" validate:"required"`
	Value string `json:"value"`
}
