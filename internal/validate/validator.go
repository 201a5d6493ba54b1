package validate

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

//go:embed schema/on_search.json
var onSearchSchema string

// Rejection records a rejected scope (provider/item/tag) with a reason.
type Rejection struct {
	Scope  string `json:"scope"`
	Reason string `json:"reason"`
}

// Service validates on_search payloads: JSON Schema first, then the
// referential rules the schema cannot express.
type Service struct {
	schema *gojsonschema.Schema
}

func NewService() (*Service, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(onSearchSchema))
	if err != nil {
		return nil, fmt.Errorf("compiling on_search schema: %w", err)
	}
	return &Service{schema: schema}, nil
}

// ValidateOnSearch returns every rejection found in the payload. An empty
// slice means the payload passed. The error return is for malformed input
// only, not validation failures.
func (s *Service) ValidateOnSearch(payload []byte) ([]Rejection, error) {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("payload is not valid JSON: %w", err)
	}

	rejections := []Rejection{}
	for _, desc := range result.Errors() {
		rejections = append(rejections, Rejection{
			Scope:  desc.Field(),
			Reason: desc.Description(),
		})
	}

	var env model.OnSearchEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		// Schema rejections above already explain structural problems.
		return rejections, nil
	}
	rejections = append(rejections, checkReferences(&env)...)
	return rejections, nil
}

// checkReferences enforces the catalog's internal invariants: every
// location/fulfillment referenced by an item or tag exists, and
// parent_item_id only points at generated variant-group categories or other
// emitted items.
func checkReferences(env *model.OnSearchEnvelope) []Rejection {
	rejections := []Rejection{}
	for _, provider := range env.Message.Catalog.BPPProviders {
		locations := map[string]bool{}
		for _, loc := range provider.Locations {
			locations[loc.ID] = true
		}
		fulfillments := map[string]bool{}
		for _, f := range provider.Fulfillments {
			fulfillments[f.ID] = true
		}
		categories := map[string]bool{}
		for _, cat := range provider.Categories {
			categories[cat.ID] = true
		}
		itemIDs := map[string]bool{}
		for _, item := range provider.Items {
			itemIDs[item.ID] = true
		}

		scope := "provider:" + provider.ID
		for _, item := range provider.Items {
			itemScope := scope + ":item:" + item.ID
			if item.LocationID != "" && !locations[item.LocationID] {
				rejections = append(rejections, Rejection{
					Scope:  itemScope,
					Reason: fmt.Sprintf("location_id %q not present in locations", item.LocationID),
				})
			}
			if item.FulfillmentID != "" && !fulfillments[item.FulfillmentID] {
				rejections = append(rejections, Rejection{
					Scope:  itemScope,
					Reason: fmt.Sprintf("fulfillment_id %q not present in fulfillments", item.FulfillmentID),
				})
			}
			if item.ParentItemID != "" {
				// Variant members point at a V-prefixed generated group;
				// customization line-items point at their menu item.
				validGroup := strings.HasPrefix(item.ParentItemID, "V") && categories[item.ParentItemID]
				if !validGroup && !itemIDs[item.ParentItemID] {
					rejections = append(rejections, Rejection{
						Scope:  itemScope,
						Reason: fmt.Sprintf("parent_item_id %q is neither a variant group nor an item", item.ParentItemID),
					})
				}
			}
		}

		for _, tag := range provider.Tags {
			if tag.Code != "serviceability" && tag.Code != "timing" {
				continue
			}
			for _, entry := range tag.List {
				if entry.Code == "location" && !locations[entry.Value] {
					rejections = append(rejections, Rejection{
						Scope:  scope + ":tag:" + tag.Code,
						Reason: fmt.Sprintf("location %q not present in locations", entry.Value),
					})
				}
			}
		}
	}
	return rejections
}
