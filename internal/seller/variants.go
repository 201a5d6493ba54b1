package seller

import (
	"fmt"
	"sort"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

// defaultVariantAxis is used when a variant combination declares no
// attribute keys: variants are assumed to differ by unitized quantity.
const defaultVariantAxis = "item.quantity.unitized.measure"

// variantGroupResult carries the generated variant-group categories together
// with the item-index -> group-ID mapping. The mapping is an explicit return
// value threaded into item synthesis; items without variants have no entry,
// which is how downstream code knows to omit parent_item_id entirely.
type variantGroupResult struct {
	Categories  []model.Category
	GroupByItem map[int]string
}

// buildVariantGroups allocates one variant-group category per item carrying
// a non-empty variants array. Axis names come from the keys of the first
// variant's combination, sorted for deterministic output.
func buildVariantGroups(items []model.SellerItem, ids *idGen) variantGroupResult {
	result := variantGroupResult{GroupByItem: map[int]string{}}
	for i, item := range items {
		if len(item.Variants) == 0 {
			continue
		}
		groupID := ids.VariantGroupID()
		result.GroupByItem[i] = groupID
		result.Categories = append(result.Categories, model.Category{
			ID:         groupID,
			Descriptor: model.CategoryDescriptor{Name: item.Name},
			Tags:       variantGroupTags(item.Variants[0].VariantCombination),
		})
	}
	return result
}

func variantGroupTags(combination map[string]string) []model.TagGroup {
	tags := []model.TagGroup{
		{
			Code: "type",
			List: []model.TagEntry{{Code: "type", Value: "variant_group"}},
		},
	}
	axes := variantAxes(combination)
	for seq, axis := range axes {
		tags = append(tags, model.TagGroup{
			Code: "attr",
			List: []model.TagEntry{
				{Code: "name", Value: axis},
				{Code: "seq", Value: fmt.Sprintf("%d", seq+1)},
			},
		})
	}
	return tags
}

func variantAxes(combination map[string]string) []string {
	if len(combination) == 0 {
		return []string{defaultVariantAxis}
	}
	axes := make([]string, 0, len(combination))
	for axis := range combination {
		axes = append(axes, "item.attributes."+axis)
	}
	sort.Strings(axes)
	return axes
}
