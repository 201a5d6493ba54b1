package seller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

func fnbInput() *model.SellerData {
	return &model.SellerData{
		ProviderName: "Tandoor Tales",
		Domain:       model.DomainField{Names: []string{"F&B"}},
		MenuItems: []model.MenuItem{
			{
				Name: "Paneer Tikka", Category: "Appetizers", Price: "250", VegNonVeg: "veg",
				DayFrom: 1, DayTo: 5, TimeFrom: "1100", TimeTo: "1500",
			},
			{
				Name: "Chicken 65", Category: "Appetizers", Price: "280", VegNonVeg: "non-veg",
				DayFrom: 2, DayTo: 7, TimeFrom: "1800", TimeTo: "2300",
			},
			{
				Name: "Masala Chai", Category: "Beverages", Price: "40", VegNonVeg: "veg",
				CustomizationGroups: []model.CustomizationGroup{
					{
						Name: "Sweetness", MinQuantity: 1, MaxQuantity: 1,
						Customizations: []model.Customization{
							{Name: "Regular", Price: "0", Default: true},
							{Name: "Jaggery", Price: "10"},
						},
					},
				},
			},
		},
	}
}

func TestFnbMenuCategoriesUnionWindow(t *testing.T) {
	payload, err := fixedGenerator().Generate(fnbInput())
	require.NoError(t, err)
	assert.Equal(t, DomainFnB, payload.Context.Domain)

	provider := payload.Message.Catalog.BPPProviders[0]
	// Two menu sections plus one customization group.
	require.Len(t, provider.Categories, 3)

	appetizers := provider.Categories[0]
	assert.Equal(t, "CM1", appetizers.ID)
	assert.Equal(t, "Appetizers", appetizers.Descriptor.Name)
	require.Len(t, appetizers.Tags, 3)
	assert.Equal(t, "custom_menu", appetizers.Tags[0].List[0].Value)

	// Window is the union across both Appetizers items.
	timing := appetizers.Tags[1]
	assert.Equal(t, "1", tagValue(timing, "day_from"))
	assert.Equal(t, "7", tagValue(timing, "day_to"))
	assert.Equal(t, "1100", tagValue(timing, "time_from"))
	assert.Equal(t, "2300", tagValue(timing, "time_to"))
	assert.Equal(t, "1", tagValue(appetizers.Tags[2], "rank"))

	beverages := provider.Categories[1]
	assert.Equal(t, "CM2", beverages.ID)
	assert.Equal(t, "7", tagValue(beverages.Tags[2], "rank"))
}

func TestFnbCustomGroupCategory(t *testing.T) {
	payload, err := fixedGenerator().Generate(fnbInput())
	require.NoError(t, err)

	provider := payload.Message.Catalog.BPPProviders[0]
	group := provider.Categories[2]
	assert.Equal(t, "CG1", group.ID)
	assert.Equal(t, "Sweetness", group.Descriptor.Name)
	assert.Equal(t, "custom_group", group.Tags[0].List[0].Value)

	config := group.Tags[1]
	assert.Equal(t, "1", tagValue(config, "min"))
	assert.Equal(t, "1", tagValue(config, "max"))
	assert.Equal(t, "select", tagValue(config, "input"))
}

func TestFnbCustomizationItems(t *testing.T) {
	payload, err := fixedGenerator().Generate(fnbInput())
	require.NoError(t, err)

	provider := payload.Message.Catalog.BPPProviders[0]
	// Three menu items plus two customization options.
	require.Len(t, provider.Items, 5)

	chai := provider.Items[2]
	assert.Equal(t, "I3", chai.ID)
	assert.Equal(t, "CM2", chai.CategoryID)
	require.Len(t, chai.Tags, 2)
	assert.Equal(t, "custom_group", chai.Tags[1].Code)
	assert.Equal(t, "CG1", tagValue(chai.Tags[1], "id"))

	regular := provider.Items[3]
	assert.Equal(t, "I4", regular.ID)
	assert.Equal(t, chai.ID, regular.ParentItemID)
	assert.Equal(t, "CG1", regular.CategoryID)
	assert.True(t, regular.Related)
	assert.Equal(t, "0.00", regular.Price.Value)
	assert.Equal(t, "yes", tagValue(regular.Tags[len(regular.Tags)-1], "default"))

	jaggery := provider.Items[4]
	assert.Equal(t, "no", tagValue(jaggery.Tags[len(jaggery.Tags)-1], "default"))
	assert.Equal(t, "10.00", jaggery.Price.Value)
}

func TestAssignMenuRanks(t *testing.T) {
	ranks := assignMenuRanks([]string{"Desserts", "Chef Specials", "Appetizers", "House Combos"})
	assert.Equal(t, 6, ranks["Desserts"])
	assert.Equal(t, 1, ranks["Appetizers"])
	// Unranked sections take the lowest unused integers in first-seen order.
	assert.Equal(t, 2, ranks["Chef Specials"])
	assert.Equal(t, 3, ranks["House Combos"])
}

func TestFnbFallsBackToRetailWithoutMenuItems(t *testing.T) {
	data := fnbInput()
	data.MenuItems = nil
	data.Items = []model.SellerItem{{Name: "Packaged Samosa", Price: "60", VegNonVeg: "veg"}}

	payload, err := fixedGenerator().Generate(data)
	require.NoError(t, err)
	provider := payload.Message.Catalog.BPPProviders[0]
	assert.Empty(t, provider.Categories)
	require.Len(t, provider.Items, 1)
	assert.Equal(t, "veg_nonveg", provider.Items[0].Tags[0].Code)
}
