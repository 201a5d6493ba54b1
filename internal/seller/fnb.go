package seller

import (
	"strconv"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

// menuRanks is the fixed display order for well-known menu sections.
// Categories outside the table get the next free integer in first-seen order.
var menuRanks = map[string]int{
	"Appetizers":  1,
	"Soups":       2,
	"Salads":      3,
	"Main Course": 4,
	"Breads":      5,
	"Desserts":    6,
	"Beverages":   7,
}

const defaultMenuCategory = "Menu"

// menuWindow accumulates the widest availability window across all menu
// items sharing a category: min day_from, max day_to, earliest time_from,
// latest time_to. Unset fields on an item do not narrow the union.
type menuWindow struct {
	dayFrom, dayTo     int
	timeFrom, timeTo   string
}

func (w *menuWindow) merge(item model.MenuItem) {
	if item.DayFrom > 0 && (w.dayFrom == 0 || item.DayFrom < w.dayFrom) {
		w.dayFrom = item.DayFrom
	}
	if item.DayTo > w.dayTo {
		w.dayTo = item.DayTo
	}
	// HHMM strings compare correctly as text.
	if item.TimeFrom != "" && (w.timeFrom == "" || item.TimeFrom < w.timeFrom) {
		w.timeFrom = item.TimeFrom
	}
	if item.TimeTo != "" && item.TimeTo > w.timeTo {
		w.timeTo = item.TimeTo
	}
}

func (w *menuWindow) tag() model.TagGroup {
	dayFrom := w.dayFrom
	if dayFrom == 0 {
		dayFrom = defaultDayFrom
	}
	dayTo := w.dayTo
	if dayTo == 0 {
		dayTo = defaultDayTo
	}
	return model.TagGroup{
		Code: "timing",
		List: []model.TagEntry{
			{Code: "day_from", Value: strconv.Itoa(dayFrom)},
			{Code: "day_to", Value: strconv.Itoa(dayTo)},
			{Code: "time_from", Value: orDefault(w.timeFrom, defaultTimeFrom)},
			{Code: "time_to", Value: orDefault(w.timeTo, defaultTimeTo)},
		},
	}
}

// fnbStrategy builds the menu-driven catalog: custom_menu categories with
// union availability windows and display ranks, custom_group categories for
// hoisted customization groups, one catalog item per menu item and one per
// customization option.
type fnbStrategy struct{}

func (fnbStrategy) Build(data *model.SellerData, code string, env *buildEnv) ([]model.Category, []model.Item) {
	menuCats, catIDByName := buildMenuCategories(data.MenuItems, env.ids)
	groupCats, groupIDByName := buildCustomGroups(data.MenuItems, env.ids)

	categories := append(menuCats, groupCats...)
	items := buildMenuItems(data.MenuItems, code, env, catIDByName, groupIDByName)
	return categories, items
}

func buildMenuCategories(menuItems []model.MenuItem, ids *idGen) ([]model.Category, map[string]string) {
	order := []string{}
	windows := map[string]*menuWindow{}
	for _, item := range menuItems {
		name := orDefault(item.Category, defaultMenuCategory)
		if _, ok := windows[name]; !ok {
			windows[name] = &menuWindow{}
			order = append(order, name)
		}
		windows[name].merge(item)
	}

	ranks := assignMenuRanks(order)

	categories := make([]model.Category, 0, len(order))
	catIDByName := map[string]string{}
	for _, name := range order {
		id := ids.NextMenuCategoryID()
		catIDByName[name] = id
		categories = append(categories, model.Category{
			ID:         id,
			Descriptor: model.CategoryDescriptor{Name: name},
			Tags: []model.TagGroup{
				{Code: "type", List: []model.TagEntry{{Code: "type", Value: "custom_menu"}}},
				windows[name].tag(),
				{Code: "display", List: []model.TagEntry{{Code: "rank", Value: strconv.Itoa(ranks[name])}}},
			},
		})
	}
	return categories, catIDByName
}

// assignMenuRanks gives fixed-table categories their table rank; the rest
// take the lowest unused integer in first-seen order.
func assignMenuRanks(order []string) map[string]int {
	ranks := map[string]int{}
	used := map[int]bool{}
	for _, name := range order {
		if rank, ok := menuRanks[name]; ok {
			ranks[name] = rank
			used[rank] = true
		}
	}
	next := 1
	for _, name := range order {
		if _, ok := ranks[name]; ok {
			continue
		}
		for used[next] {
			next++
		}
		ranks[name] = next
		used[next] = true
	}
	return ranks
}

// buildCustomGroups hoists customization groups into category-like entries.
// Groups are deduplicated by name; the first occurrence's config wins.
func buildCustomGroups(menuItems []model.MenuItem, ids *idGen) ([]model.Category, map[string]string) {
	categories := []model.Category{}
	groupIDByName := map[string]string{}
	seq := 0
	for _, item := range menuItems {
		for _, group := range item.CustomizationGroups {
			if _, ok := groupIDByName[group.Name]; ok {
				continue
			}
			seq++
			id := ids.NextCustomGroupID()
			groupIDByName[group.Name] = id
			categories = append(categories, model.Category{
				ID:         id,
				Descriptor: model.CategoryDescriptor{Name: group.Name},
				Tags: []model.TagGroup{
					{Code: "type", List: []model.TagEntry{{Code: "type", Value: "custom_group"}}},
					{Code: "config", List: []model.TagEntry{
						{Code: "min", Value: strconv.Itoa(group.MinQuantity)},
						{Code: "max", Value: strconv.Itoa(group.MaxQuantity)},
						{Code: "input", Value: "select"},
						{Code: "seq", Value: strconv.Itoa(seq)},
					}},
				},
			})
		}
	}
	return categories, groupIDByName
}

func buildMenuItems(menuItems []model.MenuItem, code string, env *buildEnv, catIDByName, groupIDByName map[string]string) []model.Item {
	items := []model.Item{}
	for _, src := range menuItems {
		locationID, fulfillmentID := env.itemPlacement(src.StoreName)
		categoryID := catIDByName[orDefault(src.Category, defaultMenuCategory)]

		parent := model.Item{
			ID: env.ids.NextItemID(),
			Descriptor: model.ItemDescriptor{
				Name:      src.Name,
				ShortDesc: orDefault(src.ShortDesc, src.Name),
				LongDesc:  orDefault(src.LongDesc, src.Name),
				Images:    src.Images,
			},
			Price: model.ItemPrice{
				Currency: defaultCurrency,
				Value:    normalizePrice(src.Price),
			},
			CategoryID:    categoryID,
			LocationID:    locationID,
			FulfillmentID: fulfillmentID,
			Tags:          menuItemTags(src, groupIDByName),
		}
		items = append(items, parent)

		for _, group := range src.CustomizationGroups {
			groupID := groupIDByName[group.Name]
			for _, c := range group.Customizations {
				items = append(items, customizationItem(env.ids.NextItemID(), parent, groupID, locationID, fulfillmentID, c))
			}
		}
	}
	return items
}

func menuItemTags(src model.MenuItem, groupIDByName map[string]string) []model.TagGroup {
	tags := []model.TagGroup{vegNonVegTag(src.VegNonVeg)}
	if len(src.CustomizationGroups) == 0 {
		return tags
	}
	refs := make([]model.TagEntry, 0, len(src.CustomizationGroups))
	for _, group := range src.CustomizationGroups {
		refs = append(refs, model.TagEntry{Code: "id", Value: groupIDByName[group.Name]})
	}
	return append(tags, model.TagGroup{Code: "custom_group", List: refs})
}

// customizationItem emits one catalog line-item per customization option,
// linked to its menu item via parent_item_id and to its group via the
// custom_group/config tag pair.
func customizationItem(id string, parent model.Item, groupID, locationID, fulfillmentID string, c model.Customization) model.Item {
	defaultFlag := "no"
	if c.Default {
		defaultFlag = "yes"
	}
	tags := []model.TagGroup{
		{Code: "type", List: []model.TagEntry{{Code: "type", Value: "customization"}}},
		{Code: "custom_group", List: []model.TagEntry{{Code: "id", Value: groupID}}},
		{Code: "config", List: []model.TagEntry{{Code: "default", Value: defaultFlag}}},
	}
	if c.VegNonVeg != "" {
		tags = append([]model.TagGroup{vegNonVegTag(c.VegNonVeg)}, tags...)
	}
	return model.Item{
		ID: id,
		Descriptor: model.ItemDescriptor{
			Name:      c.Name,
			ShortDesc: c.Name,
			LongDesc:  c.Name,
		},
		Price: model.ItemPrice{
			Currency: defaultCurrency,
			Value:    normalizePrice(c.Price),
		},
		CategoryID:    groupID,
		ParentItemID:  parent.ID,
		LocationID:    locationID,
		FulfillmentID: fulfillmentID,
		Related:       true,
		Tags:          tags,
	}
}
