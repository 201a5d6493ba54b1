package seller

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// ONDC retail protocol domain codes.
const (
	DomainGrocery     = "ONDC:RET10"
	DomainFnB         = "ONDC:RET11"
	DomainFashion     = "ONDC:RET12"
	DomainBPC         = "ONDC:RET13"
	DomainElectronics = "ONDC:RET14"
	DomainAppliances  = "ONDC:RET15"
	DomainHomeKitchen = "ONDC:RET16"
	DomainHealth      = "ONDC:RET18"
)

// domainTable maps human-readable domain names to protocol codes. Order
// matters: ResolveDomain returns the first match.
var domainTable = []struct {
	Name string
	Code string
}{
	{"Grocery", DomainGrocery},
	{"F&B", DomainFnB},
	{"Fashion", DomainFashion},
	{"BPC", DomainBPC},
	{"Electronics", DomainElectronics},
	{"Appliances", DomainAppliances},
	{"Home & Kitchen", DomainHomeKitchen},
	{"Health & Wellness", DomainHealth},
}

// ResolveDomain returns the protocol code for the first recognised name.
// Unknown names fall back to Grocery; this is a test-data generator and
// leniency is intentional, but the fallback is logged so typos stay visible.
func ResolveDomain(names []string) string {
	for _, name := range names {
		for _, entry := range domainTable {
			if strings.EqualFold(strings.TrimSpace(name), entry.Name) {
				return entry.Code
			}
		}
	}
	if len(names) > 0 {
		log.Warn().Strs("domains", names).Msg("unknown domain name, defaulting to Grocery")
	}
	return DomainGrocery
}

// DomainName returns the human-readable name for a protocol code.
func DomainName(code string) string {
	for _, entry := range domainTable {
		if entry.Code == code {
			return entry.Name
		}
	}
	return "Grocery"
}

// domainCategorySets lists the subcategories considered relevant per domain.
// Serviceability tags are only emitted for categories in the active set.
var domainCategorySets = map[string][]string{
	DomainGrocery: {
		"Fruits and Vegetables", "Masala & Seasoning", "Oil & Ghee",
		"Foodgrains", "Eggs, Meat & Fish", "Dairy and Cheese",
		"Snacks, Dry Fruits, Nuts", "Beverages", "Cleaning & Household",
	},
	DomainFnB: {
		"F&B",
	},
	DomainFashion: {
		"Fashion", "Men's Fashion", "Women's Fashion", "Kids' Fashion",
		"Footwear", "Fashion Accessories",
	},
	DomainBPC: {
		"Beauty & Personal Care", "Skin Care", "Hair Care", "Fragrance",
		"Make Up", "Bath & Body",
	},
	DomainElectronics: {
		"Electronics", "Mobile Phones", "Audio", "Computers & Peripherals",
		"Cameras", "Wearables",
	},
	DomainAppliances: {
		"Appliances", "Kitchen Appliances", "Home Appliances",
		"Air Conditioning", "Refrigerators",
	},
	DomainHomeKitchen: {
		"Home & Kitchen", "Cookware", "Serveware", "Furnishing",
		"Home Decor", "Storage & Organisation",
	},
	DomainHealth: {
		"Health & Wellness", "Pharma", "Nutrition", "Fitness",
		"Medical Devices",
	},
}

func domainCategories(code string) []string {
	return domainCategorySets[code]
}

// categoryRelevant reports whether a candidate category belongs to the
// domain's category set. An empty set disables filtering entirely.
func categoryRelevant(candidate string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, c := range set {
		if c == candidate || strings.EqualFold(c, candidate) {
			return true
		}
	}
	return false
}
