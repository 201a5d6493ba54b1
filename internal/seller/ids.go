package seller

import (
	"fmt"
	"regexp"
	"strings"
)

// categoryIDPattern is the protocol constraint on generated category IDs:
// at most 12 alphanumeric characters.
var categoryIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,12}$`)

// idGen hands out the sequential and random IDs used while assembling one
// catalog. One instance per generation call; never shared.
type idGen struct {
	item    int
	menuCat int
	group   int
	rand    func() string
}

func newIDGen(rand func() string) *idGen {
	return &idGen{rand: rand}
}

// NextItemID returns I1, I2, ... across the whole item list, variants and
// customizations included.
func (g *idGen) NextItemID() string {
	g.item++
	return fmt.Sprintf("I%d", g.item)
}

// NextMenuCategoryID returns CM1, CM2, ... for custom_menu categories.
func (g *idGen) NextMenuCategoryID() string {
	g.menuCat++
	return fmt.Sprintf("CM%d", g.menuCat)
}

// NextCustomGroupID returns CG1, CG2, ... for custom_group categories.
func (g *idGen) NextCustomGroupID() string {
	g.group++
	return fmt.Sprintf("CG%d", g.group)
}

// VariantGroupID generates a V-prefixed category ID of at most 12
// alphanumerics. Malformed candidates are regenerated, never passed through.
func (g *idGen) VariantGroupID() string {
	for {
		raw := strings.ReplaceAll(g.rand(), "-", "")
		if len(raw) > 9 {
			raw = raw[:9]
		}
		id := "V" + raw
		if categoryIDPattern.MatchString(id) {
			return id
		}
	}
}
