package seller

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
)

// Config carries the static network identity stamped into every generated
// context block.
type Config struct {
	BppID       string
	BppURI      string
	BapID       string
	BapURI      string
	Country     string
	City        string
	CoreVersion string
}

func (c Config) withDefaults() Config {
	c.BppID = orDefault(c.BppID, "workbench-bpp.ondc.org")
	c.BppURI = orDefault(c.BppURI, "https://workbench-bpp.ondc.org/bpp")
	c.BapID = orDefault(c.BapID, "workbench-bap.ondc.org")
	c.BapURI = orDefault(c.BapURI, "https://workbench-bap.ondc.org/bap")
	c.Country = orDefault(c.Country, "IND")
	c.City = orDefault(c.City, "std:080")
	c.CoreVersion = orDefault(c.CoreVersion, "1.2.0")
	return c
}

// Generator synthesizes on_search payloads from seller-onboarding input.
// Every Generate call is a pure function of its input plus the injected
// clock and ID source; no state survives across calls.
type Generator struct {
	cfg   Config
	now   func() time.Time
	newID func() string
}

type Option func(*Generator)

// WithClock overrides the timestamp source, for reproducible output.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithIDSource overrides the random ID source, for reproducible output.
func WithIDSource(newID func() string) Option {
	return func(g *Generator) { g.newID = newID }
}

func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:   cfg.withDefaults(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// catalogStrategy is the domain dispatch for category/item synthesis:
// generic retail or the F&B menu pipeline. Strategies are stateless values.
type catalogStrategy interface {
	Build(data *model.SellerData, code string, env *buildEnv) ([]model.Category, []model.Item)
}

type retailStrategy struct{}

func (retailStrategy) Build(data *model.SellerData, code string, env *buildEnv) ([]model.Category, []model.Item) {
	groups := buildVariantGroups(data.Items, env.ids)
	items := buildRetailItems(data, code, env, groups)
	return groups.Categories, items
}

func strategyFor(code string, data *model.SellerData) catalogStrategy {
	if code == DomainFnB && len(data.MenuItems) > 0 {
		return fnbStrategy{}
	}
	return retailStrategy{}
}

// Generate builds one payload for the input's first (or defaulted) domain.
func (g *Generator) Generate(data *model.SellerData) (*model.OnSearchEnvelope, error) {
	if data == nil {
		return nil, errors.New("seller data is required")
	}
	return g.buildPayload(data, ResolveDomain(data.Domain.Names)), nil
}

// GenerateAll builds one payload per requested domain name, keyed by the
// name as given. One entry under the grocery default when no domains are
// named.
func (g *Generator) GenerateAll(data *model.SellerData) (map[string]*model.OnSearchEnvelope, error) {
	if data == nil {
		return nil, errors.New("seller data is required")
	}
	names := data.Domain.Names
	if len(names) == 0 {
		names = []string{"Grocery"}
	}
	payloads := make(map[string]*model.OnSearchEnvelope, len(names))
	for _, name := range names {
		payloads[name] = g.buildPayload(data, ResolveDomain([]string{name}))
	}
	return payloads, nil
}

func (g *Generator) buildPayload(data *model.SellerData, code string) *model.OnSearchEnvelope {
	env := &buildEnv{
		stores:    data.Stores,
		locations: buildLocations(data.Stores),
		ids:       newIDGen(g.newID),
	}
	var fulfillments []model.Fulfillment
	fulfillments, env.fulfillmentByType = buildFulfillments(data.Stores)

	categories, items := strategyFor(code, data).Build(data, code, env)

	provider := model.Provider{
		ID: "P1",
		Descriptor: model.ProviderDescriptor{
			Name:      data.ProviderName,
			Symbol:    data.Symbol,
			ShortDesc: orDefault(data.ShortDesc, data.ProviderName),
			LongDesc:  orDefault(data.LongDesc, data.ProviderName),
			Images:    data.Images,
		},
		Locations:    env.locations,
		Fulfillments: fulfillments,
		Categories:   categories,
		Items:        items,
		Tags:         buildProviderTags(data.Stores, code, env.locations),
	}

	transactionID := data.TransactionID
	if transactionID == "" {
		transactionID = g.newID()
	}

	return &model.OnSearchEnvelope{
		Context: model.OnSearchContext{
			Domain:        code,
			Country:       g.cfg.Country,
			City:          g.cfg.City,
			Action:        "on_search",
			CoreVersion:   g.cfg.CoreVersion,
			BapID:         g.cfg.BapID,
			BapURI:        g.cfg.BapURI,
			BppID:         g.cfg.BppID,
			BppURI:        g.cfg.BppURI,
			TransactionID: transactionID,
			MessageID:     g.newID(),
			Timestamp:     g.now().UTC().Format(time.RFC3339),
		},
		Message: model.OnSearchMessage{
			Catalog: model.Catalog{
				BPPDescriptor: model.BPPDescriptor{
					Name:      data.ProviderName,
					Symbol:    data.Symbol,
					ShortDesc: orDefault(data.ShortDesc, data.ProviderName),
					LongDesc:  orDefault(data.LongDesc, data.ProviderName),
					Images:    data.Images,
				},
				BPPFulfillments: fulfillments,
				BPPProviders:    []model.Provider{provider},
			},
		},
	}
}
