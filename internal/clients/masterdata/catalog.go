package masterdata

import (
	_ "embed"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
)

//go:embed data/catalog.json
var defaultCatalog []byte

// Catalog is an in-memory Client. The zero value is empty and reports
// IsLoaded() == false until Load succeeds.
type Catalog struct {
	mu          sync.RWMutex
	loaded      bool
	cards       map[string]entities.Card
	materials   map[string]*entities.Material
	starterDeck []string
}

// Ensure Catalog implements Client
var _ Client = (*Catalog)(nil)

type catalogFile struct {
	Materials   []entities.Material `json:"materials"`
	Cards       []json.RawMessage   `json:"cards"`
	StarterDeck []string            `json:"starter_deck"`
}

type cardHeader struct {
	Type entities.CardType `json:"type"`
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		cards:     make(map[string]entities.Card),
		materials: make(map[string]*entities.Material),
	}
}

// LoadDefault creates a catalog from the embedded data set
func LoadDefault() (*Catalog, error) {
	c := NewCatalog()
	if err := c.LoadBytes(defaultCatalog); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile creates a catalog from a JSON file on disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path) // #nosec G304 -- operator supplied path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open master data %s", path)
	}
	defer func() { _ = f.Close() }()

	c := NewCatalog()
	if err := c.Load(f); err != nil {
		return nil, err
	}
	return c, nil
}

// Load replaces the catalog contents with the JSON read from r
func (c *Catalog) Load(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read master data")
	}
	return c.LoadBytes(raw)
}

// LoadBytes replaces the catalog contents with the given JSON document.
// On failure the previous contents are kept.
func (c *Catalog) LoadBytes(raw []byte) error {
	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode master data")
	}

	materials := make(map[string]*entities.Material, len(file.Materials))
	for i := range file.Materials {
		m := file.Materials[i]
		if m.ID == "" {
			return errors.InvalidArgumentf("material at index %d has no id", i)
		}
		if !m.BaseQuality.IsValid() {
			return errors.InvalidArgumentf("material %s has invalid base quality", m.ID)
		}
		materials[m.ID] = &m
	}

	cards := make(map[string]entities.Card, len(file.Cards))
	for i, rawCard := range file.Cards {
		card, err := decodeCard(rawCard)
		if err != nil {
			return errors.Wrapf(err, "failed to decode card at index %d", i)
		}
		if card.GetID() == "" {
			return errors.InvalidArgumentf("card at index %d has no id", i)
		}
		if gathering, ok := card.(*entities.GatheringCard); ok {
			for _, materialID := range gathering.MaterialPool {
				if _, exists := materials[materialID]; !exists {
					return errors.InvalidArgumentf("card %s references unknown material %s", gathering.ID, materialID)
				}
			}
		}
		cards[card.GetID()] = card
	}

	for _, cardID := range file.StarterDeck {
		if _, exists := cards[cardID]; !exists {
			return errors.InvalidArgumentf("starter deck references unknown card %s", cardID)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.materials = materials
	c.cards = cards
	c.starterDeck = file.StarterDeck
	c.loaded = true

	slog.Info("Master data loaded",
		"materials", len(materials),
		"cards", len(cards),
		"starter_deck_size", len(file.StarterDeck),
	)

	return nil
}

func decodeCard(raw json.RawMessage) (entities.Card, error) {
	var header cardHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid card header")
	}

	var card entities.Card
	switch header.Type {
	case entities.CardTypeGathering:
		card = &entities.GatheringCard{}
	case entities.CardTypeRecipe:
		card = &entities.RecipeCard{}
	case entities.CardTypeEnhancement:
		card = &entities.EnhancementCard{}
	default:
		return nil, errors.InvalidArgumentf("unknown card type %q", header.Type)
	}

	if err := json.Unmarshal(raw, card); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid card body")
	}
	return card, nil
}

// IsLoaded reports whether the catalog has been loaded
func (c *Catalog) IsLoaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// GetCard returns the card master record with the given ID
func (c *Catalog) GetCard(cardID string) (entities.Card, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	card, ok := c.cards[cardID]
	if !ok {
		return nil, errors.NotFoundf("card %s not found", cardID).
			WithReason(errors.ReasonCardNotFound).
			WithMeta("card_id", cardID)
	}
	return card, nil
}

// GetMaterial returns the material master record with the given ID
func (c *Catalog) GetMaterial(materialID string) (*entities.Material, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	material, ok := c.materials[materialID]
	if !ok {
		return nil, errors.NotFoundf("material %s not found", materialID).
			WithReason(errors.ReasonMaterialNotFound).
			WithMeta("material_id", materialID)
	}
	m := *material
	return &m, nil
}

// ListCards returns all cards ordered by ID
func (c *Catalog) ListCards() []entities.Card {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entities.Card, 0, len(c.cards))
	for _, card := range c.cards {
		out = append(out, card)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GetID() < out[j].GetID()
	})
	return out
}

// StarterDeck returns the card IDs a new game starts with
func (c *Catalog) StarterDeck() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.starterDeck))
	copy(out, c.starterDeck)
	return out
}

// ListMaterialIDs returns all material IDs in ascending order
func (c *Catalog) ListMaterialIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.materials))
	for id := range c.materials {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
