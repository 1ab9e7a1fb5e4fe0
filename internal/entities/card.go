package entities

// CardType discriminates the card variants
type CardType string

// Card variants
const (
	CardTypeGathering   CardType = "GATHERING"
	CardTypeRecipe      CardType = "RECIPE"
	CardTypeEnhancement CardType = "ENHANCEMENT"
)

// Card is the closed set of card master records. The unexported marker keeps
// the set closed to this package; dispatch with a type switch over
// *GatheringCard, *RecipeCard and *EnhancementCard.
type Card interface {
	GetID() string
	GetName() string
	GetType() CardType
	isCard()
}

// GatheringCard starts a draft session over a fixed material pool
type GatheringCard struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	BaseCost          int      `json:"base_cost"`
	PresentationCount int      `json:"presentation_count"`
	MaterialPool      []string `json:"material_pool"`
}

// RecipeIngredient is one line of a recipe
type RecipeIngredient struct {
	MaterialID string `json:"material_id"`
	Quantity   int    `json:"quantity"`
}

// RecipeCard crafts an item during the alchemy phase
type RecipeCard struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	BaseCost     int                `json:"base_cost"`
	OutputItemID string             `json:"output_item_id"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
}

// EffectType is the closed set of enhancement effects
type EffectType string

// Enhancement effects
const (
	EffectIncreasePresentation EffectType = "INCREASE_PRESENTATION"
	EffectReduceCost           EffectType = "REDUCE_COST"
	EffectQualityUp            EffectType = "QUALITY_UP"
)

// EnhancementEffect is a structured effect carried by an enhancement card
type EnhancementEffect struct {
	Type  EffectType `json:"type"`
	Value int        `json:"value"`
}

// EnhancementCard modifies another action, such as a gathering draft
type EnhancementCard struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	BaseCost int                 `json:"base_cost"`
	Effects  []EnhancementEffect `json:"effects,omitempty"`
}

func (c *GatheringCard) GetID() string       { return c.ID }
func (c *GatheringCard) GetName() string     { return c.Name }
func (c *GatheringCard) GetType() CardType   { return CardTypeGathering }
func (c *GatheringCard) isCard()             {}
func (c *RecipeCard) GetID() string          { return c.ID }
func (c *RecipeCard) GetName() string        { return c.Name }
func (c *RecipeCard) GetType() CardType      { return CardTypeRecipe }
func (c *RecipeCard) isCard()                {}
func (c *EnhancementCard) GetID() string     { return c.ID }
func (c *EnhancementCard) GetName() string   { return c.Name }
func (c *EnhancementCard) GetType() CardType { return CardTypeEnhancement }
func (c *EnhancementCard) isCard()           {}

var (
	_ Card = (*GatheringCard)(nil)
	_ Card = (*RecipeCard)(nil)
	_ Card = (*EnhancementCard)(nil)
)

// CardInstance is a physical copy of a card in a deck, hand or discard pile.
// Two copies of the same master card have different instance IDs.
type CardInstance struct {
	InstanceID string `json:"instance_id"`
	CardID     string `json:"card_id"`
}

// DeckState holds the three piles. Every card instance is in exactly one pile.
// The top of Deck is its last element.
type DeckState struct {
	Hand    []CardInstance `json:"hand"`
	Deck    []CardInstance `json:"deck"`
	Discard []CardInstance `json:"discard"`
}
