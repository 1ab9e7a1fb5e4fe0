package simulator

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
	"github.com/KirkDiggler/guildcraft/internal/orchestrators/gathering"
	"github.com/KirkDiggler/guildcraft/internal/services/hand"
	"github.com/KirkDiggler/guildcraft/internal/services/quest"
)

// playDay runs one day: take every posted quest, draft with the first
// gathering card in hand, deliver what can be delivered. With no gathering
// card in hand the guild rests instead.
func (g *Game) playDay(ctx context.Context) error {
	if err := g.acceptQuests(ctx); err != nil {
		return err
	}
	if _, err := g.phase.EndPhase(ctx); err != nil {
		return err
	}

	drafted, err := g.gather(ctx)
	if err != nil {
		return err
	}
	if !drafted {
		_, err := g.phase.Rest(ctx)
		return err
	}

	// gathering, then alchemy
	for range 2 {
		if _, err := g.phase.EndPhase(ctx); err != nil {
			return err
		}
	}

	if err := g.deliver(ctx); err != nil {
		return err
	}

	result, err := g.phase.EndPhase(ctx)
	if err != nil || result != nil {
		return err
	}

	if _, err := g.hand.DrawHand(ctx); err != nil {
		return errors.Wrap(err, "failed to draw hand")
	}
	return nil
}

func (g *Game) acceptQuests(ctx context.Context) error {
	board, err := g.quests.ListQuests(ctx)
	if err != nil {
		return err
	}

	for _, q := range board.Quests {
		if q.Status != entities.QuestAvailable {
			continue
		}
		if _, err := g.quests.AcceptQuest(ctx, &quest.AcceptQuestInput{QuestID: q.ID}); err != nil {
			return errors.Wrapf(err, "failed to accept quest %s", q.ID)
		}
	}
	return nil
}

// gather reports whether a draft took place
func (g *Game) gather(ctx context.Context) (bool, error) {
	if g.phase.GetState().ActionPoints == 0 {
		return false, nil
	}

	instanceID, err := g.findGatheringCard(ctx)
	if err != nil || instanceID == "" {
		return false, err
	}

	played, err := g.hand.PlayCard(ctx, &hand.PlayCardInput{InstanceID: instanceID})
	if err != nil {
		return false, err
	}

	started, err := g.gathering.StartDraftGathering(ctx, &gathering.StartDraftGatheringInput{Card: played.Card})
	if err != nil {
		return false, err
	}

	wanted, err := g.wantedMaterials(ctx)
	if err != nil {
		return false, err
	}

	session := started.Session
	for !session.IsComplete {
		selected, err := g.gathering.SelectMaterial(ctx, &gathering.SelectMaterialInput{
			SessionID: session.SessionID,
			Index:     pickOption(session.CurrentOptions, wanted),
		})
		if err != nil {
			return false, err
		}
		session = selected.Session
	}

	ended, err := g.gathering.EndGathering(ctx, &gathering.EndGatheringInput{SessionID: session.SessionID})
	if err != nil {
		return false, err
	}
	if err := g.phase.ApplyGatheringCost(ctx, ended.Result.Cost); err != nil {
		return false, err
	}

	g.inventory = append(g.inventory, ended.Result.Materials...)
	g.drafts++

	slog.Debug("Draft finished",
		"game_id", g.id,
		"card_id", played.Card.GetID(),
		"materials", len(ended.Result.Materials),
		"ap_cost", ended.Result.Cost.ActionPointCost)

	return true, nil
}

func (g *Game) findGatheringCard(ctx context.Context) (string, error) {
	deck, err := g.hand.GetDeckState(ctx)
	if err != nil {
		return "", err
	}

	for _, inst := range deck.State.Hand {
		card, err := g.catalog.GetCard(inst.CardID)
		if err != nil {
			return "", err
		}
		if g.gathering.CanGather(card) {
			return inst.InstanceID, nil
		}
	}
	return "", nil
}

func (g *Game) wantedMaterials(ctx context.Context) (map[string]bool, error) {
	board, err := g.quests.ListQuests(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool)
	for _, q := range board.Quests {
		if q.Status == entities.QuestAccepted {
			wanted[q.MaterialID] = true
		}
	}
	return wanted, nil
}

// pickOption prefers the best option some accepted quest asks for and
// falls back to the first option
func pickOption(options []entities.MaterialOption, wanted map[string]bool) int {
	best := -1
	for i, opt := range options {
		if !wanted[opt.MaterialID] {
			continue
		}
		if best < 0 || opt.Quality > options[best].Quality {
			best = i
		}
	}
	return max(best, 0)
}

func (g *Game) deliver(ctx context.Context) error {
	board, err := g.quests.ListQuests(ctx)
	if err != nil {
		return err
	}

	for _, q := range board.Quests {
		if q.Status != entities.QuestAccepted {
			continue
		}

		materials := g.bestOf(q.MaterialID, q.RequiredCount)
		if materials == nil {
			continue
		}

		out, err := g.quests.DeliverQuest(ctx, &quest.DeliverQuestInput{QuestID: q.ID, Materials: materials})
		if errors.HasReason(err, errors.ReasonQuestRequirementsUnmet) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "failed to deliver quest %s", q.ID)
		}

		g.removeFromInventory(materials)
		g.delivered++

		if err := g.phase.AddGold(ctx, out.RewardGold); err != nil {
			return err
		}
		if err := g.phase.AddPromotionPoints(ctx, out.PromotionPoints); err != nil {
			return err
		}
	}
	return nil
}

// bestOf returns the count highest-quality instances of a material, or nil
// when the inventory holds fewer
func (g *Game) bestOf(materialID string, count int) []entities.MaterialInstance {
	var matching []entities.MaterialInstance
	for _, inst := range g.inventory {
		if inst.MaterialID == materialID {
			matching = append(matching, inst)
		}
	}
	if len(matching) < count {
		return nil
	}

	slices.SortStableFunc(matching, func(a, b entities.MaterialInstance) int {
		return int(b.Quality) - int(a.Quality)
	})
	return matching[:count]
}

func (g *Game) removeFromInventory(used []entities.MaterialInstance) {
	spent := make(map[string]bool, len(used))
	for _, inst := range used {
		spent[inst.InstanceID] = true
	}
	g.inventory = slices.DeleteFunc(g.inventory, func(inst entities.MaterialInstance) bool {
		return spent[inst.InstanceID]
	})
}
