package v1alpha1

import (
	"github.com/samber/lo"

	casinov1alpha1 "github.com/KirkDiggler/rpg-casino/internal/api/casino/v1alpha1"
	"github.com/KirkDiggler/rpg-casino/internal/engine/diceboss"
	"github.com/KirkDiggler/rpg-casino/internal/entities"
)

func toInt32s(values []int) []int32 {
	return lo.Map(values, func(v int, _ int) int32 { return int32(v) })
}

func convertEncounter(e *entities.Encounter) *casinov1alpha1.Encounter {
	if e == nil {
		return nil
	}

	return &casinov1alpha1.Encounter{
		Id:       e.ID,
		PlayerId: e.PlayerID,
		Player:   convertCombatant(&e.Player),
		Boss:     convertCombatant(&e.Boss),
		Stats: &casinov1alpha1.CharacterStats{
			Attack:    int32(e.Stats.Attack),
			Defense:   int32(e.Stats.Defense),
			HitPoints: int32(e.Stats.HitPoints),
		},
		Pool:           convertPool(e.Engine),
		Status:         string(e.Status),
		Turn:           int32(e.Turn),
		LastPlayerTurn: convertTurn(e.LastPlayerTurn),
		LastBossTurn:   convertTurn(e.LastBossTurn),
	}
}

func convertCombatant(c *entities.Combatant) *casinov1alpha1.Combatant {
	return &casinov1alpha1.Combatant{
		Id:        c.ID,
		Name:      c.Name,
		Kind:      string(c.Kind),
		Hp:        int32(c.HP),
		MaxHp:     int32(c.MaxHP),
		Shield:    int32(c.Shield),
		MaxShield: int32(c.MaxShield),
	}
}

func convertPool(s diceboss.Snapshot) *casinov1alpha1.DicePool {
	return &casinov1alpha1.DicePool{
		Dice: lo.Map(s.Dice[:], func(d diceboss.Die, _ int) *casinov1alpha1.Die {
			return &casinov1alpha1.Die{
				Id:     int32(d.ID),
				Value:  int32(d.Value),
				Held:   d.Held,
				Banked: d.Banked,
			}
		}),
		Pot:            int32(s.Pot),
		IsPlayerTurn:   s.IsPlayerTurn,
		Phase:          string(s.Phase),
		SelectionScore: int32(s.SelectionScore),
	}
}

func convertTurn(t *entities.TurnSummary) *casinov1alpha1.TurnSummary {
	if t == nil {
		return nil
	}
	return &casinov1alpha1.TurnSummary{
		Score:  int32(t.Score),
		Busted: t.Busted,
		Damage: int32(t.Damage),
		Values: toInt32s(t.Values),
	}
}

func convertOutcome(o *diceboss.RollOutcome) *casinov1alpha1.RollOutcome {
	if o == nil {
		return nil
	}
	return &casinov1alpha1.RollOutcome{
		Values:      toInt32s(o.Values[:]),
		Rolled:      toInt32s(o.Rolled),
		BankedScore: int32(o.BankedScore),
		Pot:         int32(o.Pot),
		Busted:      o.Busted,
		HotHand:     o.HotHand,
		TurnEnded:   o.TurnEnded,
	}
}
