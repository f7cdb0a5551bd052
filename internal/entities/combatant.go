// Package entities provides the core data structures of the casino encounters.
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// CombatantKind identifies which side of an encounter a combatant is on
type CombatantKind string

// Combatant kinds
const (
	KindPlayer CombatantKind = "player"
	KindBoss   CombatantKind = "boss"
)

// Dice boss defaults
const (
	DiceMasterID     = "dice_master"
	DiceMasterName   = "MISTRZ KOŚCI"
	DiceMasterHP     = 300
	DiceMasterShield = 0
)

var _ core.Entity = (*Combatant)(nil)

// Combatant is one side of a dice boss fight
type Combatant struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Kind      CombatantKind `json:"kind"`
	HP        int           `json:"hp"`
	MaxHP     int           `json:"max_hp"`
	Shield    int           `json:"shield"`
	MaxShield int           `json:"max_shield"`
}

// GetID returns the combatant ID
func (c *Combatant) GetID() string {
	return c.ID
}

// GetType returns the combatant kind
func (c *Combatant) GetType() string {
	return string(c.Kind)
}

// IsDefeated reports whether the combatant has no hit points left
func (c *Combatant) IsDefeated() bool {
	return c.HP <= 0
}

// CharacterStats are the player's rolled stats, each 4d6 drop lowest
type CharacterStats struct {
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	HitPoints int `json:"hit_points"`
}

// NewPlayer builds the player combatant from rolled stats. Hit points and
// shield scale with multiplier.
func NewPlayer(id, name string, stats CharacterStats, multiplier int) Combatant {
	return Combatant{
		ID:        id,
		Name:      name,
		Kind:      KindPlayer,
		HP:        stats.HitPoints * multiplier,
		MaxHP:     stats.HitPoints * multiplier,
		Shield:    stats.Defense * multiplier,
		MaxShield: stats.Defense * multiplier,
	}
}

// NewDiceMaster builds the dice boss with the given hit points
func NewDiceMaster(hp int) Combatant {
	return Combatant{
		ID:        DiceMasterID,
		Name:      DiceMasterName,
		Kind:      KindBoss,
		HP:        hp,
		MaxHP:     hp,
		Shield:    DiceMasterShield,
		MaxShield: DiceMasterShield,
	}
}
