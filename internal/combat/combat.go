// Package combat converts dice scores into damage and applies it to a
// combatant's shield and hit points.
package combat

// PointsPerDamage is how many score points make one point of damage
const PointsPerDamage = 10

// Result is the state of a target after damage was applied
type Result struct {
	HP     int
	Shield int
	// DamageDealt is the damage of the hit, including any overkill
	DamageDealt int
}

// DamageForScore converts a turn score into damage, rounding up.
// Scores of zero or less deal no damage.
func DamageForScore(score int) int {
	if score <= 0 {
		return 0
	}
	return (score + PointsPerDamage - 1) / PointsPerDamage
}

// ApplyDamage removes damage from shield first and the remainder from HP.
// Neither value goes below zero. Non-positive damage is a no-op.
func ApplyDamage(hp, shield, damage int) Result {
	if damage <= 0 {
		return Result{HP: hp, Shield: shield}
	}

	hp, shield = max(hp, 0), max(shield, 0)

	absorbed := min(shield, damage)

	return Result{
		HP:          max(hp-(damage-absorbed), 0),
		Shield:      shield - absorbed,
		DamageDealt: damage,
	}
}
