// Package scoring prices dice claims for the dice boss encounter.
//
// StrictScore prices an exact, player-declared subset of dice. PossibleScore
// is a cheaper probe that only answers whether a roll offers any legal claim
// at all; a zero result is a bust. The two agree on the zero boundary: a
// multiset has PossibleScore > 0 exactly when some non-empty subset of it has
// StrictScore > 0.
package scoring

const (
	// FullStraightScore is paid for one of each face 1 through 6
	FullStraightScore = 1500
	// LowStraightScore is paid for exactly 1-2-3-4-5
	LowStraightScore = 500
	// HighStraightScore is paid for exactly 2-3-4-5-6
	HighStraightScore = 750

	// SingleOneScore is paid for each 1 outside a set
	SingleOneScore = 100
	// SingleFiveScore is paid for each 5 outside a set
	SingleFiveScore = 50

	// OnesSetBase is the triple value of 1s; other faces are face*100
	OnesSetBase = 1000
	// MinSetScore is the cheapest possible set, three 2s
	MinSetScore = 200

	minSetSize = 3
	runLength  = 5
)

// counts tallies faces; index 0 is unused and values outside 1-6 are dropped
func counts(values []int) [7]int {
	var c [7]int
	for _, v := range values {
		if v >= 1 && v <= 6 {
			c[v]++
		}
	}
	return c
}

func total(c [7]int) int {
	n := 0
	for face := 1; face <= 6; face++ {
		n += c[face]
	}
	return n
}

// SetScore returns the value of count dice showing face, or 0 below a triple.
// Each die past the third doubles the set: triple x1, four x2, five x4, six x8.
func SetScore(face, count int) int {
	if count < minSetSize {
		return 0
	}
	base := face * 100
	if face == 1 {
		base = OnesSetBase
	}
	return base << (count - minSetSize)
}

// StrictScore prices exactly the declared dice.
//
// Straights are checked first and consume the whole selection. Otherwise the
// score is the sum of every set of three or more plus leftover 1s and 5s.
// Faces that score nothing are ignored, so a claim mixing scorers and junk
// still pays for its scorers; a claim made only of junk returns 0, which
// callers treat as a rejected selection.
func StrictScore(values []int) int {
	c := counts(values)
	n := total(c)
	if n == 0 {
		return 0
	}

	if straight := straightScore(c, n); straight > 0 {
		return straight
	}

	score := 0
	for face := 1; face <= 6; face++ {
		score += SetScore(face, c[face])
	}

	if c[1] < minSetSize {
		score += c[1] * SingleOneScore
	}
	if c[5] < minSetSize {
		score += c[5] * SingleFiveScore
	}

	return score
}

func straightScore(c [7]int, n int) int {
	switch {
	case n == 6 && hasRun(c, 1, 6):
		return FullStraightScore
	case n == 5 && hasRun(c, 1, 5):
		return LowStraightScore
	case n == 5 && hasRun(c, 2, 6):
		return HighStraightScore
	}
	return 0
}

func hasRun(c [7]int, from, to int) bool {
	for face := from; face <= to; face++ {
		if c[face] == 0 {
			return false
		}
	}
	return true
}

// PossibleScore reports a lower bound on what the dice on the table can
// score, or 0 when nothing can be claimed (a bust).
func PossibleScore(values []int) int {
	c := counts(values)

	if c[1] > 0 || c[5] > 0 {
		return SingleFiveScore
	}

	for face := 1; face <= 6; face++ {
		if c[face] >= minSetSize {
			return MinSetScore
		}
	}

	streak := 0
	for face := 1; face <= 6; face++ {
		if c[face] > 0 {
			streak++
		} else {
			streak = 0
		}
		if streak >= runLength {
			return LowStraightScore
		}
	}

	return 0
}
