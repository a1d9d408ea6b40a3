package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/numberninja/internal/progress"
)

// SpecialAnswer is the answer value guaranteed to appear once per
// addition/subtraction session.
const SpecialAnswer = 67

// randInt returns a uniform value in [lo, hi] inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// nextOperands generates operands for the question at index. shownSpecial
// reports whether the special answer has already been produced this
// session; the returned flag is the updated value.
//
// The special answer is forced for addition/subtraction whenever it has not
// fired yet and remaining <= TotalQuestions-1, which first holds at
// index 1. It therefore fires exactly once per session, always on the
// second question.
func nextOperands(rng *rand.Rand, kind progress.QuizKind, index int, shownSpecial bool) (left, right int, shown bool) {
	remaining := TotalQuestions - index
	force := (kind == progress.KindAddition || kind == progress.KindSubtraction) &&
		!shownSpecial && remaining <= TotalQuestions-1

	switch kind {
	case progress.KindDivision:
		// Exact integer division only.
		divisor := randInt(rng, 1, 12)
		quotient := randInt(rng, 1, 12)
		return quotient * divisor, divisor, shownSpecial

	case progress.KindMultiplication:
		return randInt(rng, 1, 12), randInt(rng, 1, 12), shownSpecial

	case progress.KindSubtraction:
		if force {
			// left - right = SpecialAnswer
			b := randInt(rng, 1, 12)
			return b + SpecialAnswer, b, true
		}
		// Non-negative result: left >= right.
		a := randInt(rng, 1, 79)
		b := randInt(rng, 1, min(78, a))
		return max(a, b), min(a, b), shownSpecial

	case progress.KindAddition:
		if force {
			// left + right = SpecialAnswer
			a := randInt(rng, 1, SpecialAnswer-1)
			return a, SpecialAnswer - a, true
		}
		return randInt(rng, 1, 50), randInt(rng, 1, 50), shownSpecial
	}

	return randInt(rng, 1, 12), randInt(rng, 1, 12), shownSpecial
}
