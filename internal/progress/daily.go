package progress

import "time"

// DailyProgress holds one day's practice results. Day is the local-midnight
// timestamp that identifies the record; at most one record exists per day.
type DailyProgress struct {
	Day time.Time `json:"day"`

	// Per-kind scores hold the most recent correct count recorded for that
	// kind on this day (overwritten, not accumulated).
	AdditionScore       int `json:"additionScore"`
	SubtractionScore    int `json:"subtractionScore"`
	MultiplicationScore int `json:"multiplicationScore"`
	DivisionScore       int `json:"divisionScore"`

	// TotalAttempted is the highest attempted count ever reported for this
	// day, across all kinds.
	TotalAttempted int `json:"totalAttempted"`

	// Completed is sticky: once true it never reverts.
	Completed bool `json:"completed"`
}

// Score returns the recorded score for the given kind.
func (p DailyProgress) Score(kind QuizKind) int {
	switch kind {
	case KindAddition:
		return p.AdditionScore
	case KindSubtraction:
		return p.SubtractionScore
	case KindMultiplication:
		return p.MultiplicationScore
	case KindDivision:
		return p.DivisionScore
	}
	return 0
}

// merge applies one session result to the record and returns the updated
// copy. Pure: no I/O, no access to the store.
func merge(p DailyProgress, kind QuizKind, correct, attempted int, markCompleted bool) DailyProgress {
	switch kind {
	case KindAddition:
		p.AdditionScore = correct
	case KindSubtraction:
		p.SubtractionScore = correct
	case KindMultiplication:
		p.MultiplicationScore = correct
	case KindDivision:
		p.DivisionScore = correct
	}
	if attempted > p.TotalAttempted {
		p.TotalAttempted = attempted
	}
	p.Completed = p.Completed || markCompleted
	return p
}
