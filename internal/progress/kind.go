package progress

import "fmt"

// QuizKind identifies one of the four arithmetic operations a session
// practices.
type QuizKind string

const (
	KindAddition       QuizKind = "addition"
	KindSubtraction    QuizKind = "subtraction"
	KindMultiplication QuizKind = "multiplication"
	KindDivision       QuizKind = "division"
)

// Kinds returns all quiz kinds in menu order.
func Kinds() []QuizKind {
	return []QuizKind{KindAddition, KindSubtraction, KindMultiplication, KindDivision}
}

// ParseKind maps a user-supplied string to a QuizKind.
func ParseKind(s string) (QuizKind, error) {
	switch QuizKind(s) {
	case KindAddition, KindSubtraction, KindMultiplication, KindDivision:
		return QuizKind(s), nil
	}
	return "", fmt.Errorf("unknown quiz kind %q (want addition, subtraction, multiplication, or division)", s)
}

// DisplayName returns the user-facing name of the kind.
func (k QuizKind) DisplayName() string {
	switch k {
	case KindAddition:
		return "Addition"
	case KindSubtraction:
		return "Subtraction"
	case KindMultiplication:
		return "Multiplication"
	case KindDivision:
		return "Division"
	}
	return string(k)
}

// Symbol returns the operator symbol shown in question text.
func (k QuizKind) Symbol() string {
	switch k {
	case KindAddition:
		return "+"
	case KindSubtraction:
		return "−"
	case KindMultiplication:
		return "×"
	case KindDivision:
		return "÷"
	}
	return "?"
}
