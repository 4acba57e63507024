package model

// ValidationResult is the outcome of a single validation check.
// Message is only set when Valid is false.
type ValidationResult struct {
	Valid   bool
	Message string
}

// Pass returns a successful result.
func Pass() ValidationResult {
	return ValidationResult{Valid: true}
}

// Fail returns a failed result carrying an explanation for the user.
func Fail(message string) ValidationResult {
	return ValidationResult{Valid: false, Message: message}
}

// Quote is the estimated shipping cost for a package.
type Quote struct {
	Package Package
	Cost    float64
}

// Outcome indicates how a quoting session ended.
type Outcome string

const (
	OutcomeQuoted   Outcome = "QUOTED"
	OutcomeTooHeavy Outcome = "TOO_HEAVY"
	OutcomeTooBig   Outcome = "TOO_BIG"
)
