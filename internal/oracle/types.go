// internal/oracle/types.go
//
// Outcome is the closed set of results of comparing a guess to a secret.

package oracle

// Outcome represents the evaluation of a single guess.
// Possible values:
//   - "low":     guess is below the secret (the secret is larger).
//   - "high":    guess is above the secret (the secret is smaller).
//   - "correct": guess equals the secret.
type Outcome string

const (
	OutcomeLow     Outcome = "low"
	OutcomeHigh    Outcome = "high"
	OutcomeCorrect Outcome = "correct"
)
