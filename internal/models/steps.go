// ABOUTME: Twelve-step study model for the steps screen
// ABOUTME: Each step carries a principle, scripture anchor, and reflection questions
package models

// RecoveryStep is one step of the twelve-step study track.
type RecoveryStep struct {
	Number      int
	Title       string
	Principle   string
	Scripture   string
	Description string
	Questions   []string
}
