// game/access.go - Phase access rule
package game

import "quizmaster/models"

// CanAccess decides whether a user may enter a phase. Both gates are
// conjunctive: the phase must be globally unlocked AND individually
// granted to the user. The master bypasses the individual gate only;
// a globally locked phase stays closed even for the master.
func CanAccess(user *models.User, phase models.PhaseStatus) bool {
	return user.IndividuallyUnlocked(phase.PhaseNumber) && phase.IsUnlocked
}
