package game

import (
	"testing"

	"quizmaster/models"
)

func TestCanAccessRequiresBothGates(t *testing.T) {
	user := &models.User{ID: "u1", Role: models.RoleUser, UnlockedPhases: []int{2}}

	cases := []struct {
		name           string
		phase          models.PhaseStatus
		expectedAccess bool
	}{
		{"both gates open", models.PhaseStatus{PhaseNumber: 2, IsUnlocked: true}, true},
		{"global gate closed", models.PhaseStatus{PhaseNumber: 2, IsUnlocked: false}, false},
		{"individual gate closed", models.PhaseStatus{PhaseNumber: 3, IsUnlocked: true}, false},
		{"both gates closed", models.PhaseStatus{PhaseNumber: 3, IsUnlocked: false}, false},
	}

	for _, tc := range cases {
		if got := CanAccess(user, tc.phase); got != tc.expectedAccess {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.expectedAccess, got)
		}
	}
}

func TestCanAccessMasterBypassesIndividualGateOnly(t *testing.T) {
	master := &models.User{ID: "m", Role: models.RoleMaster, UnlockedPhases: []int{}}

	open := models.PhaseStatus{PhaseNumber: 4, IsUnlocked: true}
	if !CanAccess(master, open) {
		t.Fatalf("master with empty unlock set should access a globally unlocked phase")
	}

	closed := models.PhaseStatus{PhaseNumber: 4, IsUnlocked: false}
	if CanAccess(master, closed) {
		t.Fatalf("master must not bypass the global gate")
	}
}

func TestCanAccessTogglingEitherGateFlipsResult(t *testing.T) {
	phase := models.PhaseStatus{PhaseNumber: 1, IsUnlocked: true}
	user := &models.User{ID: "u1", Role: models.RoleUser, UnlockedPhases: []int{1}}

	if !CanAccess(user, phase) {
		t.Fatalf("expected access with both gates open")
	}

	phase.IsUnlocked = false
	if CanAccess(user, phase) {
		t.Fatalf("closing the global gate should block access")
	}

	phase.IsUnlocked = true
	user.UnlockedPhases = []int{}
	if CanAccess(user, phase) {
		t.Fatalf("revoking the individual unlock should block access")
	}
}
