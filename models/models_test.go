package models

import "testing"

func validQuestionDraft() QuestionDraft {
	return QuestionDraft{
		Text:         "Qual o procedimento correto?",
		Options:      []string{"A", "B", "C", "D"},
		CorrectIndex: 2,
		Phase:        1,
		Difficulty:   "Fácil",
	}
}

func TestQuestionDraftValidate(t *testing.T) {
	valid := validQuestionDraft()
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*QuestionDraft)
	}{
		{"empty text", func(d *QuestionDraft) { d.Text = "  " }},
		{"three options", func(d *QuestionDraft) { d.Options = d.Options[:3] }},
		{"five options", func(d *QuestionDraft) { d.Options = append(d.Options, "E") }},
		{"blank option", func(d *QuestionDraft) { d.Options[1] = " " }},
		{"duplicate options", func(d *QuestionDraft) { d.Options[3] = "A" }},
		{"negative index", func(d *QuestionDraft) { d.CorrectIndex = -1 }},
		{"index out of range", func(d *QuestionDraft) { d.CorrectIndex = 4 }},
		{"missing phase", func(d *QuestionDraft) { d.Phase = 0 }},
	}

	for _, tc := range cases {
		d := validQuestionDraft()
		tc.mutate(&d)
		if err := d.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestKnowledgeDraftValidate(t *testing.T) {
	d := KnowledgeDraft{Theme: "Operação Básica", Content: "Conferir o lacre.", Phase: 1}
	if err := d.Validate(); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}

	for _, bad := range []KnowledgeDraft{
		{Theme: "", Content: "x", Phase: 1},
		{Theme: "x", Content: " ", Phase: 1},
		{Theme: "x", Content: "y", Phase: 0},
	} {
		if err := bad.Validate(); err == nil {
			t.Fatalf("expected validation error for %+v", bad)
		}
	}
}

func TestIndividuallyUnlocked(t *testing.T) {
	user := User{Role: RoleUser, UnlockedPhases: []int{1, 3}}
	if !user.IndividuallyUnlocked(3) || user.IndividuallyUnlocked(2) {
		t.Fatalf("unlock check wrong for %v", user.UnlockedPhases)
	}

	master := User{Role: RoleMaster, UnlockedPhases: nil}
	if !master.IndividuallyUnlocked(4) {
		t.Fatalf("master must pass the individual gate for every phase")
	}
}
