package service

import "question_flow_backend/internal/model"

// ReconcilePlan is the work needed to make a question's persisted option
// rows match an incoming option list exactly.
type ReconcilePlan struct {
	// Upserts holds the incoming options in submission order. Options with
	// an id update their row; options without one become inserts.
	Upserts []model.QuestionOption
	// DeleteIDs are existing rows not re-sent, to be removed. An empty
	// incoming list marks every existing row for deletion: submitting zero
	// options clears the question.
	DeleteIDs []uint
}

// BuildReconcilePlan diffs the existing option ids of a question against an
// incoming option list. Pure; the caller applies the plan against the store.
func BuildReconcilePlan(existing []uint, incoming []model.QuestionOption) ReconcilePlan {
	kept := make(map[uint]bool, len(incoming))
	for _, opt := range incoming {
		if opt.ID != 0 {
			kept[opt.ID] = true
		}
	}

	plan := ReconcilePlan{
		Upserts: make([]model.QuestionOption, len(incoming)),
	}
	copy(plan.Upserts, incoming)

	for _, id := range existing {
		if !kept[id] {
			plan.DeleteIDs = append(plan.DeleteIDs, id)
		}
	}
	return plan
}
