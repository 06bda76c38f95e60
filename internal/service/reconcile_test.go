package service

import (
	"testing"

	"question_flow_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func opt(id uint, label string) model.QuestionOption {
	return model.QuestionOption{ID: id, Label: label}
}

func TestBuildReconcilePlan(t *testing.T) {
	tests := []struct {
		name        string
		existing    []uint
		incoming    []model.QuestionOption
		wantUpserts int
		wantDeletes []uint
	}{
		{
			name:        "all new options on empty question",
			existing:    nil,
			incoming:    []model.QuestionOption{opt(0, "A"), opt(0, "B")},
			wantUpserts: 2,
			wantDeletes: nil,
		},
		{
			name:        "subset of ids resent deletes the rest",
			existing:    []uint{1, 2, 3},
			incoming:    []model.QuestionOption{opt(2, "B2")},
			wantUpserts: 1,
			wantDeletes: []uint{1, 3},
		},
		{
			name:        "mix of kept and new",
			existing:    []uint{1, 2},
			incoming:    []model.QuestionOption{opt(1, "A"), opt(0, "C")},
			wantUpserts: 2,
			wantDeletes: []uint{2},
		},
		{
			name:        "empty incoming clears everything",
			existing:    []uint{4, 5, 6},
			incoming:    nil,
			wantUpserts: 0,
			wantDeletes: []uint{4, 5, 6},
		},
		{
			name:        "identical resubmission deletes nothing",
			existing:    []uint{1, 2},
			incoming:    []model.QuestionOption{opt(1, "A"), opt(2, "B")},
			wantUpserts: 2,
			wantDeletes: nil,
		},
		{
			name:        "nothing existing and nothing incoming",
			existing:    nil,
			incoming:    nil,
			wantUpserts: 0,
			wantDeletes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildReconcilePlan(tt.existing, tt.incoming)
			assert.Len(t, plan.Upserts, tt.wantUpserts)
			assert.Equal(t, tt.wantDeletes, plan.DeleteIDs)
		})
	}
}

func TestBuildReconcilePlanPreservesSubmissionOrder(t *testing.T) {
	incoming := []model.QuestionOption{opt(3, "C"), opt(0, "new"), opt(1, "A")}
	plan := BuildReconcilePlan([]uint{1, 3}, incoming)

	assert.Equal(t, "C", plan.Upserts[0].Label)
	assert.Equal(t, "new", plan.Upserts[1].Label)
	assert.Equal(t, "A", plan.Upserts[2].Label)
}

func TestBuildReconcilePlanDoesNotMutateInputs(t *testing.T) {
	existing := []uint{1, 2}
	incoming := []model.QuestionOption{opt(1, "A")}

	plan := BuildReconcilePlan(existing, incoming)
	plan.Upserts[0].Label = "changed"

	assert.Equal(t, "A", incoming[0].Label)
	assert.Equal(t, []uint{1, 2}, existing)
}
