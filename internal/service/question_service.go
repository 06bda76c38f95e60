package service

import (
	"strings"

	"question_flow_backend/internal/model"
	"question_flow_backend/internal/util"
)

// QuestionStore is what the service needs from the relational store. The
// gorm repository implements it; tests substitute an in-memory fake.
type QuestionStore interface {
	FindAllWithOptions() ([]model.Question, error)
	CreateQuestion(q *model.Question) error
	CreateOptions(opts []model.QuestionOption) error
	ReplaceQuestion(q *model.Question) error
	UpsertOption(opt *model.QuestionOption) error
	ExistingOptionIDs(questionID uint) ([]uint, error)
	DeleteOptions(questionID uint, ids []uint) error
	DeleteQuestion(id uint) error
}

type QuestionService struct {
	Store QuestionStore
}

func NewQuestionService(store QuestionStore) *QuestionService {
	return &QuestionService{Store: store}
}

func (s *QuestionService) List() ([]model.Question, error) {
	return s.Store.FindAllWithOptions()
}

// Create validates the aggregate, inserts the question row, then inserts
// its options tagged with the generated id. The returned question carries
// no option rows; callers re-fetch the list for a consistent view.
func (s *QuestionService) Create(q *model.Question) (*model.Question, error) {
	if err := validateOptionLabels(q.Options); err != nil {
		return nil, err
	}

	options := q.Options
	q.ID = 0
	q.Options = nil

	if err := s.Store.CreateQuestion(q); err != nil {
		return nil, err
	}

	for i := range options {
		options[i].QuestionID = q.ID
	}
	if err := s.Store.CreateOptions(options); err != nil {
		return nil, err
	}

	q.Options = []model.QuestionOption{}
	return q, nil
}

// Update replaces the question's scalar fields, upserts every submitted
// option, and deletes rows whose ids were not re-sent. An empty options
// array clears all existing options.
func (s *QuestionService) Update(q *model.Question) error {
	if q.ID == 0 {
		return util.ErrQuestionIDRequired
	}
	if err := validateOptionLabels(q.Options); err != nil {
		return err
	}

	existing, err := s.Store.ExistingOptionIDs(q.ID)
	if err != nil {
		return err
	}
	plan := BuildReconcilePlan(existing, q.Options)

	if err := s.Store.ReplaceQuestion(q); err != nil {
		return err
	}

	for i := range plan.Upserts {
		plan.Upserts[i].QuestionID = q.ID
		if err := s.Store.UpsertOption(&plan.Upserts[i]); err != nil {
			return err
		}
	}

	return s.Store.DeleteOptions(q.ID, plan.DeleteIDs)
}

func (s *QuestionService) Delete(id uint) error {
	return s.Store.DeleteQuestion(id)
}

// validateOptionLabels rejects the aggregate before any write when a label
// is blank after trimming.
func validateOptionLabels(opts []model.QuestionOption) error {
	for _, opt := range opts {
		if strings.TrimSpace(opt.Label) == "" {
			return util.ErrEmptyOptionLabel
		}
	}
	return nil
}
