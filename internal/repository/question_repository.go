package repository

import (
	"question_flow_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// FindAllWithOptions returns every question with its options attached.
// Options are never nil so the aggregate always marshals as an array.
func (r *QuestionRepository) FindAllWithOptions() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.id asc")
		}).
		Order("questions.id asc").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	for i := range questions {
		if questions[i].Options == nil {
			questions[i].Options = []model.QuestionOption{}
		}
	}
	return questions, nil
}

// CreateQuestion inserts the question row only; options are inserted
// separately so the row exists before any child references it.
func (r *QuestionRepository) CreateQuestion(q *model.Question) error {
	return r.DB.Omit("Options").Create(q).Error
}

func (r *QuestionRepository) CreateOptions(opts []model.QuestionOption) error {
	if len(opts) == 0 {
		return nil
	}
	return r.DB.Create(&opts).Error
}

// ReplaceQuestion overwrites every scalar column by id. Omitted optional
// fields collapse to their zero values, full-replace semantics.
func (r *QuestionRepository) ReplaceQuestion(q *model.Question) error {
	return r.DB.Model(&model.Question{}).
		Where("id = ?", q.ID).
		Select("field", "text", "subtext", "type", "hint", "validation_key", "input_config", "next_question_id").
		Updates(q).Error
}

// UpsertOption inserts the option or, when its id already exists, updates
// label/next_question_id/price_modifier in the same statement. Generated
// ids are written back into opt.
func (r *QuestionRepository) UpsertOption(opt *model.QuestionOption) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "next_question_id", "price_modifier"}),
	}).Create(opt).Error
}

func (r *QuestionRepository) ExistingOptionIDs(questionID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.QuestionOption{}).
		Where("question_id = ?", questionID).
		Order("id asc").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *QuestionRepository) DeleteOptions(questionID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.
		Where("question_id = ? AND id IN ?", questionID, ids).
		Delete(&model.QuestionOption{}).Error
}

// DeleteQuestion removes the question row; option rows go with it via the
// FK cascade declared on question_options.
func (r *QuestionRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}
