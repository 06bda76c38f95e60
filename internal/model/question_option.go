package model

// QuestionOption is one selectable answer of a radio/dropdown question.
// An option submitted without an id is a new row; ids are assigned by the
// store and must be resent on later updates to keep the row alive.
// swagger:model QuestionOption
type QuestionOption struct {
	ID            uint     `gorm:"primaryKey;autoIncrement" json:"id,omitempty"`
	QuestionID    uint     `gorm:"index;not null" json:"question_id,omitempty"`
	Label         string   `gorm:"size:255;not null" json:"label"`
	NextStep      NextStep `gorm:"column:next_question_id;type:bigint" json:"next_question_id"`
	PriceModifier float64  `gorm:"not null;default:0" json:"price_modifier"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}
