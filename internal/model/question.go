package model

import (
	"encoding/json"
	"time"
)

type QuestionType string

const (
	QuestionTypeText     QuestionType = "text"
	QuestionTypeNumber   QuestionType = "number"
	QuestionTypeRadio    QuestionType = "radio"
	QuestionTypeDropdown QuestionType = "dropdown"
)

// Question is one node of the wizard flow graph. Non-option types carry
// their own next step; radio/dropdown questions branch per option.
// swagger:model Question
type Question struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Field         string          `gorm:"size:100;uniqueIndex;not null" json:"field"` // business key, e.g. "age"
	Text          string          `gorm:"size:500;not null" json:"text"`
	Subtext       string          `gorm:"size:500;not null;default:''" json:"subtext"`
	Type          QuestionType    `gorm:"size:20;not null" json:"type"` // text, number, radio, dropdown
	Hint          string          `gorm:"size:500;not null;default:''" json:"hint"`
	ValidationKey *string         `gorm:"size:100" json:"validation_key"`
	InputConfig   json.RawMessage `gorm:"type:json" json:"input"` // arbitrary widget config
	NextStep      NextStep        `gorm:"column:next_question_id;type:bigint" json:"next_question_id"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`

	Options []QuestionOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options"`
}

func (Question) TableName() string {
	return "questions"
}
