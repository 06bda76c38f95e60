package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// completeSentinel is the reserved next_question_id meaning "flow complete".
// It is kept on the wire and in the column so the wizard runtime that walks
// the graph keeps working unchanged.
const completeSentinel = -1

type nextStepKind int

const (
	nextUnset nextStepKind = iota
	nextComplete
	nextGoTo
)

// NextStep is where the flow goes after a question or option is answered:
// not set yet, flow complete, or a specific question id.
type NextStep struct {
	kind nextStepKind
	id   uint
}

func GoToStep(id uint) NextStep {
	return NextStep{kind: nextGoTo, id: id}
}

func CompleteStep() NextStep {
	return NextStep{kind: nextComplete}
}

func (n NextStep) IsUnset() bool {
	return n.kind == nextUnset
}

func (n NextStep) IsComplete() bool {
	return n.kind == nextComplete
}

// Target returns the question id this step points at, if any.
func (n NextStep) Target() (uint, bool) {
	if n.kind != nextGoTo {
		return 0, false
	}
	return n.id, true
}

func (n NextStep) String() string {
	switch n.kind {
	case nextComplete:
		return "complete"
	case nextGoTo:
		return strconv.FormatUint(uint64(n.id), 10)
	default:
		return "unset"
	}
}

// MarshalJSON encodes to the wire format: null, -1, or a question id.
func (n NextStep) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case nextComplete:
		return json.Marshal(completeSentinel)
	case nextGoTo:
		return json.Marshal(n.id)
	default:
		return []byte("null"), nil
	}
}

func (n *NextStep) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NextStep{}
		return nil
	}

	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("next_question_id must be null, %d or a question id", completeSentinel)
	}

	switch {
	case v == completeSentinel:
		*n = CompleteStep()
	case v > 0:
		*n = GoToStep(uint(v))
	default:
		return fmt.Errorf("invalid next_question_id %d", v)
	}
	return nil
}

// Value stores the same encoding in the next_question_id column.
func (n NextStep) Value() (driver.Value, error) {
	switch n.kind {
	case nextComplete:
		return int64(completeSentinel), nil
	case nextGoTo:
		return int64(n.id), nil
	default:
		return nil, nil
	}
}

func (n *NextStep) Scan(src interface{}) error {
	if src == nil {
		*n = NextStep{}
		return nil
	}

	var v int64
	switch s := src.(type) {
	case int64:
		v = s
	case []byte:
		parsed, err := strconv.ParseInt(string(s), 10, 64)
		if err != nil {
			return fmt.Errorf("scan NextStep: %w", err)
		}
		v = parsed
	default:
		return fmt.Errorf("scan NextStep: unsupported type %T", src)
	}

	if v == completeSentinel {
		*n = CompleteStep()
	} else {
		*n = GoToStep(uint(v))
	}
	return nil
}
