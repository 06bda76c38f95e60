package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStepWireFormat(t *testing.T) {
	t.Run("null means not set", func(t *testing.T) {
		var n NextStep
		require.NoError(t, json.Unmarshal([]byte(`null`), &n))
		assert.True(t, n.IsUnset())

		out, err := json.Marshal(n)
		require.NoError(t, err)
		assert.Equal(t, `null`, string(out))
	})

	t.Run("-1 means flow complete, not question -1", func(t *testing.T) {
		var n NextStep
		require.NoError(t, json.Unmarshal([]byte(`-1`), &n))
		assert.True(t, n.IsComplete())
		_, ok := n.Target()
		assert.False(t, ok)

		out, err := json.Marshal(n)
		require.NoError(t, err)
		assert.Equal(t, `-1`, string(out))
	})

	t.Run("positive id points at a question", func(t *testing.T) {
		var n NextStep
		require.NoError(t, json.Unmarshal([]byte(`7`), &n))
		id, ok := n.Target()
		assert.True(t, ok)
		assert.Equal(t, uint(7), id)
	})

	t.Run("zero and other negatives are rejected", func(t *testing.T) {
		var n NextStep
		assert.Error(t, json.Unmarshal([]byte(`0`), &n))
		assert.Error(t, json.Unmarshal([]byte(`-2`), &n))
		assert.Error(t, json.Unmarshal([]byte(`"seven"`), &n))
	})
}

func TestNextStepColumnFormat(t *testing.T) {
	t.Run("unset stores NULL", func(t *testing.T) {
		v, err := NextStep{}.Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("complete stores the sentinel", func(t *testing.T) {
		v, err := CompleteStep().Value()
		require.NoError(t, err)
		assert.Equal(t, int64(-1), v)
	})

	t.Run("goto stores the id", func(t *testing.T) {
		v, err := GoToStep(12).Value()
		require.NoError(t, err)
		assert.Equal(t, int64(12), v)
	})

	t.Run("scan round-trips", func(t *testing.T) {
		var n NextStep
		require.NoError(t, n.Scan(nil))
		assert.True(t, n.IsUnset())

		require.NoError(t, n.Scan(int64(-1)))
		assert.True(t, n.IsComplete())

		require.NoError(t, n.Scan(int64(3)))
		id, ok := n.Target()
		assert.True(t, ok)
		assert.Equal(t, uint(3), id)

		// MySQL drivers may hand back raw bytes.
		require.NoError(t, n.Scan([]byte("5")))
		id, ok = n.Target()
		assert.True(t, ok)
		assert.Equal(t, uint(5), id)
	})
}

func TestQuestionAggregateJSON(t *testing.T) {
	raw := `{
		"field": "age",
		"text": "Your age?",
		"type": "number",
		"next_question_id": null,
		"options": []
	}`

	var q Question
	require.NoError(t, json.Unmarshal([]byte(raw), &q))
	assert.Equal(t, "age", q.Field)
	assert.Equal(t, QuestionTypeNumber, q.Type)
	assert.True(t, q.NextStep.IsUnset())
	assert.NotNil(t, q.Options)
	assert.Empty(t, q.Options)
}
