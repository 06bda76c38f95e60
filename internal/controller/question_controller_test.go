package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"question_flow_backend/internal/model"
	"question_flow_backend/internal/service"
	"question_flow_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubStore backs the handlers with a tiny in-memory store; setting err
// makes every call fail the way a dead database would.
type stubStore struct {
	questions []model.Question
	options   map[uint][]model.QuestionOption
	nextID    uint
	err       error
}

func newStubStore() *stubStore {
	return &stubStore{options: make(map[uint][]model.QuestionOption)}
}

func (s *stubStore) FindAllWithOptions() ([]model.Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]model.Question, len(s.questions))
	copy(out, s.questions)
	for i := range out {
		opts := s.options[out[i].ID]
		if opts == nil {
			opts = []model.QuestionOption{}
		}
		out[i].Options = opts
	}
	return out, nil
}

func (s *stubStore) CreateQuestion(q *model.Question) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	q.ID = s.nextID
	s.questions = append(s.questions, *q)
	return nil
}

func (s *stubStore) CreateOptions(opts []model.QuestionOption) error {
	if s.err != nil {
		return s.err
	}
	for _, opt := range opts {
		s.options[opt.QuestionID] = append(s.options[opt.QuestionID], opt)
	}
	return nil
}

func (s *stubStore) ReplaceQuestion(q *model.Question) error { return s.err }

func (s *stubStore) UpsertOption(opt *model.QuestionOption) error { return s.err }

func (s *stubStore) ExistingOptionIDs(questionID uint) ([]uint, error) {
	if s.err != nil {
		return nil, s.err
	}
	var ids []uint
	for _, opt := range s.options[questionID] {
		ids = append(ids, opt.ID)
	}
	return ids, nil
}

func (s *stubStore) DeleteOptions(questionID uint, ids []uint) error { return s.err }

func (s *stubStore) DeleteQuestion(id uint) error { return s.err }

func setupRouter(store service.QuestionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	c := NewQuestionController(service.NewQuestionService(store))

	router := gin.New()
	api := router.Group("/api")
	api.GET("/questions", c.List)
	api.POST("/questions", c.Create)
	api.PUT("/questions", c.Update)
	api.DELETE("/questions/:id", c.Delete)
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListReturnsBareArray(t *testing.T) {
	store := newStubStore()
	store.questions = []model.Question{
		{ID: 1, Field: "age", Text: "Your age?", Type: model.QuestionTypeNumber},
	}
	router := setupRouter(store)

	w := do(router, http.MethodGet, "/api/questions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "age", got[0]["field"])

	// Options must be an array even when the question has none.
	opts, ok := got[0]["options"].([]interface{})
	assert.True(t, ok)
	assert.Empty(t, opts)
}

func TestListStoreFailureIs500WithErrorBody(t *testing.T) {
	store := newStubStore()
	store.err = errors.New("connection refused")
	router := setupRouter(store)

	w := do(router, http.MethodGet, "/api/questions", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"connection refused"}`, w.Body.String())
}

func TestCreateReturns201WithInsertedRow(t *testing.T) {
	router := setupRouter(newStubStore())

	w := do(router, http.MethodPost, "/api/questions",
		`{"field":"age","text":"Your age?","type":"number","next_question_id":null}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, float64(1), got["id"])
	assert.Equal(t, "age", got["field"])
}

func TestCreateBlankOptionLabelIs400(t *testing.T) {
	router := setupRouter(newStubStore())

	w := do(router, http.MethodPost, "/api/questions",
		`{"field":"color","text":"Pick","type":"radio","options":[{"label":"  "}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Option labels cannot be empty"}`, w.Body.String())
}

func TestUpdateWithoutIDIs400(t *testing.T) {
	router := setupRouter(newStubStore())

	w := do(router, http.MethodPut, "/api/questions",
		`{"field":"age","text":"Your age?","type":"number"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"question id is required"}`, w.Body.String())
}

func TestUpdateAcknowledges(t *testing.T) {
	store := newStubStore()
	store.questions = []model.Question{
		{ID: 1, Field: "age", Text: "Your age?", Type: model.QuestionTypeNumber},
	}
	store.nextID = 1
	router := setupRouter(store)

	w := do(router, http.MethodPut, "/api/questions",
		`{"id":1,"field":"age","text":"How old are you?","type":"number"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestDeleteAcknowledges(t *testing.T) {
	router := setupRouter(newStubStore())

	w := do(router, http.MethodDelete, "/api/questions/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestDeleteRejectsMalformedID(t *testing.T) {
	router := setupRouter(newStubStore())

	w := do(router, http.MethodDelete, "/api/questions/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMalformedNextStepIs400(t *testing.T) {
	router := setupRouter(newStubStore())

	w := do(router, http.MethodPost, "/api/questions",
		`{"field":"age","text":"Your age?","type":"number","next_question_id":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
