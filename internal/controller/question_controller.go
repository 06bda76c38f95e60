package controller

import (
	"strconv"

	"question_flow_backend/internal/model"
	"question_flow_backend/internal/service"
	"question_flow_backend/internal/util"
	"question_flow_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(s *service.QuestionService) *QuestionController {
	return &QuestionController{Service: s}
}

// @Summary List all questions with their options
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Question
// @Failure 500 {object} util.ErrorResponse
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	questions, err := c.Service.List()
	if err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary Create a question, optionally with options
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param question body model.Question true "question aggregate without id"
// @Success 201 {object} model.Question
// @Failure 400 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var q model.Question
	if err := ctx.ShouldBindJSON(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	created, err := c.Service.Create(&q)
	if err != nil {
		if util.IsValidationError(err) {
			monitoring.QuestionWrites.WithLabelValues("create", "rejected").Inc()
			util.BadRequest(ctx, err.Error())
			return
		}
		monitoring.QuestionWrites.WithLabelValues("create", "error").Inc()
		util.StoreError(ctx, err)
		return
	}

	monitoring.QuestionWrites.WithLabelValues("create", "ok").Inc()
	util.Created(ctx, created)
}

// @Summary Update a question and reconcile its option list
// @Description Scalar fields are fully replaced. Options with ids are
// @Description updated, options without ids are inserted, and existing
// @Description options whose ids are not resent are deleted.
// @Tags questions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param question body model.Question true "question aggregate with id"
// @Success 200 {object} util.AckResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /questions [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	var q model.Question
	if err := ctx.ShouldBindJSON(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.Update(&q); err != nil {
		if util.IsValidationError(err) {
			monitoring.QuestionWrites.WithLabelValues("update", "rejected").Inc()
			util.BadRequest(ctx, err.Error())
			return
		}
		monitoring.QuestionWrites.WithLabelValues("update", "error").Inc()
		util.StoreError(ctx, err)
		return
	}

	monitoring.QuestionWrites.WithLabelValues("update", "ok").Inc()
	util.Ack(ctx)
}

// @Summary Delete a question
// @Description Option rows are removed by the store-level cascade.
// @Tags questions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "question id"
// @Success 200 {object} util.AckResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid question id")
		return
	}

	if err := c.Service.Delete(uint(id)); err != nil {
		monitoring.QuestionWrites.WithLabelValues("delete", "error").Inc()
		util.StoreError(ctx, err)
		return
	}

	monitoring.QuestionWrites.WithLabelValues("delete", "ok").Inc()
	util.Ack(ctx)
}
