package handler

import (
	"net/http"

	"github.com/DarshanR43/satchi/internal/modules/serializer"
	"github.com/DarshanR43/satchi/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type RubricHandler struct {
	svc service.RubricService
}

func NewRubricHandler(s service.RubricService) *RubricHandler {
	return &RubricHandler{svc: s}
}

type CreateRubricDefinitionReq struct {
	Code    string `json:"code" binding:"required" example:"creativity"`
	Name    string `json:"name" binding:"required" example:"Creativity"`
	MaxMark int    `json:"max_mark" example:"10"`
}

type SubmitRubricReq struct {
	ProjectID uint   `json:"project_id" binding:"required" example:"1"`
	Evaluator string `json:"evaluator" example:"Dr. Nair"`
	// RubricMarks maps rubric codes to integer scores.
	RubricMarks    map[string]int `json:"rubric_marks" binding:"required"`
	NumberOfJudges int            `json:"number_of_judges" example:"2"`
}

// CreateRubricDefinition godoc
//
//	@Summary	Define a rubric criterion
//	@Tags		rubric
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.CreateRubricDefinitionReq	true	"CreateRubricDefinition payload"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.Response{data=model.RubricDefinition}
//	@Router		/rubrics [post]
func (h *RubricHandler) CreateRubricDefinition(c *gin.Context) {
	req := CreateRubricDefinitionReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.CreateDefinition(c.Request.Context(), service.CreateRubricDefinitionInput{
		Code:    req.Code,
		Name:    req.Name,
		MaxMark: req.MaxMark,
	})
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// GetRubricDefinitions godoc
//
//	@Summary	List rubric criteria
//	@Tags		rubric
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.RubricDefinition}
//	@Router		/rubrics [get]
func (h *RubricHandler) GetRubricDefinitions(c *gin.Context) {
	out, err := h.svc.ListDefinitions(c.Request.Context())
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// SubmitRubricEvaluation godoc
//
//	@Summary		Submit a rubric evaluation
//	@Description	Records one evaluator's rubric for a project. Each rubric code must be defined and its score within the criterion's max mark; the total is the sum of the scores.
//	@Tags			rubric
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.SubmitRubricReq	true	"SubmitRubricEvaluation payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.RubricEvaluation}
//	@Router			/evaluations/rubric [post]
func (h *RubricHandler) SubmitRubricEvaluation(c *gin.Context) {
	req := SubmitRubricReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.SubmitEvaluation(c.Request.Context(), service.SubmitRubricInput{
		ProjectID:      req.ProjectID,
		Evaluator:      req.Evaluator,
		Marks:          req.RubricMarks,
		NumberOfJudges: req.NumberOfJudges,
	})
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// GetRubricEvaluations godoc
//
//	@Summary	List a project's rubric evaluations
//	@Tags		rubric
//	@Produce	json
//	@Param		project_id	path	integer	true	"Project ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.RubricEvaluation}
//	@Router		/projects/{project_id}/evaluations/rubric [get]
func (h *RubricHandler) GetRubricEvaluations(c *gin.Context) {
	id, err := uintParam(c, "project_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.ListEvaluations(c.Request.Context(), id)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
