package handler

import (
	"bytes"
	"net/http"

	"github.com/DarshanR43/satchi/internal/modules/serializer"
	"github.com/DarshanR43/satchi/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type EvaluationHandler struct {
	svc           service.EvaluationService
	consolidation service.ConsolidationService
	export        service.ExportService
}

func NewEvaluationHandler(s service.EvaluationService, cons service.ConsolidationService, export service.ExportService) *EvaluationHandler {
	return &EvaluationHandler{svc: s, consolidation: cons, export: export}
}

type JudgeMarkReq struct {
	JudgeName string `json:"judge_name" binding:"required" example:"Prof. Mehta"`
	Mark      string `json:"mark" binding:"required" example:"78.50"`
	Comments  string `json:"comments" example:"Solid prototype"`
}

type SubmitMarksReq struct {
	ProjectID      uint           `json:"project_id" binding:"required" example:"1"`
	SubSubEventID  uint           `json:"sub_sub_event_id" binding:"required" example:"1"`
	IsDisqualified bool           `json:"is_disqualified" example:"false"`
	Remarks        string         `json:"remarks" example:"Finals round"`
	Marks          []JudgeMarkReq `json:"marks" binding:"required"`
}

type GetEvaluationReq struct {
	ProjectID     uint `form:"project_id" binding:"required" example:"1"`
	SubSubEventID uint `form:"sub_sub_event_id" binding:"required" example:"1"`
}

// GetEvaluationResp wraps the lookup so a missing scorecard is a normal
// 200 with exists=false, not an error.
type GetEvaluationResp struct {
	Exists     bool        `json:"exists"`
	Evaluation interface{} `json:"evaluation,omitempty"`
}

// SubmitMarks godoc
//
//	@Summary		Submit judge marks
//	@Description	Replaces the full mark set of the project's scorecard for the competition and recomputes judge_count, total and final_score.
//	@Tags			evaluation
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.SubmitMarksReq	true	"SubmitMarks payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Evaluation}
//	@Router			/evaluations/marks [post]
func (h *EvaluationHandler) SubmitMarks(c *gin.Context) {
	req := SubmitMarksReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	in := service.SubmitMarksInput{
		ProjectID:      req.ProjectID,
		SubSubEventID:  req.SubSubEventID,
		IsDisqualified: req.IsDisqualified,
		Remarks:        req.Remarks,
	}
	for _, m := range req.Marks {
		in.Marks = append(in.Marks, service.MarkInput{JudgeName: m.JudgeName, Mark: m.Mark, Comments: m.Comments})
	}

	out, err := h.svc.SubmitMarks(c.Request.Context(), in)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetEvaluation godoc
//
//	@Summary	Get a project's scorecard for a competition
//	@Tags		evaluation
//	@Produce	json
//	@Param		project_id			query	integer	true	"Project ID"
//	@Param		sub_sub_event_id	query	integer	true	"Competition ID"
//	@Success	200	{object}	serializer.Response{data=handler.GetEvaluationResp}
//	@Router		/evaluations [get]
func (h *EvaluationHandler) GetEvaluation(c *gin.Context) {
	req := GetEvaluationReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	eval, exists, err := h.svc.Get(c.Request.Context(), req.ProjectID, req.SubSubEventID)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	resp := GetEvaluationResp{Exists: exists}
	if exists {
		resp.Evaluation = eval
	}
	c.JSON(http.StatusOK, serializer.Response{Data: resp})
}

// FoldConsolidated godoc
//
//	@Summary		Fold the latest evaluation into the consolidated score
//	@Description	Absorbs the project's most recent rubric evaluation into its running consolidated statistics. Folding beyond the judge panel size is rejected.
//	@Tags			evaluation
//	@Produce		json
//	@Param			project_id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.ConsolidatedScore}
//	@Router			/consolidations/{project_id}/fold [post]
func (h *EvaluationHandler) FoldConsolidated(c *gin.Context) {
	id, err := uintParam(c, "project_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.consolidation.Fold(c.Request.Context(), id)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetConsolidated godoc
//
//	@Summary	Get a project's consolidated score
//	@Tags		evaluation
//	@Produce	json
//	@Param		project_id	path	integer	true	"Project ID"
//	@Success	200	{object}	serializer.Response{data=model.ConsolidatedScore}
//	@Router		/consolidations/{project_id} [get]
func (h *EvaluationHandler) GetConsolidated(c *gin.Context) {
	id, err := uintParam(c, "project_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.consolidation.Get(c.Request.Context(), id)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// ExportEvaluations godoc
//
//	@Summary	Export a competition's scorecards as CSV
//	@Tags		evaluation
//	@Produce	text/csv
//	@Param		subsub_id	path	integer	true	"Competition ID"
//	@Security	BearerAuth
//	@Success	200	{string}	string	"CSV sheet"
//	@Router		/events/subsub/{subsub_id}/evaluations/export [get]
func (h *EvaluationHandler) ExportEvaluations(c *gin.Context) {
	id, err := uintParam(c, "subsub_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	// Render to a buffer first so an export error still gets a clean
	// JSON error response instead of headers for a half-written sheet.
	var buf bytes.Buffer
	if err := h.export.WriteEvaluationSheet(c.Request.Context(), id, &buf); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="evaluations.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
