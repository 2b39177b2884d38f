package handler

import (
	"net/http"

	"github.com/DarshanR43/satchi/internal/modules/serializer"
	"github.com/DarshanR43/satchi/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type JudgeHandler struct {
	svc service.JudgeService
}

func NewJudgeHandler(s service.JudgeService) *JudgeHandler {
	return &JudgeHandler{svc: s}
}

type LinkJudgesReq struct {
	Names   []string `json:"names" binding:"required" example:"Prof. Mehta,Dr. Nair"`
	Replace bool     `json:"replace" example:"false"`
}

// LinkJudges godoc
//
//	@Summary		Link judges to a competition
//	@Description	Registers the named judges for the competition. With replace set, judges missing from the list are unlinked; their past marks are kept.
//	@Tags			judge
//	@Accept			json
//	@Produce		json
//	@Param			subsub_id	path	integer					true	"Competition ID"
//	@Param			payload		body	handler.LinkJudgesReq	true	"LinkJudges payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.SubSubEventJudge}
//	@Router			/events/subsub/{subsub_id}/judges [post]
func (h *JudgeHandler) LinkJudges(c *gin.Context) {
	id, err := uintParam(c, "subsub_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	req := LinkJudgesReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.Link(c.Request.Context(), service.LinkJudgesInput{
		SubSubEventID: id,
		Names:         req.Names,
		Replace:       req.Replace,
	})
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetJudges godoc
//
//	@Summary	List judges of a competition
//	@Tags		judge
//	@Produce	json
//	@Param		subsub_id	path	integer	true	"Competition ID"
//	@Success	200	{object}	serializer.Response{data=[]model.SubSubEventJudge}
//	@Router		/events/subsub/{subsub_id}/judges [get]
func (h *JudgeHandler) GetJudges(c *gin.Context) {
	id, err := uintParam(c, "subsub_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.List(c.Request.Context(), id)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
