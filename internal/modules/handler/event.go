package handler

import (
	"net/http"

	"github.com/DarshanR43/satchi/internal/modules/serializer"
	"github.com/DarshanR43/satchi/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(s service.EventService) *EventHandler {
	return &EventHandler{svc: s}
}

type CreateMainEventReq struct {
	Name        string `json:"name" binding:"required" example:"TechFest 2026"`
	Description string `json:"description" example:"Annual technology festival"`
}

type CreateSubEventReq struct {
	MainEventID uint   `json:"main_event_id" binding:"required" example:"1"`
	Name        string `json:"name" binding:"required" example:"Software Track"`
	Description string `json:"description"`
}

type CreateSubSubEventReq struct {
	SubEventID  uint   `json:"sub_event_id" binding:"required" example:"1"`
	Name        string `json:"name" binding:"required" example:"Hackathon"`
	Description string `json:"description"`
	Rules       string `json:"rules"`

	MinTeamSize             int  `json:"min_team_size" example:"2"`
	MaxTeamSize             int  `json:"max_team_size" example:"4"`
	MinFemaleParticipants   int  `json:"min_female_participants" example:"1"`
	IsFacultyMentorRequired bool `json:"is_faculty_mentor_required" example:"false"`
}

// CreateMainEvent godoc
//
//	@Summary		Create main event
//	@Tags			event
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateMainEventReq	true	"CreateMainEvent payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.MainEvent}
//	@Router			/events/main [post]
func (h *EventHandler) CreateMainEvent(c *gin.Context) {
	req := CreateMainEventReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.CreateMain(c.Request.Context(), service.CreateMainEventInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// CreateSubEvent godoc
//
//	@Summary		Create sub event
//	@Tags			event
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateSubEventReq	true	"CreateSubEvent payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.SubEvent}
//	@Router			/events/sub [post]
func (h *EventHandler) CreateSubEvent(c *gin.Context) {
	req := CreateSubEventReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.CreateSub(c.Request.Context(), service.CreateSubEventInput{
		MainEventID: req.MainEventID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// CreateSubSubEvent godoc
//
//	@Summary		Create competition
//	@Tags			event
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateSubSubEventReq	true	"CreateSubSubEvent payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.SubSubEvent}
//	@Router			/events/subsub [post]
func (h *EventHandler) CreateSubSubEvent(c *gin.Context) {
	req := CreateSubSubEventReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.CreateSubSub(c.Request.Context(), service.CreateSubSubEventInput{
		SubEventID:              req.SubEventID,
		Name:                    req.Name,
		Description:             req.Description,
		Rules:                   req.Rules,
		MinTeamSize:             req.MinTeamSize,
		MaxTeamSize:             req.MaxTeamSize,
		MinFemaleParticipants:   req.MinFemaleParticipants,
		IsFacultyMentorRequired: req.IsFacultyMentorRequired,
	})
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// GetMainEvents godoc
//
//	@Summary	List main events
//	@Tags		event
//	@Produce	json
//	@Success	200	{object}	serializer.Response{data=[]model.MainEvent}
//	@Router		/events/main [get]
func (h *EventHandler) GetMainEvents(c *gin.Context) {
	out, err := h.svc.ListMains(c.Request.Context())
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetSubEvents godoc
//
//	@Summary	List sub events of a main event
//	@Tags		event
//	@Produce	json
//	@Param		main_id	path	integer	true	"Main event ID"
//	@Success	200	{object}	serializer.Response{data=[]model.SubEvent}
//	@Router		/events/main/{main_id}/sub [get]
func (h *EventHandler) GetSubEvents(c *gin.Context) {
	id, err := uintParam(c, "main_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.ListSubs(c.Request.Context(), id)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetSubSubEvents godoc
//
//	@Summary	List competitions of a sub event
//	@Tags		event
//	@Produce	json
//	@Param		sub_id	path	integer	true	"Sub event ID"
//	@Success	200	{object}	serializer.Response{data=[]model.SubSubEvent}
//	@Router		/events/sub/{sub_id}/subsub [get]
func (h *EventHandler) GetSubSubEvents(c *gin.Context) {
	id, err := uintParam(c, "sub_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.ListSubSubs(c.Request.Context(), id)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// DeleteMainEvent godoc
//
//	@Summary	Delete main event
//	@Tags		event
//	@Produce	json
//	@Param		main_id	path	integer	true	"Main event ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/events/main/{main_id} [delete]
func (h *EventHandler) DeleteMainEvent(c *gin.Context) {
	id, err := uintParam(c, "main_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if err := h.svc.DeleteMain(c.Request.Context(), id); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}

// DeleteSubEvent godoc
//
//	@Summary	Delete sub event
//	@Tags		event
//	@Produce	json
//	@Param		sub_id	path	integer	true	"Sub event ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/events/sub/{sub_id} [delete]
func (h *EventHandler) DeleteSubEvent(c *gin.Context) {
	id, err := uintParam(c, "sub_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if err := h.svc.DeleteSub(c.Request.Context(), id); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}

// DeleteSubSubEvent godoc
//
//	@Summary	Delete competition
//	@Tags		event
//	@Produce	json
//	@Param		subsub_id	path	integer	true	"Competition ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/events/subsub/{subsub_id} [delete]
func (h *EventHandler) DeleteSubSubEvent(c *gin.Context) {
	id, err := uintParam(c, "subsub_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if err := h.svc.DeleteSubSub(c.Request.Context(), id); err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}
