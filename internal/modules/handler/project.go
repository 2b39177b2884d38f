package handler

import (
	"net/http"

	"github.com/DarshanR43/satchi/internal/modules/serializer"
	"github.com/DarshanR43/satchi/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type MemberReq struct {
	Name  string `json:"name" binding:"required" example:"Asha Rao"`
	Email string `json:"email" binding:"required,email" example:"asha@example.com"`
	Phone string `json:"phone" example:"9876543210"`
}

type SubmitProjectReq struct {
	TeamName     string `json:"team_name" binding:"required" example:"Null Pointers"`
	ProjectTopic string `json:"project_topic" binding:"required" example:"Crowd-sourced flood mapping"`

	CaptainName  string `json:"captain_name" binding:"required" example:"Ravi Kumar"`
	CaptainEmail string `json:"captain_email" binding:"required,email" example:"ravi@example.com"`
	CaptainPhone string `json:"captain_phone" example:"9876543211"`

	FacultyMentorName string `json:"faculty_mentor_name" example:"Dr. Iyer"`

	Members []MemberReq `json:"members"`
}

type GenerateCodeReq struct {
	MainEventName   string `json:"main_event_name" binding:"required" example:"TechFest 2026"`
	SubEventName    string `json:"sub_event_name" binding:"required" example:"Software Track"`
	SubSubEventName string `json:"sub_sub_event_name" binding:"required" example:"Hackathon"`
}

type GenerateCodeResp struct {
	ProjectCode string `json:"project_code" example:"TECHFEST2026_SOFTWARETRAC_HACKATHON_001"`
}

// SubmitProject godoc
//
//	@Summary		Submit project
//	@Description	Register a project under a competition identified by its public event code. The project code is assigned here, exactly once.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			event_id	path	string						true	"Competition event code, e.g. EVT_SS20260131093000123456"
//	@Param			payload		body	handler.SubmitProjectReq	true	"SubmitProject payload"
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Router			/projects/submit/{event_id} [post]
func (h *ProjectHandler) SubmitProject(c *gin.Context) {
	req := SubmitProjectReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	in := service.SubmitProjectInput{
		EventID:           c.Param("event_id"),
		TeamName:          req.TeamName,
		ProjectTopic:      req.ProjectTopic,
		CaptainName:       req.CaptainName,
		CaptainEmail:      req.CaptainEmail,
		CaptainPhone:      req.CaptainPhone,
		FacultyMentorName: req.FacultyMentorName,
	}
	for _, m := range req.Members {
		in.Members = append(in.Members, service.MemberInput{Name: m.Name, Email: m.Email, Phone: m.Phone})
	}

	out, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: out})
}

// GetProject godoc
//
//	@Summary	Get project
//	@Tags		project
//	@Produce	json
//	@Param		project_id	path	integer	true	"Project ID"
//	@Success	200	{object}	serializer.Response{data=model.Project}
//	@Router		/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uintParam(c, "project_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GetProjectsByEvent godoc
//
//	@Summary	List projects of a competition
//	@Tags		project
//	@Produce	json
//	@Param		subsub_id	path	integer	true	"Competition ID"
//	@Success	200	{object}	serializer.Response{data=[]model.Project}
//	@Router		/events/subsub/{subsub_id}/projects [get]
func (h *ProjectHandler) GetProjectsByEvent(c *gin.Context) {
	id, err := uintParam(c, "subsub_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	out, err := h.svc.ListByEvent(c.Request.Context(), id)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// GenerateProjectCode godoc
//
//	@Summary		Derive the next project code
//	@Description	Computes the next code for the given event names without reserving it.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.GenerateCodeReq	true	"GenerateProjectCode payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=handler.GenerateCodeResp}
//	@Router			/projects/code [post]
func (h *ProjectHandler) GenerateProjectCode(c *gin.Context) {
	req := GenerateCodeReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	code, err := h.svc.GenerateCode(c.Request.Context(), req.MainEventName, req.SubEventName, req.SubSubEventName)
	if err != nil {
		serializer.WriteErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: GenerateCodeResp{ProjectCode: code}})
}
