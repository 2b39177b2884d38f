package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/DarshanR43/satchi/docs"
	"github.com/DarshanR43/satchi/internal/config"
	"github.com/DarshanR43/satchi/internal/middleware"
	"github.com/DarshanR43/satchi/internal/modules/handler"
	"github.com/DarshanR43/satchi/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config            *config.Config
	Log               *zap.Logger
	EventHandler      *handler.EventHandler
	ProjectHandler    *handler.ProjectHandler
	JudgeHandler      *handler.JudgeHandler
	EvaluationHandler *handler.EvaluationHandler
	RubricHandler     *handler.RubricHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// public: browsing the event tree and registering projects
		events := v1.Group("/events")
		{
			events.GET("/main", d.EventHandler.GetMainEvents)
			events.GET("/main/:main_id/sub", d.EventHandler.GetSubEvents)
			events.GET("/sub/:sub_id/subsub", d.EventHandler.GetSubSubEvents)
			events.GET("/subsub/:subsub_id/projects", d.ProjectHandler.GetProjectsByEvent)
			events.GET("/subsub/:subsub_id/judges", d.JudgeHandler.GetJudges)
		}

		projects := v1.Group("/projects")
		{
			projects.POST("/submit/:event_id", d.ProjectHandler.SubmitProject)
			projects.GET("/:project_id", d.ProjectHandler.GetProject)
		}

		v1.GET("/consolidations/:project_id", d.EvaluationHandler.GetConsolidated)

		v1.GET("/rubrics", d.RubricHandler.GetRubricDefinitions)
		v1.GET("/evaluations", d.EvaluationHandler.GetEvaluation)

		// admin: event administration, judging and consolidation
		admin := v1.Group("")
		admin.Use(middleware.AdminAuth(d.Config))
		{
			admin.POST("/events/main", d.EventHandler.CreateMainEvent)
			admin.POST("/events/sub", d.EventHandler.CreateSubEvent)
			admin.POST("/events/subsub", d.EventHandler.CreateSubSubEvent)
			admin.DELETE("/events/main/:main_id", d.EventHandler.DeleteMainEvent)
			admin.DELETE("/events/sub/:sub_id", d.EventHandler.DeleteSubEvent)
			admin.DELETE("/events/subsub/:subsub_id", d.EventHandler.DeleteSubSubEvent)

			admin.POST("/events/subsub/:subsub_id/judges", d.JudgeHandler.LinkJudges)
			admin.GET("/events/subsub/:subsub_id/evaluations/export", d.EvaluationHandler.ExportEvaluations)

			admin.POST("/projects/code", d.ProjectHandler.GenerateProjectCode)
			admin.POST("/consolidations/:project_id/fold", d.EvaluationHandler.FoldConsolidated)
			admin.GET("/projects/:project_id/evaluations/rubric", d.RubricHandler.GetRubricEvaluations)

			admin.POST("/evaluations/marks", d.EvaluationHandler.SubmitMarks)
			admin.POST("/evaluations/rubric", d.RubricHandler.SubmitRubricEvaluation)

			admin.POST("/rubrics", d.RubricHandler.CreateRubricDefinition)
		}
	}
	return r
}
