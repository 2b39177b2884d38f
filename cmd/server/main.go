package main

//	@title			Satchi API
//	@version		1.0
//	@description	Event registration, judging and score consolidation API.
//	@schemes		http https
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Admin bearer token (e.g., "Bearer satchi-admin")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DarshanR43/satchi/internal/bootstrap"
	"github.com/DarshanR43/satchi/internal/config"
	"github.com/DarshanR43/satchi/internal/modules/handler"
	"github.com/DarshanR43/satchi/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	// init gin
	gin.SetMode(cfg.App.Env)

	// build handlers
	eventHandler := do.MustInvoke[*handler.EventHandler](inj)
	projectHandler := do.MustInvoke[*handler.ProjectHandler](inj)
	judgeHandler := do.MustInvoke[*handler.JudgeHandler](inj)
	evaluationHandler := do.MustInvoke[*handler.EvaluationHandler](inj)
	rubricHandler := do.MustInvoke[*handler.RubricHandler](inj)

	engine := router.NewRouter(router.RouterDeps{
		Config:            cfg,
		Log:               log,
		EventHandler:      eventHandler,
		ProjectHandler:    projectHandler,
		JudgeHandler:      judgeHandler,
		EvaluationHandler: evaluationHandler,
		RubricHandler:     rubricHandler,
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Sugar().Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Fatalw("server forced to shutdown", "err", err)
	}
	log.Sugar().Infow("server exited")
}
