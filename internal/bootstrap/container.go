package bootstrap

import (
	"github.com/DarshanR43/satchi/internal/config"
	"github.com/DarshanR43/satchi/internal/infra/db"
	"github.com/DarshanR43/satchi/internal/infra/logger"
	"github.com/DarshanR43/satchi/internal/modules/handler"
	"github.com/DarshanR43/satchi/internal/modules/model"
	"github.com/DarshanR43/satchi/internal/modules/repo"
	"github.com/DarshanR43/satchi/internal/modules/service"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.MainEvent{},
				&model.SubEvent{},
				&model.SubSubEvent{},
				&model.Project{},
				&model.TeamMember{},
				&model.SubSubEventJudge{},
				&model.Evaluation{},
				&model.EvaluationJudgeMark{},
				&model.RubricDefinition{},
				&model.RubricEvaluation{},
				&model.ConsolidatedScore{},
			)
		}
		return d, nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.EventRepo, error) {
		return repo.NewEventRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.JudgeRepo, error) {
		return repo.NewJudgeRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.EvaluationRepo, error) {
		return repo.NewEvaluationRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.RubricRepo, error) {
		return repo.NewRubricRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ConsolidatedRepo, error) {
		return repo.NewConsolidatedRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.CodeGenerator, error) {
		return service.NewCodeGenerator(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.EventService, error) {
		return service.NewEventService(do.MustInvoke[repo.EventRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.EventRepo](i),
			do.MustInvoke[service.CodeGenerator](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.JudgeService, error) {
		return service.NewJudgeService(
			do.MustInvoke[repo.JudgeRepo](i),
			do.MustInvoke[repo.EventRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.EvaluationService, error) {
		return service.NewEvaluationService(
			do.MustInvoke[repo.EvaluationRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.EventRepo](i),
			do.MustInvoke[repo.JudgeRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.RubricService, error) {
		return service.NewRubricService(
			do.MustInvoke[repo.RubricRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ConsolidationService, error) {
		return service.NewConsolidationService(
			do.MustInvoke[repo.ConsolidatedRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ExportService, error) {
		return service.NewExportService(
			do.MustInvoke[repo.EvaluationRepo](i),
			do.MustInvoke[repo.EventRepo](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.EventHandler, error) {
		return handler.NewEventHandler(do.MustInvoke[service.EventService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.JudgeHandler, error) {
		return handler.NewJudgeHandler(do.MustInvoke[service.JudgeService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.EvaluationHandler, error) {
		return handler.NewEvaluationHandler(
			do.MustInvoke[service.EvaluationService](i),
			do.MustInvoke[service.ConsolidationService](i),
			do.MustInvoke[service.ExportService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.RubricHandler, error) {
		return handler.NewRubricHandler(do.MustInvoke[service.RubricService](i)), nil
	})

	return inj
}
