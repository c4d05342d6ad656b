package bootstrap

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	authinadapter "planview/internal/modules/auth/adapter/in"
	authoutadapter "planview/internal/modules/auth/adapter/out"
	authin "planview/internal/modules/auth/port/in"
	authservice "planview/internal/modules/auth/service"
	authusecase "planview/internal/modules/auth/usecase"
	planninginadapter "planview/internal/modules/planning/adapter/in"
	planningoutadapter "planview/internal/modules/planning/adapter/out"
	planningin "planview/internal/modules/planning/port/in"
	planningservice "planview/internal/modules/planning/service"
	planningusecase "planview/internal/modules/planning/usecase"
	scheduleinadapter "planview/internal/modules/schedule/adapter/in"
	schedulein "planview/internal/modules/schedule/port/in"
	scheduleservice "planview/internal/modules/schedule/service"
	scheduleusecase "planview/internal/modules/schedule/usecase"
	"planview/internal/platform/clock"
	"planview/internal/platform/config"
	"planview/internal/platform/edusign"
	"planview/internal/platform/id"
	"planview/internal/platform/logging"
	uiapp "planview/internal/ui/app"
)

type App struct {
	AuthCLI     authinadapter.CLIHandler
	PlanningCLI planninginadapter.CLIHandler
	ScheduleCLI scheduleinadapter.CLIHandler

	auth     authin.Usecase
	planning planningin.Usecase
	schedule schedulein.Usecase
	logger   *zap.Logger
}

func New(cfg config.Config) (*App, error) {
	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	clk := clock.SystemClock{}
	ids := id.UUID{}
	client := edusign.NewClient(cfg.BaseURL, cfg.Language, logger, ids)

	store, err := authoutadapter.NewSQLiteCredentialStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	authUC := authusecase.NewInteractor(
		authservice.NewAuthService(authoutadapter.NewEdusignAuthenticator(client), logger),
		store,
	)

	fetcher := planningoutadapter.NewEdusignFetcher(client)
	planningUC := planningusecase.NewInteractor(
		planningservice.NewPlanningService(fetcher, fetcher, logger),
		authUC,
	)

	scheduleUC := scheduleusecase.NewInteractor(
		scheduleservice.NewScheduleService(clk),
		planningUC,
	)

	return &App{
		AuthCLI:     authinadapter.NewCLIHandler(authUC),
		PlanningCLI: planninginadapter.NewCLIHandler(planningUC),
		ScheduleCLI: scheduleinadapter.NewCLIHandler(scheduleUC),
		auth:        authUC,
		planning:    planningUC,
		schedule:    scheduleUC,
		logger:      logger,
	}, nil
}

func (a *App) Close() {
	_ = a.logger.Sync()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.auth, app.planning, app.schedule)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
