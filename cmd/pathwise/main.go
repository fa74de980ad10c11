package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/pathwise/internal/auth"
	"github.com/alexanderramin/pathwise/internal/cli"
	"github.com/alexanderramin/pathwise/internal/config"
	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/httpapi"
	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/alexanderramin/pathwise/internal/ratelimit"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("PATHWISE_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger, level := cfg.Log.NewLogger(os.Stderr)

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	questionRepo := repository.NewSQLiteQuestionRepo(database)
	answerRepo := repository.NewSQLiteAnswerRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	stepRepo := repository.NewSQLiteStepRepo(database)
	resourceRepo := repository.NewSQLiteResourceRepo(database)
	statsRepo := repository.NewSQLiteStatsRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewSlogUseCaseObserver(logger)
	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL, cfg.JWT.Issuer)
	limiter := ratelimit.NewAttemptLimiter(cfg.Profile.MaxFailedEdits, cfg.Profile.EditWindow, nil)

	client, err := newLLMClient(cfg.LLM, logger)
	if err != nil {
		return err
	}

	authSvc := service.NewAuthService(userRepo, tokens, observer)
	assessmentSvc := service.NewAssessmentService(questionRepo, answerRepo, uow, observer)
	profileSvc := service.NewProfileService(profileRepo, uow, limiter, observer)
	goalSvc := service.NewGoalService(goalRepo, uow, observer)
	roadmapSvc := service.NewRoadmapService(goalRepo, profileRepo, answerRepo, questionRepo, client, uow, logger, observer)
	stepSvc := service.NewStepService(stepRepo, goalRepo)
	resourceSvc := service.NewResourceService(resourceRepo, goalRepo)
	achievementSvc := service.NewAchievementService(statsRepo)
	importSvc := service.NewImportService(uow, observer)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpapi.NewRouter(httpapi.Services{
		Auth:         authSvc,
		Assessment:   assessmentSvc,
		Profile:      profileSvc,
		Goals:        goalSvc,
		Roadmaps:     roadmapSvc,
		Steps:        stepSvc,
		Resources:    resourceSvc,
		Achievements: achievementSvc,
		Imports:      importSvc,
	}, tokens, logger)

	app := &cli.App{
		Auth:         authSvc,
		Assessment:   assessmentSvc,
		Profile:      profileSvc,
		Goals:        goalSvc,
		Roadmaps:     roadmapSvc,
		Steps:        stepSvc,
		Achievements: achievementSvc,
		Imports:      importSvc,
		Handler:      router,
		Addr:         cfg.App.Addr,
		Logger:       logger,
		LogLevel:     level,
	}

	// Detect interactive terminal for forms and the roadmap spinner.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// newLLMClient returns nil when generation is disabled or Gemini has no key;
// the roadmap service then reports generation as unavailable.
func newLLMClient(c config.LLMConfig, logger *slog.Logger) (llm.LLMClient, error) {
	if !c.Enabled {
		logger.Debug("llm_disabled", "reason", "llm.enabled is false")
		return nil, nil
	}
	if c.Provider == string(llm.ProviderGemini) && c.APIKey == "" {
		logger.Warn("llm_disabled", "reason", "no api key; set GEMINI_API_KEY or llm.api_key")
		return nil, nil
	}

	llmCfg := llm.DefaultConfig()
	llmCfg.Provider = llm.Provider(c.Provider)
	llmCfg.Endpoint = c.Endpoint
	llmCfg.APIKey = c.APIKey
	llmCfg.Model = c.Model
	llmCfg.TimeoutMs = int(c.Timeout.Milliseconds())
	llmCfg.MaxRetries = c.MaxRetries
	llmCfg.LogCalls = c.LogCalls
	roadmap := llmCfg.Tasks[llm.TaskRoadmap]
	roadmap.TimeoutMs = int(c.RoadmapTimeout.Milliseconds())
	llmCfg.Tasks[llm.TaskRoadmap] = roadmap

	var observer llm.Observer = llm.NoopObserver{}
	if c.LogCalls {
		observer = llm.NewLogObserver(logger)
	}
	client, err := llm.NewClient(llmCfg, observer)
	if err != nil {
		return nil, fmt.Errorf("creating llm client: %w", err)
	}
	return client, nil
}
