package cli

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the services and process settings used by CLI commands.
type App struct {
	Auth         service.AuthService
	Assessment   service.AssessmentService
	Profile      service.ProfileService
	Goals        service.GoalService
	Roadmaps     service.RoadmapService
	Steps        service.StepService
	Achievements service.AchievementService
	Imports      service.ImportService

	// Handler serves the JSON API for "pathwise serve".
	Handler http.Handler
	Addr    string
	Logger  *slog.Logger

	// LogLevel, when set, is raised to warn for every command but serve so
	// routine events stay off the terminal.
	LogLevel *slog.LevelVar

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

// NewRootCmd creates the top-level "pathwise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var username string

	root := &cobra.Command{
		Use:           "pathwise",
		Short:         "Personality assessment and goal roadmaps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Name() != "serve" && app.LogLevel != nil && app.LogLevel.Level() < slog.LevelWarn {
				app.LogLevel.Set(slog.LevelWarn)
			}
		},
	}
	root.PersistentFlags().StringVar(&username, "user", "local", "Local account to act as")
	root.SetGlobalNormalizationFunc(dashedFlags)

	currentUser := func(ctx context.Context) (*domain.User, error) {
		return app.Auth.EnsureLocalUser(ctx, username)
	}

	root.AddCommand(
		newServeCmd(app),
		newQuestionsCmd(app),
		newAssessCmd(app, currentUser),
		newProfileCmd(app, currentUser),
		newGoalCmd(app, currentUser),
		newRoadmapCmd(app, currentUser),
		newAchievementsCmd(app, currentUser),
	)
	return root
}

// userFunc resolves the local account the command acts as.
type userFunc func(ctx context.Context) (*domain.User, error)

// dashedFlags accepts --goal_id as an alias of --goal-id.
func dashedFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
