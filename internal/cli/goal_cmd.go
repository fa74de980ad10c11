package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/importer"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/spf13/cobra"
)

// resolveGoalID accepts a full goal id or an unambiguous prefix of one.
func resolveGoalID(ctx context.Context, app *App, userID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("goal ID is required")
	}
	goals, err := app.Goals.List(ctx, userID)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, g := range goals {
		if g.ID == input {
			return g.ID, nil
		}
		if strings.HasPrefix(g.ID, input) {
			matches = append(matches, g.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("goal not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("goal ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newGoalCmd(app *App, currentUser userFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}
	cmd.AddCommand(
		newGoalAddCmd(app, currentUser),
		newGoalListCmd(app, currentUser),
		newGoalShowCmd(app, currentUser),
		newGoalCompleteCmd(app, currentUser),
		newGoalRemoveCmd(app, currentUser),
		newGoalImportCmd(app, currentUser),
	)
	return cmd
}

func newGoalAddCmd(app *App, currentUser userFunc) *cobra.Command {
	var category, description string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Create a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := currentUser(cmd.Context())
			if err != nil {
				return err
			}
			g, err := app.Goals.Create(cmd.Context(), u.ID, service.GoalInput{
				Title:       strings.Join(args, " "),
				Description: description,
				Category:    category,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Created goal %q [%s]", g.Title, g.ID[:8])))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Goal category, e.g. career")
	cmd.Flags().StringVar(&description, "description", "", "Longer description used in the roadmap prompt")
	return cmd
}

func newGoalListCmd(app *App, currentUser userFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := currentUser(cmd.Context())
			if err != nil {
				return err
			}
			goals, err := app.Goals.List(cmd.Context(), u.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalList(goals))
			return nil
		},
	}
}

func newGoalImportCmd(app *App, currentUser userFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create a goal with steps and resources from a JSON plan (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				schema *importer.ImportSchema
				err    error
			)
			if args[0] == "-" {
				schema, err = importer.DecodeImportSchema(cmd.InOrStdin())
			} else {
				schema, err = importer.LoadImportSchema(args[0])
			}
			if err != nil {
				return err
			}

			u, err := currentUser(cmd.Context())
			if err != nil {
				return err
			}
			plan, err := app.Imports.Import(cmd.Context(), u.ID, schema)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf(
				"Imported goal %q [%s] with %d steps and %d resources",
				plan.Goal.Title, plan.Goal.ID[:8], len(plan.Steps), len(plan.Resources))))
			return nil
		},
	}
}

func newGoalShowCmd(app *App, currentUser userFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "show GOAL_ID",
		Short: "Show a goal with its roadmap and steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u, err := currentUser(ctx)
			if err != nil {
				return err
			}
			id, err := resolveGoalID(ctx, app, u.ID, args[0])
			if err != nil {
				return err
			}
			g, err := app.Goals.Get(ctx, u.ID, id)
			if err != nil {
				return err
			}
			steps, err := app.Steps.List(ctx, u.ID, &id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalDetail(g, steps))
			return nil
		},
	}
}

func newGoalCompleteCmd(app *App, currentUser userFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "complete GOAL_ID",
		Short: "Mark a goal completed and collect points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u, err := currentUser(ctx)
			if err != nil {
				return err
			}
			id, err := resolveGoalID(ctx, app, u.ID, args[0])
			if err != nil {
				return err
			}
			res, err := app.Goals.Complete(ctx, u.ID, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCompletion(
				res.Goal.Title, res.Awarded, res.PointsEarned, res.NewBadges, res.Stats.Points))
			return nil
		},
	}
}

func newGoalRemoveCmd(app *App, currentUser userFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "rm GOAL_ID",
		Aliases: []string{"remove"},
		Short:   "Delete a goal and its steps",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u, err := currentUser(ctx)
			if err != nil {
				return err
			}
			id, err := resolveGoalID(ctx, app, u.ID, args[0])
			if err != nil {
				return err
			}
			if err := app.Goals.Delete(ctx, u.ID, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Deleted goal "+id[:8]))
			return nil
		},
	}
}

func newAchievementsCmd(app *App, currentUser userFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show points and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := currentUser(cmd.Context())
			if err != nil {
				return err
			}
			stats, err := app.Achievements.Get(cmd.Context(), u.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAchievements(stats))
			return nil
		},
	}
}
