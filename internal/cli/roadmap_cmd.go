package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var errInterrupted = errors.New("interrupted")

func newRoadmapCmd(app *App, currentUser userFunc) *cobra.Command {
	var title, category, description string

	cmd := &cobra.Command{
		Use:   "roadmap GOAL_ID",
		Short: "Generate a 12-month roadmap for a goal",
		Long: `Generate a roadmap for a goal from your personality profile. The flags
override the stored goal fields for this request only. Generating again
replaces the previous roadmap.`,
		Args: cobra.ExactArgs(1),
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
			req := service.GenerateRoadmapRequest{GoalID: id, Title: title, Category: category, Description: description}
			generate := func(ctx context.Context) (*domain.Goal, error) {
				return app.Roadmaps.Generate(ctx, u.ID, req)
			}

			var g *domain.Goal
			if app.interactive() {
				g, err = generateWithSpinner(cmd, generate)
			} else {
				g, err = generate(ctx)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", formatter.Bold(g.Title))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoadmap(g.Roadmap))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Goal title to use instead of the stored one")
	cmd.Flags().StringVar(&category, "category", "", "Category to use instead of the stored one")
	cmd.Flags().StringVar(&description, "description", "", "Description to use instead of the stored one")
	return cmd
}

// generateWithSpinner runs generate while a spinner animates on stderr.
func generateWithSpinner(cmd *cobra.Command, generate func(context.Context) (*domain.Goal, error)) (*domain.Goal, error) {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m := newRoadmapModel(ctx, cancel, generate)
	final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(cmd.ErrOrStderr())).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return nil, err
	}
	done, ok := final.(roadmapModel)
	if !ok || (done.goal == nil && done.err == nil) {
		return nil, errInterrupted
	}
	return done.goal, done.err
}

type roadmapResultMsg struct {
	goal *domain.Goal
	err  error
}

// roadmapModel shows a spinner until the generation result arrives.
type roadmapModel struct {
	ctx      context.Context
	cancel   context.CancelFunc
	generate func(context.Context) (*domain.Goal, error)
	spinner  spinner.Model

	done bool
	goal *domain.Goal
	err  error
}

func newRoadmapModel(ctx context.Context, cancel context.CancelFunc, generate func(context.Context) (*domain.Goal, error)) roadmapModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(formatter.StylePurple))
	return roadmapModel{ctx: ctx, cancel: cancel, generate: generate, spinner: s}
}

func (m roadmapModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		g, err := m.generate(m.ctx)
		return roadmapResultMsg{goal: g, err: err}
	})
}

func (m roadmapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapResultMsg:
		m.done, m.goal, m.err = true, msg.goal, msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.cancel()
			m.done, m.err = true, errInterrupted
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m roadmapModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("  %s %s\n", m.spinner.View(), formatter.Dim("Generating roadmap, this can take up to a minute..."))
}
