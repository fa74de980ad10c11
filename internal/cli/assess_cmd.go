package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newQuestionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Show the assessment questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := app.Assessment.Questions(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuestions(qs))
			return nil
		},
	}
}

func newAssessCmd(app *App, currentUser userFunc) *cobra.Command {
	var answersFlag string

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Take the personality assessment",
		Long: `Take the personality assessment. In a terminal each question is asked
interactively; otherwise pass the answers as --answers 1=a,2=b,...
Submitting replaces all previous answers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u, err := currentUser(ctx)
			if err != nil {
				return err
			}

			var answers []service.AnswerInput
			switch {
			case answersFlag != "":
				answers, err = parseAnswers(answersFlag)
			case app.interactive():
				answers, err = askAnswers(cmd, app)
			default:
				return errors.New("no answers given: pass --answers 1=a,2=b or run in a terminal")
			}
			if err != nil {
				return err
			}

			p, err := app.Assessment.Submit(ctx, u.ID, answers)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Recorded %d answers", len(answers))))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
	cmd.Flags().StringVar(&answersFlag, "answers", "", "Comma-separated question=letter pairs, e.g. 1=a,2=b")
	return cmd
}

// parseAnswers reads "1=a,2=B" into answer inputs. Letters are lowered;
// the service rejects anything outside a-d.
func parseAnswers(s string) ([]service.AnswerInput, error) {
	var out []service.AnswerInput
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		qs, letter, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer %q: want question=letter", pair)
		}
		id, err := strconv.Atoi(strings.TrimSpace(qs))
		if err != nil {
			return nil, fmt.Errorf("invalid question id %q", qs)
		}
		out = append(out, service.AnswerInput{
			QuestionID: id,
			Letter:     domain.OptionLetter(strings.ToLower(strings.TrimSpace(letter))),
		})
	}
	if len(out) == 0 {
		return nil, errors.New("no answers given")
	}
	return out, nil
}

// askAnswers runs one select per question.
func askAnswers(cmd *cobra.Command, app *App) ([]service.AnswerInput, error) {
	qs, err := app.Assessment.Questions(cmd.Context())
	if err != nil {
		return nil, err
	}
	choices := make([]domain.OptionLetter, len(qs))
	groups := make([]*huh.Group, 0, len(qs))
	for i, q := range qs {
		opts := make([]huh.Option[domain.OptionLetter], 0, len(q.Options))
		for j, letter := range domain.OptionLetters {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s) %s", letter, q.Options[j].Label), letter))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[domain.OptionLetter]().
				Title(fmt.Sprintf("%d/%d  %s", i+1, len(qs), q.Text)).
				Options(opts...).
				Value(&choices[i]),
		))
	}

	form := huh.NewForm(groups...).WithTheme(pathwiseHuhTheme())
	if err := form.RunWithContext(cmd.Context()); err != nil {
		return nil, err
	}

	out := make([]service.AnswerInput, 0, len(qs))
	for i, q := range qs {
		out = append(out, service.AnswerInput{QuestionID: q.QuestionID, Letter: choices[i]})
	}
	return out, nil
}

func newProfileCmd(app *App, currentUser userFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your personality profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := currentUser(cmd.Context())
			if err != nil {
				return err
			}
			p, err := app.Profile.Get(cmd.Context(), u.ID)
			if errors.Is(err, service.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No profile yet. Take the assessment with: pathwise assess"))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
	cmd.AddCommand(newProfileSetCmd(app, currentUser))
	return cmd
}

func newProfileSetCmd(app *App, currentUser userFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "set DIMENSION=VALUE...",
		Short: "Edit profile values by hand",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := currentUser(cmd.Context())
			if err != nil {
				return err
			}
			patch := make(domain.DimensionMap, len(args))
			for _, arg := range args {
				k, v, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("invalid field %q: want dimension=value", arg)
				}
				patch[domain.Dimension(strings.TrimSpace(k))] = strings.TrimSpace(v)
			}
			p, err := app.Profile.Update(cmd.Context(), u.ID, patch)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}
