package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pablasso/tempo/internal/model"
	"github.com/spf13/cobra"
)

var errMissingPredictInput = errors.New("--day and --type are required")

func newPredictCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict whether a task type on a weekday is likely productive",
		Long: `Retrain the model from every logged task and predict whether a task of
--type on --day is likely productive (60 minutes or more).

Both values must have been seen in your task history.`,
		Example: `  tempo predict --day Monday --type Work`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, _ := cmd.Flags().GetString("day")
			typ, _ := cmd.Flags().GetString("type")

			if day == "" || typ == "" {
				return a.vocabularyError(errMissingPredictInput)
			}

			productive, err := a.tracker.Predict(day, typ)
			if err != nil {
				if errors.Is(err, model.ErrUnknownCategory) {
					return a.vocabularyError(err)
				}
				return err
			}

			verdict := "may be less productive"
			if productive {
				verdict = "likely productive"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %s\n", typ, day, verdict)
			return nil
		},
	}

	cmd.Flags().String("day", "", "weekday, e.g. Monday")
	cmd.Flags().String("type", "", "task type, e.g. Work")
	return cmd
}

// vocabularyError appends the known days and types to cause.
func (a *app) vocabularyError(cause error) error {
	p, err := a.tracker.Retrain()
	if err != nil {
		return fmt.Errorf("%w: %w", cause, err)
	}
	return fmt.Errorf("%w\n  known days:  %s\n  known types: %s",
		cause, strings.Join(p.Days(), ", "), strings.Join(p.Types(), ", "))
}
