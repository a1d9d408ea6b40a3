package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/numberninja/internal/app"
	"github.com/abhisek/numberninja/internal/progress"
	"github.com/abhisek/numberninja/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play [kind]",
	Short: "Start a practice session",
	Long:  "Start a 10-question session. Kind is one of: addition, subtraction, multiplication, division.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := progress.ParseKind(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		st, prog, err := openProgress(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		_, err = app.Run(ctx, app.Options{
			Kind:     kind,
			Progress: prog,
			In:       os.Stdin,
			Out:      cmd.OutOrStdout(),
		})
		return err
	},
}

// openProgress opens the database and hydrates the progress store from it.
func openProgress(cmd *cobra.Command) (*store.Store, *progress.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	prog := progress.NewStore(cmd.Context(), st.ProgressRepo())
	return st, prog, nil
}
