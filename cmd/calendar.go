package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/numberninja/internal/progress"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Show a month of progress",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		anchor := time.Now()
		if len(args) == 1 {
			t, err := time.ParseInLocation("2006-01", args[0], time.Local)
			if err != nil {
				return fmt.Errorf("parse month %q: %w", args[0], err)
			}
			anchor = t
		}

		st, prog, err := openProgress(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, anchor.Format("January 2006"))
		for _, day := range prog.DaysInMonth(anchor) {
			p, ok := prog.Progress(day)
			if !ok {
				fmt.Fprintf(out, "  %s  —\n", day.Format("Mon 02"))
				continue
			}
			mark := " "
			if p.Completed {
				mark = "✔"
			}
			fmt.Fprintf(out, "  %s  %s  +%d  −%d  ×%d  ÷%d  (%d attempted)\n",
				day.Format("Mon 02"), mark,
				p.AdditionScore, p.SubtractionScore, p.MultiplicationScore, p.DivisionScore,
				p.TotalAttempted)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals across all recorded days",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, prog, err := openProgress(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		days := prog.Days()
		completed := 0
		totals := map[progress.QuizKind]int{}
		for _, p := range days {
			if p.Completed {
				completed++
			}
			for _, k := range progress.Kinds() {
				totals[k] += p.Score(k)
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Days practiced: %d (%d completed)\n", len(days), completed)
		for _, k := range progress.Kinds() {
			fmt.Fprintf(out, "  %-14s %d correct\n", k.DisplayName(), totals[k])
		}
		return nil
	},
}
