package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"tutorial_sync/internal/domain"
	"tutorial_sync/internal/storage/postgres"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sync runs from the ledger",
	Long: `History lists the most recent runs recorded in the sync ledger for the
configured subject, followed by the sections that failed or were skipped.
Requires database.enabled in the config.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return errors.New("--limit must be positive")
	}
	if !a.cfg.Database.Enabled {
		return errors.New("history needs database.enabled in the config")
	}

	db, err := sqlx.Connect("postgres", a.cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	store := postgres.NewReportStore(db, postgres.NewTransactionManager(db))
	ctx := context.Background()

	runs, err := store.Recent(ctx, a.cfg.API.Subject, limit)
	if err != nil {
		return fmt.Errorf("load runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No sync runs recorded.")
		return nil
	}

	ids := make([]string, len(runs))
	for i, r := range runs {
		ids[i] = r.ID
	}
	problems, err := store.Problems(ctx, ids)
	if err != nil {
		return fmt.Errorf("load problems: %w", err)
	}

	printHistory(runs, problems)
	return nil
}

func printHistory(runs []domain.SyncRun, problems []domain.SyncItem) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSTARTED\tDURATION\tCHAPTERS\tCREATED\tEXISTING\tSKIPPED\tFAILED")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			shortID(r.ID),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond),
			r.Chapters, r.Created, r.Existing, r.Skipped, r.Failed,
		)
	}
	_ = w.Flush()

	if len(problems) == 0 {
		return
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tCHAPTER\tITEM\tSTATUS\tCODE\tREASON")
	for _, p := range problems {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			shortID(p.RunID), p.ChapterSlug, p.Slug, p.Status, p.StatusCode, oneLine(p.Reason, 100))
	}
	_ = w.Flush()
}

// shortID abbreviates a run id for display.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// oneLine collapses whitespace and truncates s to at most max runes.
func oneLine(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
