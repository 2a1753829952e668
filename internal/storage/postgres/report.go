package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"tutorial_sync/internal/domain"
)

// ReportStore keeps an audit ledger of sync runs. It is write-mostly and
// never consulted when deciding what to sync.
type ReportStore struct {
	db *sqlx.DB
	tx *TransactionManager
}

func NewReportStore(db *sqlx.DB, tx *TransactionManager) *ReportStore {
	return &ReportStore{db: db, tx: tx}
}

// Save stores the run summary and every item outcome atomically.
func (s *ReportStore) Save(ctx context.Context, report *domain.BatchReport) error {
	stats := report.Stats()
	run := domain.SyncRun{
		ID:         report.RunID,
		Subject:    report.Subject,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Chapters:   stats.Chapters,
		Created:    stats.Created,
		Existing:   stats.Existing,
		Skipped:    stats.Skipped,
		Failed:     stats.Failed,
		Published:  stats.Published,
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, s.db)

		_, err := sqlx.NamedExecContext(ctx, exec, `
			INSERT INTO sync_runs (
				id, subject, started_at, finished_at, chapters,
				created, existing, skipped, failed, published
			) VALUES (
				:id, :subject, :started_at, :finished_at, :chapters,
				:created, :existing, :skipped, :failed, :published
			)`, run)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		items := report.Items()
		if len(items) == 0 {
			return nil
		}

		_, err = sqlx.NamedExecContext(ctx, exec, `
			INSERT INTO sync_items (
				run_id, chapter_slug, kind, slug, title,
				status, status_code, reason, position
			) VALUES (
				:run_id, :chapter_slug, :kind, :slug, :title,
				:status, :status_code, :reason, :position
			)`, items)
		if err != nil {
			return fmt.Errorf("insert items: %w", err)
		}
		return nil
	})
}

// Recent returns the latest runs for subject, newest first.
func (s *ReportStore) Recent(ctx context.Context, subject string, limit int) ([]domain.SyncRun, error) {
	query := `
		SELECT id, subject, started_at, finished_at, chapters,
		       created, existing, skipped, failed, published
		FROM sync_runs
		WHERE subject = $1
		ORDER BY started_at DESC
		LIMIT $2`

	var runs []domain.SyncRun
	if err := s.db.SelectContext(ctx, &runs, query, subject, limit); err != nil {
		return nil, err
	}
	return runs, nil
}

// Problems returns the failed and skipped items of the given runs.
func (s *ReportStore) Problems(ctx context.Context, runIDs []string) ([]domain.SyncItem, error) {
	if len(runIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT run_id, chapter_slug, kind, slug, title, status, status_code, reason, position
		FROM sync_items
		WHERE run_id = ANY($1::uuid[]) AND status IN ('failed', 'skipped')
		ORDER BY run_id, position`

	var items []domain.SyncItem
	if err := s.db.SelectContext(ctx, &items, query, pq.Array(runIDs)); err != nil {
		return nil, err
	}
	return items, nil
}
