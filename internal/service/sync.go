package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"tutorial_sync/internal/cms"
	"tutorial_sync/internal/config"
	"tutorial_sync/internal/domain"
)

type SyncService struct {
	loader    ContentLoader
	cms       CMS
	auth      HeaderProvider
	reports   ReportStore
	publisher Publisher
	logger    *slog.Logger
	config    config.SyncConfig
	newRunID  func() string
	now       func() time.Time
}

// NewSyncService wires the sync driver. reports and publisher are optional
// and may be nil.
func NewSyncService(
	loader ContentLoader,
	client CMS,
	auth HeaderProvider,
	reports ReportStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		loader:    loader,
		cms:       client,
		auth:      auth,
		reports:   reports,
		publisher: publisher,
		logger:    logger.With("subject", client.Subject()),
		config:    cfg,
		newRunID:  func() string { return uuid.New().String() },
		now:       time.Now,
	}
}

// Run authenticates once and syncs every chapter directory in order. The
// returned error is non-nil only when authentication fails; per-chapter
// and per-section failures are recorded in the report.
func (s *SyncService) Run(ctx context.Context, dirs []string) (*domain.BatchReport, error) {
	report := &domain.BatchReport{
		RunID:     s.newRunID(),
		Subject:   s.cms.Subject(),
		StartedAt: s.now(),
	}
	logger := s.logger.With("run_id", report.RunID)
	logger.Info("starting sync", "chapters", len(dirs))

	headers, err := s.auth.Headers(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	for _, dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			logger.Error("chapter directory not found", "dir", dir)
			slug := filepath.Base(filepath.Clean(dir))
			report.Chapters = append(report.Chapters, domain.ChapterReport{
				Slug: slug,
				Dir:  dir,
				Chapter: domain.ItemResult{
					Kind:   domain.KindChapter,
					Slug:   slug,
					Status: domain.ItemFailed,
					Reason: "chapter directory not found",
				},
			})
			continue
		}

		report.Chapters = append(report.Chapters, *s.SyncChapter(ctx, dir, headers))
	}

	report.Published = s.publish(ctx, report)
	report.FinishedAt = s.now()

	if s.reports != nil {
		if err := s.reports.Save(ctx, report); err != nil {
			logger.Error("failed to record sync run", "error", err)
		}
	}

	stats := report.Stats()
	logger.Info("sync completed",
		"chapters", stats.Chapters,
		"chapters_complete", stats.ChaptersComplete,
		"created", stats.Created,
		"existing", stats.Existing,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return report, nil
}

// SyncChapter upserts the chapter in dir and then each of its sections.
// A chapter that cannot be loaded or created stops here with no section
// calls. Section failures are recorded and the next section is attempted;
// Complete is set once every section has been tried.
func (s *SyncService) SyncChapter(ctx context.Context, dir string, headers http.Header) *domain.ChapterReport {
	slug := filepath.Base(filepath.Clean(dir))
	logger := s.logger.With("chapter", slug)
	report := &domain.ChapterReport{Slug: slug, Dir: dir}

	logger.Info("processing chapter directory", "dir", dir)

	tree, err := s.loader.LoadChapter(dir)
	if err != nil {
		report.Chapter = domain.ItemResult{
			Kind:   domain.KindChapter,
			Slug:   slug,
			Status: domain.ItemFailed,
			Reason: fmt.Sprintf("load chapter: %v", err),
		}
		logger.Error("failed to read chapter metadata", "error", err)
		return report
	}

	chapter := tree.Chapter
	logger.Info("creating chapter", "title", chapter.Title)

	err = s.cms.CreateChapter(ctx, headers, cms.NewChapterPayload(chapter))
	report.Chapter = s.outcome(domain.KindChapter, chapter.Slug, chapter.Title, err)
	if !report.Chapter.OK() {
		logger.Error("failed to create chapter",
			"title", chapter.Title,
			"status_code", report.Chapter.StatusCode,
			"error", err,
		)
		return report
	}
	logger.Info("chapter upserted", "title", chapter.Title, "status", report.Chapter.Status)

	logger.Info("found sections", "count", len(tree.Sections)+len(tree.Skipped))

	for _, item := range inDirectoryOrder(tree) {
		if item.skip != nil {
			logger.Error("skipping section",
				"section", item.skip.Slug,
				"reason", item.skip.Reason,
			)
			report.Sections = append(report.Sections, domain.ItemResult{
				Kind:   domain.KindSection,
				Slug:   item.skip.Slug,
				Status: domain.ItemSkipped,
				Reason: item.skip.Reason,
			})
			continue
		}

		report.Sections = append(report.Sections, s.syncSection(ctx, logger, headers, chapter.Slug, *item.section))
	}

	report.Complete = true
	logger.Info("chapter sync complete", "sections", len(report.Sections))

	return report
}

func (s *SyncService) syncSection(ctx context.Context, logger *slog.Logger, headers http.Header, chapterSlug string, section domain.Section) domain.ItemResult {
	logger.Info("creating section", "section", section.Slug, "title", section.Title)

	err := s.cms.CreateSection(ctx, headers, chapterSlug, cms.NewSectionPayload(section))
	result := s.outcome(domain.KindSection, section.Slug, section.Title, err)
	if !result.OK() {
		logger.Error("failed to create section",
			"section", section.Slug,
			"status_code", result.StatusCode,
			"error", err,
		)
		return result
	}

	logger.Info("section upserted", "section", section.Slug, "status", result.Status)
	return result
}

// outcome classifies the result of a create call. Only 201 is success;
// 409 counts as already present when the conflict policy allows it.
func (s *SyncService) outcome(kind domain.ItemKind, slug, title string, err error) domain.ItemResult {
	result := domain.ItemResult{Kind: kind, Slug: slug, Title: title}

	switch {
	case err == nil:
		result.Status = domain.ItemCreated
		result.StatusCode = http.StatusCreated
	case cms.IsConflict(err) && s.config.OnConflict == config.OnConflictExisting:
		result.Status = domain.ItemExisting
		result.StatusCode = http.StatusConflict
	default:
		result.Status = domain.ItemFailed
		result.StatusCode = cms.StatusCode(err)
		result.Reason = err.Error()
	}

	return result
}

func (s *SyncService) publish(ctx context.Context, report *domain.BatchReport) int {
	if s.publisher == nil {
		return 0
	}

	published := 0
	for _, ch := range report.Chapters {
		if ch.Chapter.Status == domain.ItemCreated {
			published += s.emit(ctx, domain.SyncEvent{
				Action:      domain.ActionChapterCreated,
				RunID:       report.RunID,
				Subject:     report.Subject,
				ChapterSlug: ch.Slug,
				Title:       ch.Chapter.Title,
			})
		}
		for _, sec := range ch.Sections {
			if sec.Status != domain.ItemCreated {
				continue
			}
			published += s.emit(ctx, domain.SyncEvent{
				Action:      domain.ActionSectionCreated,
				RunID:       report.RunID,
				Subject:     report.Subject,
				ChapterSlug: ch.Slug,
				SectionSlug: sec.Slug,
				Title:       sec.Title,
			})
		}
	}
	return published
}

func (s *SyncService) emit(ctx context.Context, event domain.SyncEvent) int {
	event.Timestamp = s.now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish sync event",
			"action", event.Action,
			"chapter", event.ChapterSlug,
			"section", event.SectionSlug,
			"error", err,
		)
		return 0
	}
	return 1
}

type walkItem struct {
	section *domain.Section
	skip    *domain.Skip
}

// inDirectoryOrder merges loaded and skipped sections back into the order
// of their directory names.
func inDirectoryOrder(tree *domain.ChapterTree) []walkItem {
	items := make([]walkItem, 0, len(tree.Sections)+len(tree.Skipped))
	i, j := 0, 0
	for i < len(tree.Sections) || j < len(tree.Skipped) {
		if j >= len(tree.Skipped) || (i < len(tree.Sections) && tree.Sections[i].Slug < tree.Skipped[j].Slug) {
			items = append(items, walkItem{section: &tree.Sections[i]})
			i++
			continue
		}
		items = append(items, walkItem{skip: &tree.Skipped[j]})
		j++
	}
	return items
}
