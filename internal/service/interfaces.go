package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"net/http"

	"tutorial_sync/internal/cms"
	"tutorial_sync/internal/domain"
)

type ContentLoader interface {
	LoadChapter(dir string) (*domain.ChapterTree, error)
}

type CMS interface {
	Subject() string
	CreateChapter(ctx context.Context, headers http.Header, chapter cms.ChapterPayload) error
	CreateSection(ctx context.Context, headers http.Header, chapterSlug string, section cms.SectionPayload) error
}

type HeaderProvider interface {
	Headers(ctx context.Context) (http.Header, error)
}

type ReportStore interface {
	Save(ctx context.Context, report *domain.BatchReport) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.SyncEvent) error
	Close() error
}
