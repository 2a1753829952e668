package domain

import "time"

const (
	ActionChapterCreated = "chapter.created"
	ActionSectionCreated = "section.created"
)

// SyncEvent announces that a chapter or section was created remotely.
type SyncEvent struct {
	Action      string    `json:"action"`
	RunID       string    `json:"run_id"`
	Subject     string    `json:"subject"`
	ChapterSlug string    `json:"chapter_slug"`
	SectionSlug string    `json:"section_slug,omitempty"`
	Title       string    `json:"title"`
	Timestamp   time.Time `json:"timestamp"`
}
