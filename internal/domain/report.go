package domain

import "time"

type ItemKind string

const (
	KindChapter ItemKind = "chapter"
	KindSection ItemKind = "section"
)

type ItemStatus string

const (
	ItemCreated  ItemStatus = "created"
	ItemExisting ItemStatus = "existing"
	ItemSkipped  ItemStatus = "skipped"
	ItemFailed   ItemStatus = "failed"
)

// ItemResult is the outcome of one chapter or section upsert.
type ItemResult struct {
	Kind       ItemKind   `json:"kind"`
	Slug       string     `json:"slug"`
	Title      string     `json:"title,omitempty"`
	Status     ItemStatus `json:"status"`
	StatusCode int        `json:"status_code,omitempty"`
	Reason     string     `json:"reason,omitempty"`
}

// OK reports whether the item is present remotely after the run.
func (r ItemResult) OK() bool {
	return r.Status == ItemCreated || r.Status == ItemExisting
}

// ChapterReport collects the results for one chapter directory.
// Complete is true once every section was attempted, which happens
// whenever the chapter itself was upserted.
type ChapterReport struct {
	Slug     string       `json:"slug"`
	Dir      string       `json:"dir"`
	Complete bool         `json:"complete"`
	Chapter  ItemResult   `json:"chapter"`
	Sections []ItemResult `json:"sections"`
}

// BatchReport is the outcome of a single invocation.
type BatchReport struct {
	RunID      string          `json:"run_id"`
	Subject    string          `json:"subject"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Chapters   []ChapterReport `json:"chapters"`
	Published  int             `json:"published"`
}

// SyncStats holds counts aggregated over a batch report.
type SyncStats struct {
	Chapters         int
	ChaptersComplete int
	Created          int
	Existing         int
	Skipped          int
	Failed           int
	Published        int
	Duration         time.Duration
}

func (b *BatchReport) Stats() SyncStats {
	stats := SyncStats{
		Chapters:  len(b.Chapters),
		Published: b.Published,
		Duration:  b.FinishedAt.Sub(b.StartedAt),
	}
	for _, ch := range b.Chapters {
		if ch.Complete {
			stats.ChaptersComplete++
		}
		stats.count(ch.Chapter)
		for _, sec := range ch.Sections {
			stats.count(sec)
		}
	}
	return stats
}

func (s *SyncStats) count(r ItemResult) {
	switch r.Status {
	case ItemCreated:
		s.Created++
	case ItemExisting:
		s.Existing++
	case ItemSkipped:
		s.Skipped++
	case ItemFailed:
		s.Failed++
	}
}
