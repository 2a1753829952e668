package domain

import "time"

// SyncRun is one row of the sync ledger.
type SyncRun struct {
	ID         string    `db:"id"`
	Subject    string    `db:"subject"`
	StartedAt  time.Time `db:"started_at"`
	FinishedAt time.Time `db:"finished_at"`
	Chapters   int       `db:"chapters"`
	Created    int       `db:"created"`
	Existing   int       `db:"existing"`
	Skipped    int       `db:"skipped"`
	Failed     int       `db:"failed"`
	Published  int       `db:"published"`
}

// SyncItem is one chapter or section outcome stored with its run.
type SyncItem struct {
	RunID       string `db:"run_id"`
	ChapterSlug string `db:"chapter_slug"`
	Kind        string `db:"kind"`
	Slug        string `db:"slug"`
	Title       string `db:"title"`
	Status      string `db:"status"`
	StatusCode  int    `db:"status_code"`
	Reason      string `db:"reason"`
	Position    int    `db:"position"`
}

// Items flattens the report into ledger rows, chapter first, then its
// sections in sync order.
func (b *BatchReport) Items() []SyncItem {
	var items []SyncItem
	pos := 0
	add := func(chapter string, r ItemResult) {
		items = append(items, SyncItem{
			RunID:       b.RunID,
			ChapterSlug: chapter,
			Kind:        string(r.Kind),
			Slug:        r.Slug,
			Title:       r.Title,
			Status:      string(r.Status),
			StatusCode:  r.StatusCode,
			Reason:      r.Reason,
			Position:    pos,
		})
		pos++
	}
	for _, ch := range b.Chapters {
		add(ch.Slug, ch.Chapter)
		for _, sec := range ch.Sections {
			add(ch.Slug, sec)
		}
	}
	return items
}
