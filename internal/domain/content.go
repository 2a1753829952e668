package domain

// Chapter is a top-level tutorial unit backed by one local directory.
type Chapter struct {
	Slug            string
	Title           string
	Description     string
	Sequence        int
	Status          int
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	Dir             string
}

// Section is a content page nested under a chapter.
type Section struct {
	Slug            string
	Title           string
	Description     string
	Sequence        int
	Status          int
	IsFree          bool
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	ContentMarkdown string
	Dir             string
}

// Skip records a section directory that could not be loaded.
type Skip struct {
	Slug   string
	Dir    string
	Reason string
}

// ChapterTree is a chapter together with the sections found beneath it,
// in directory-name order.
type ChapterTree struct {
	Chapter  Chapter
	Sections []Section
	Skipped  []Skip
}

const (
	StatusDraft     = 0
	StatusPublished = 1
)
