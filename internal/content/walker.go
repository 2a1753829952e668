package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"tutorial_sync/internal/domain"
)

// Config names the files expected in every chapter and section directory.
type Config struct {
	MetadataFile string
	ContentFile  string
}

// Walker reads a chapter directory and the section directories directly
// beneath it.
type Walker struct {
	metadataFile string
	contentFile  string
	logger       *slog.Logger
}

func NewWalker(cfg Config, logger *slog.Logger) *Walker {
	if cfg.MetadataFile == "" {
		cfg.MetadataFile = "metadata.json"
	}
	if cfg.ContentFile == "" {
		cfg.ContentFile = "content.md"
	}
	return &Walker{
		metadataFile: cfg.MetadataFile,
		contentFile:  cfg.ContentFile,
		logger:       logger.With("component", "walker"),
	}
}

// LoadChapter reads the chapter descriptor in dir and every section below
// it. An error is returned only when the chapter itself cannot be loaded;
// broken sections are listed in ChapterTree.Skipped.
func (w *Walker) LoadChapter(dir string) (*domain.ChapterTree, error) {
	dir = filepath.Clean(dir)
	slug := filepath.Base(dir)

	chapter, err := w.loadChapter(dir, slug)
	if err != nil {
		return nil, err
	}

	names, err := sectionDirs(dir)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	tree := &domain.ChapterTree{Chapter: *chapter}
	for i, name := range names {
		secDir := filepath.Join(dir, name)
		section, err := w.loadSection(secDir, name, i+1)
		if err != nil {
			tree.Skipped = append(tree.Skipped, domain.Skip{
				Slug:   name,
				Dir:    secDir,
				Reason: err.Error(),
			})
			continue
		}
		tree.Sections = append(tree.Sections, *section)
	}

	w.logger.Debug("chapter loaded",
		"chapter", slug,
		"sections", len(tree.Sections),
		"skipped", len(tree.Skipped),
	)

	return tree, nil
}

func (w *Walker) loadChapter(dir, slug string) (*domain.Chapter, error) {
	path := filepath.Join(dir, w.metadataFile)
	d, err := w.readDescriptor(path)
	if err != nil {
		return nil, err
	}

	title := d.title()
	if title == "" {
		return nil, &ValidationError{Path: path, Field: "title", Msg: "is required"}
	}
	description := stringOr(d.Description, "")

	return &domain.Chapter{
		Slug:            slug,
		Title:           title,
		Description:     description,
		Sequence:        intOr(d.Sequence, 1),
		Status:          intOr(d.Status, domain.StatusPublished),
		MetaTitle:       stringOr(d.MetaTitle, title),
		MetaDescription: stringOr(d.MetaDescription, description),
		MetaKeywords:    string(d.MetaKeywords),
		Dir:             dir,
	}, nil
}

// loadSection reads one section directory. position is the 1-based place
// of the directory in name order and is the default sequence.
func (w *Walker) loadSection(dir, slug string, position int) (*domain.Section, error) {
	path := filepath.Join(dir, w.metadataFile)
	d, err := w.readDescriptor(path)
	if err != nil {
		return nil, err
	}

	contentPath := filepath.Join(dir, w.contentFile)
	body, err := os.ReadFile(contentPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", contentPath, ErrMissingContent)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", contentPath, err)
	}
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%s: %w", contentPath, ErrInvalidContent)
	}

	title := d.title()
	if title == "" {
		title = firstHeading(body)
	}
	if title == "" {
		return nil, &ValidationError{Path: path, Field: "title", Msg: "is required (no heading in content either)"}
	}
	description := stringOr(d.Description, "")

	return &domain.Section{
		Slug:            slug,
		Title:           title,
		Description:     description,
		Sequence:        intOr(d.Sequence, position),
		Status:          intOr(d.Status, domain.StatusPublished),
		IsFree:          boolOr(d.IsFree, true),
		MetaTitle:       stringOr(d.MetaTitle, title),
		MetaDescription: stringOr(d.MetaDescription, description),
		MetaKeywords:    string(d.MetaKeywords),
		ContentMarkdown: string(body),
		Dir:             dir,
	}, nil
}

func (w *Walker) readDescriptor(path string) (*descriptor, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingDescriptor)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parseDescriptor(path, data)
}

// sectionDirs lists the non-hidden subdirectories of dir sorted by name.
// Symlinks are followed; a dangling link is listed so that it is reported
// as a skipped section rather than dropped.
func sectionDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if e.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(filepath.Join(dir, e.Name()))
			if err == nil && !info.IsDir() {
				continue
			}
		} else if !e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
