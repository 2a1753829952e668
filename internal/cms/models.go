package cms

import "tutorial_sync/internal/domain"

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token. ExpiresIn is in seconds
// and is zero when the API does not report it.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

type ChapterPayload struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Description     string `json:"description"`
	Sequence        int    `json:"sequence"`
	Status          int    `json:"status"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
}

type SectionPayload struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	ContentMarkdown string `json:"content_markdown"`
	Description     string `json:"description"`
	Sequence        int    `json:"sequence"`
	Status          int    `json:"status"`
	IsFree          bool   `json:"is_free"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
}

func NewChapterPayload(c domain.Chapter) ChapterPayload {
	return ChapterPayload{
		Title:           c.Title,
		Slug:            c.Slug,
		Description:     c.Description,
		Sequence:        c.Sequence,
		Status:          c.Status,
		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,
		MetaKeywords:    c.MetaKeywords,
	}
}

func NewSectionPayload(s domain.Section) SectionPayload {
	return SectionPayload{
		Title:           s.Title,
		Slug:            s.Slug,
		ContentMarkdown: s.ContentMarkdown,
		Description:     s.Description,
		Sequence:        s.Sequence,
		Status:          s.Status,
		IsFree:          s.IsFree,
		MetaTitle:       s.MetaTitle,
		MetaDescription: s.MetaDescription,
		MetaKeywords:    s.MetaKeywords,
	}
}
