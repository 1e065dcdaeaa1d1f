// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls structured paper metadata out of repository
// READMEs. READMEs in the SLAM paper convention carry labeled sections
// ("## 📄 论文标题: ..."); each configured label is matched independently
// and a field that cannot be extracted degrades to a sentinel value
// without affecting its siblings.
package extract

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/robosu12/SLAM-daily-update/pkg/types"
)

// Field names for the labeled-section extractor.
const (
	FieldTitle     = "title"
	FieldAuthors   = "authors"
	FieldVenue     = "venue"
	FieldYear      = "year"
	FieldPaperLink = "paper_link"
)

// Default section labels, matching the README convention the collection
// tracks. All are overridable through ExtractConfig.
const (
	DefaultTitleLabel     = "📄 论文标题"
	DefaultAuthorsLabel   = "👥 作者"
	DefaultVenueLabel     = "📅 会议/期刊"
	DefaultYearLabel      = "📆 发表年份"
	DefaultPaperLinkLabel = "📜 论文链接"
)

// DefaultVenues are the target conference/journal abbreviations checked
// against the repository description when the venue section is missing.
// Order matters: inference takes the first match.
var DefaultVenues = []string{"icra", "iros", "ral", "tro"}

// Section pairs a metadata field with the README label that introduces
// it. The label is a regular-expression fragment matched as a top-level
// heading, case-insensitively, tolerant of a half-width or full-width
// colon; the captured value runs to the next top-level heading or end
// of document.
type Section struct {
	Field string
	Label string
}

type compiledSection struct {
	field string
	re    *regexp.Regexp
}

// Extractor extracts one PaperRecord per README.
type Extractor struct {
	sections []compiledSection
	venues   []string
}

// NewExtractor compiles the section patterns. A label that fails to
// compile is reported as a warning on w and its field yields the
// "parse error" sentinel at extraction time; the remaining sections
// are unaffected.
func NewExtractor(cfg types.ExtractConfig, w io.Writer) *Extractor {
	venues := cfg.Venues
	if len(venues) == 0 {
		venues = DefaultVenues
	}

	e := &Extractor{venues: venues}
	for _, s := range sectionsFromConfig(cfg.Labels) {
		re, err := compileSection(s)
		if err != nil {
			fmt.Fprintf(w, "warning: section %s: %v\n", s.Field, err)
			e.sections = append(e.sections, compiledSection{field: s.Field})
			continue
		}
		e.sections = append(e.sections, compiledSection{field: s.Field, re: re})
	}
	return e
}

// sectionsFromConfig resolves label overrides against the defaults.
func sectionsFromConfig(labels types.SectionLabels) []Section {
	pick := func(override, def string) string {
		if override != "" {
			return override
		}
		return def
	}
	return []Section{
		{Field: FieldTitle, Label: pick(labels.Title, DefaultTitleLabel)},
		{Field: FieldAuthors, Label: pick(labels.Authors, DefaultAuthorsLabel)},
		{Field: FieldVenue, Label: pick(labels.Venue, DefaultVenueLabel)},
		{Field: FieldYear, Label: pick(labels.Year, DefaultYearLabel)},
		{Field: FieldPaperLink, Label: pick(labels.PaperLink, DefaultPaperLinkLabel)},
	}
}

// compileSection builds the labeled-section pattern. The year field is
// constrained to exactly four digits; every other field captures free
// text up to the next top-level heading or end of document.
func compileSection(s Section) (*regexp.Regexp, error) {
	capture := `(.+?)`
	if s.Field == FieldYear {
		capture = `(\d{4})`
	}
	pattern := `(?is)##\s*` + s.Label + `\s*[:：]\s*` + capture + `\s*(?:\n##|\z)`
	return regexp.Compile(pattern)
}

// Sections matches every configured section against doc and returns a
// field → captured-text map. Fields without a match are absent; fields
// whose pattern failed to compile map to the "parse error" sentinel.
func (e *Extractor) Sections(doc string) map[string]string {
	out := make(map[string]string, len(e.sections))
	for _, s := range e.sections {
		if s.re == nil {
			out[s.field] = types.ParseError
			continue
		}
		if m := s.re.FindStringSubmatch(doc); m != nil {
			out[s.field] = strings.TrimSpace(m[1])
		}
	}
	return out
}

// Extract parses readme into a PaperRecord, using repo for venue
// inference when the venue section is missing.
func (e *Extractor) Extract(readme string, repo types.RepoSummary) types.PaperRecord {
	matched := e.Sections(readme)
	field := func(name string) string {
		if v, ok := matched[name]; ok {
			return v
		}
		return types.NotProvided
	}

	rec := types.PaperRecord{
		Title:     field(FieldTitle),
		Authors:   field(FieldAuthors),
		Venue:     field(FieldVenue),
		Year:      field(FieldYear),
		PaperLink: field(FieldPaperLink),
	}

	if rec.Venue == types.NotProvided || rec.Venue == types.ParseError {
		rec.Venue = e.inferVenue(repo.Description)
	}
	return rec
}

// inferVenue scans the repository description for the first target
// venue abbreviation, case-insensitively. First match wins; no match
// yields the generic sentinel.
func (e *Extractor) inferVenue(description string) string {
	desc := strings.ToLower(description)
	for _, venue := range e.venues {
		if strings.Contains(desc, venue) {
			return strings.ToUpper(venue)
		}
	}
	return types.OtherVenue
}
