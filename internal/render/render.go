// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats paper metadata into markdown table rows and
// splices them into the summary document's managed table region. The
// region is bounded by the literal table header and the next top-level
// heading; bytes outside it are never touched.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/robosu12/SLAM-daily-update/pkg/types"
)

// DefaultTableHeader is the literal header line pair that anchors the
// managed table. Changing it orphans any previously managed table, so
// treat it as part of the document format.
const DefaultTableHeader = "| 标题 | 作者 | 会议/期刊 | 年份 | 代码仓库 | 论文链接 |\n|------|------|-----------|------|----------|----------|"

// Scaffold for a brand-new summary document.
const (
	docTitle       = "# SLAM开源论文合集"
	sectionHeading = "## 最新开源论文"
)

// headingPrefix marks the boundary after the managed table: the next
// line that starts a top-level section.
const headingPrefix = "\n## "

// Row renders one table row from an extracted record and its repository.
func Row(rec types.PaperRecord, repo types.RepoSummary) string {
	return fmt.Sprintf("| %s | %s | %s | %s | [%s](%s) | [%s](%s) |",
		rec.Title, rec.Authors, rec.Venue, rec.Year,
		repo.FullName, repo.HTMLURL,
		rec.PaperLink, rec.PaperLink)
}

// Splice returns content with the managed table replaced by header
// followed by rows. When the header is absent no managed table exists
// yet, so a brand-new document is built and any prior content is
// discarded. When present, everything from the header through the next
// top-level heading (or end of document) is replaced; the rest of the
// document is preserved byte-for-byte.
func Splice(content, header string, rows []string) string {
	body := header + "\n" + strings.Join(rows, "\n")

	start := strings.Index(content, header)
	if start == -1 {
		return docTitle + "\n\n" + sectionHeading + "\n" + body
	}

	end := strings.Index(content[start:], headingPrefix)
	if end == -1 {
		end = len(content)
	} else {
		end += start
	}
	return content[:start] + body + content[end:]
}

// Write updates the summary document at path with the given rows. The
// whole file is read (absent is treated as empty), spliced, and written
// back in one piece; a failed read or write leaves the document as it
// was and is reported to the caller.
func Write(path, header string, rows []string) error {
	content := ""
	data, err := os.ReadFile(path)
	if err == nil {
		content = string(data)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("reading summary %s: %w", path, err)
	}

	updated := Splice(content, header, rows)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing summary %s: %w", path, err)
	}
	return nil
}
