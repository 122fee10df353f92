package code_analyzer

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codetutor-ai/codetutor/code_analyzer/models"
)

// CollectFiles walks the resolved root and returns a record for every
// regular file that survives the size ceiling and the exclude-then-include
// pattern policy. Per-file failures (stat errors, unreadable files) are
// non-fatal; the affected file is silently omitted.
//
// The result is sorted lexicographically by relative path. Two runs over an
// identical tree enumerate files in identical order; callers rely on this.
func CollectFiles(ctx context.Context, root string, includePatterns, excludePatterns []string, maxFileSize int64) ([]models.FileRecord, error) {
	includeMatchers := CompilePatterns(includePatterns)
	excludeMatchers := CompilePatterns(excludePatterns)

	var records []models.FileRecord

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			// Unreadable directory or entry, skip it and keep walking.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() > maxFileSize {
			return nil
		}

		relativePath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		relativePath = strings.ReplaceAll(relativePath, "\\", "/")

		// Exclude patterns dominate: a match here wins over any include.
		if matchesAny(relativePath, excludeMatchers) {
			return nil
		}
		if !matchesAny(relativePath, includeMatchers) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}

		records = append(records, models.FileRecord{
			RelativePath: relativePath,
			Content:      strings.ToValidUTF8(string(content), ""),
			Size:         info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].RelativePath < records[j].RelativePath
	})

	return records, nil
}
