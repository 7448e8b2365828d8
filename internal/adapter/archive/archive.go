// Package archive writes fare reports as JSON files, one per report.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/logger"
)

const timestampLayout = "20060102_150405"

type FileArchive struct {
	dir string
	log logger.Logger
}

func New(dir string, log logger.Logger) *FileArchive {
	return &FileArchive{dir: dir, log: log}
}

// FileName returns fare_{place}_{destination}_{YYYYmmdd_HHMMSS}.json for report.
func FileName(report models.FareReport) string {
	return fmt.Sprintf("fare_%s_%s_%s.json",
		sanitize(report.Request.OriginName()),
		sanitize(report.Request.DestinationName()),
		report.CapturedAt.Format(timestampLayout),
	)
}

// path separators and NUL would let a place name escape the archive dir
var unsafeChars = strings.NewReplacer("/", "_", `\`, "_", "\x00", "", "..", "_")

func sanitize(name string) string {
	return unsafeChars.Replace(name)
}

// Save writes the report envelope, indented, into the archive directory.
// A second report for the same trip within the same second replaces the first.
func (a *FileArchive) Save(ctx context.Context, report models.FareReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("archive: create dir: %w", err)
	}

	data, err := json.MarshalIndent(models.NewFareEnvelope(report), "", "  ")
	if err != nil {
		return fmt.Errorf("archive: marshal report: %w", err)
	}

	path := filepath.Join(a.dir, FileName(report))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("archive: write %s: %w", path, err)
	}

	a.log.Debug(ctx, "fare report archived", "path", path)
	return nil
}
