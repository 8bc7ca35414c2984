// Package report formats and persists the end-of-game summary.
package report

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/refuge/internal/entity"
	"github.com/samdwyer/refuge/internal/telemetry"
)

// Summary builds the one-line result for a finished game.
func Summary(name string, stats entity.Stats) string {
	return fmt.Sprintf("%s ended the game with %d gold and %d health.", name, stats.Gold, stats.Health)
}

// Reporter persists a summary line.
type Reporter interface {
	Save(ctx context.Context, summary string) error
	// Location names where the summary ends up, for display.
	Location() string
}

// FileReporter writes the summary as the whole content of a file,
// replacing whatever was there.
type FileReporter struct {
	Path string
}

// NewFileReporter creates a reporter writing to path.
func NewFileReporter(path string) *FileReporter {
	return &FileReporter{Path: path}
}

// Save overwrites the file with summary.
func (r *FileReporter) Save(ctx context.Context, summary string) error {
	_, span := telemetry.Tracer("report").Start(ctx, "report.save")
	defer span.End()
	span.SetAttributes(attribute.String("path", r.Path))

	if err := os.WriteFile(r.Path, []byte(summary), 0o644); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return fmt.Errorf("write results to %s: %w", r.Path, err)
	}
	return nil
}

// Location returns the file path.
func (r *FileReporter) Location() string {
	return r.Path
}
