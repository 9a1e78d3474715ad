// internal/pipeline/pipeline.go
//
// Ties discovery, mapping, and CSV output into one sequential run. A run
// ends in one of three ways: the source folder does not exist, no rows were
// produced, or the CSV was written. Individual files that fail to parse
// become warnings, never run failures.

package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/ResourceInteractive/sfmc-devtools-consolidate/internal/asset"
	"github.com/ResourceInteractive/sfmc-devtools-consolidate/internal/csvout"
	"github.com/ResourceInteractive/sfmc-devtools-consolidate/internal/discover"
	"github.com/ResourceInteractive/sfmc-devtools-consolidate/internal/logbook"
)

// ErrFolderNotFound indicates the resolved source path does not exist or is
// not a directory. Nothing is processed.
var ErrFolderNotFound = errors.New("pipeline: source folder not found")

// ErrNoRows indicates discovery and mapping produced no records, so no CSV
// was written.
var ErrNoRows = errors.New("pipeline: no json files produced any rows")

// Warning records one file that contributed no rows because it could not be
// read or parsed.
type Warning struct {
	File string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.File, w.Err)
}

// Summary describes a completed run.
type Summary struct {
	SourceDir  string
	OutputPath string
	FilesFound int
	FilesRead  int
	Rows       int
	Warnings   []Warning
}

// Runner executes consolidation runs, reporting progress to a logbook.
type Runner struct {
	log *logbook.Logbook
}

// New creates a Runner. The logbook may be nil, in which case nothing is
// logged.
func New(log *logbook.Logbook) *Runner {
	return &Runner{log: log}
}

// Run walks sourceDir, flattens every parseable .json file, and writes the
// aggregated rows to output (normalized to a .csv extension). The returned
// Summary is valid whenever err is nil; ErrFolderNotFound and ErrNoRows
// carry a partial summary for reporting.
func (r *Runner) Run(sourceDir, output string) (Summary, error) {
	sum := Summary{SourceDir: sourceDir}

	info, err := os.Stat(sourceDir)
	if err != nil || !info.IsDir() {
		r.logWarn("source folder missing: %s", sourceDir)
		return sum, fmt.Errorf("%w: %s", ErrFolderNotFound, sourceDir)
	}

	files := discover.Files(sourceDir)
	sum.FilesFound = len(files)

	var records []asset.Record
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			sum.Warnings = append(sum.Warnings, Warning{File: path, Err: err})
			r.logWarn("skipping %s: %v", path, err)
			continue
		}
		doc, err := asset.ParseDocument(data)
		if err != nil {
			sum.Warnings = append(sum.Warnings, Warning{File: path, Err: err})
			r.logWarn("skipping %s: %v", path, err)
			continue
		}
		sum.FilesRead++
		records = append(records, asset.MapDocument(doc)...)
	}

	if len(records) == 0 {
		r.logInfo("no rows produced from %s (%d files found)", sourceDir, sum.FilesFound)
		return sum, ErrNoRows
	}

	path, err := csvout.Write(records, output)
	if err != nil {
		r.logError("write failed: %v", err)
		return sum, fmt.Errorf("pipeline: write output: %w", err)
	}
	sum.OutputPath = path
	sum.Rows = len(records)
	r.logInfo("consolidated %d of %d files into %s (%d rows, %d skipped)",
		sum.FilesRead, sum.FilesFound, path, sum.Rows, len(sum.Warnings))
	return sum, nil
}

func (r *Runner) logInfo(format string, args ...any) {
	if r.log != nil {
		r.log.Info(format, args...)
	}
}

func (r *Runner) logWarn(format string, args ...any) {
	if r.log != nil {
		r.log.Warn(format, args...)
	}
}

func (r *Runner) logError(format string, args ...any) {
	if r.log != nil {
		r.log.Error(format, args...)
	}
}
