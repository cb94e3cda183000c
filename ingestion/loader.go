package ingestion

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/timeoff/core"
)

// Loader reads supported files from a data directory and splits them into
// document chunks.
type Loader struct {
	dataDir          string
	supportedFormats map[string]struct{}
	splitter         *Splitter
	logger           *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader) error

// WithLoaderLogger sets a custom logger for the loader.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a loader for the given directory. Formats are file
// extensions without the leading dot, e.g. "txt", "md".
func NewLoader(dataDir string, formats []string, splitter *Splitter, opts ...LoaderOption) (*Loader, error) {
	if splitter == nil {
		return nil, errors.New("splitter required")
	}

	supported := make(map[string]struct{}, len(formats))
	for _, format := range formats {
		supported[strings.ToLower(strings.TrimPrefix(format, "."))] = struct{}{}
	}

	l := &Loader{
		dataDir:          dataDir,
		supportedFormats: supported,
		splitter:         splitter,
		logger:           slog.Default().With("component", "loader"),
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// LoadDocuments walks the data directory recursively and splits every
// supported file into chunks. A missing directory yields no chunks rather
// than an error, so callers can fall back to sample documents. Files that
// fail to read are logged and skipped.
func (l *Loader) LoadDocuments() ([]*core.DocumentChunk, error) {
	if _, err := os.Stat(l.dataDir); err != nil {
		if os.IsNotExist(err) {
			l.logger.Warn("data directory does not exist", "dir", l.dataDir)
			return nil, nil
		}
		return nil, err
	}

	var chunks []*core.DocumentChunk

	err := filepath.WalkDir(l.dataDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		fileType := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if _, ok := l.supportedFormats[fileType]; !ok {
			return nil
		}

		fileChunks, err := l.loadFile(path, fileType)
		if err != nil {
			l.logger.Error("error loading file", "file", path, "err", err)
			return nil
		}

		l.logger.Info("loaded document", "file", filepath.Base(path), "chunks", len(fileChunks))
		chunks = append(chunks, fileChunks...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return chunks, nil
}

func (l *Loader) loadFile(path, fileType string) ([]*core.DocumentChunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	source, err := filepath.Rel(l.dataDir, path)
	if err != nil {
		source = filepath.Base(path)
	}

	return SplitDocument(l.splitter, source, fileType, string(data)), nil
}

// SplitDocument splits one document's text into chunks tagged with their
// source file and position.
func SplitDocument(splitter *Splitter, source, fileType, text string) []*core.DocumentChunk {
	pieces := splitter.Split(text)
	chunks := make([]*core.DocumentChunk, 0, len(pieces))
	for i, piece := range pieces {
		chunks = append(chunks, &core.DocumentChunk{
			SourceFile: source,
			Seq:        i,
			FileType:   fileType,
			Content:    piece,
		})
	}
	return chunks
}

// SampleDocuments returns built-in policy documents for demos and tests,
// split with the given splitter.
func SampleDocuments(splitter *Splitter) []*core.DocumentChunk {
	docs := []struct {
		source  string
		content string
	}{
		{"policy_overview.txt", samplePolicyOverview},
		{"vacation_process.txt", sampleVacationProcess},
		{"leave_balance.txt", sampleLeaveBalance},
		{"holiday_schedule.txt", sampleHolidaySchedule},
		{"sick_leave.txt", sampleSickLeave},
	}

	var chunks []*core.DocumentChunk
	for _, doc := range docs {
		chunks = append(chunks, SplitDocument(splitter, doc.source, "txt", doc.content)...)
	}
	return chunks
}

const samplePolicyOverview = `Time-Off Policy Overview

Employees are entitled to various types of leave including:
- Vacation/PTO: 20 days per year for full-time employees
- Sick Leave: 10 days per year
- Personal Days: 5 days per year
- Holidays: Company observes 10 federal holidays

All time-off requests must be submitted through the HR system at least 2 weeks in advance for vacation and 24 hours for sick leave.`

const sampleVacationProcess = `Vacation Request Process

1. Log into the HR system
2. Navigate to Time Off > Request Time Off
3. Select vacation as the time-off type
4. Choose start and end dates
5. Add comments explaining the reason
6. Submit for manager approval

Managers have 5 business days to approve or deny requests.`

const sampleLeaveBalance = `Leave Balance Calculation

PTO accrual rates:
- 0-2 years: 15 days/year
- 3-5 years: 20 days/year
- 6-10 years: 25 days/year
- 10+ years: 30 days/year

Unused PTO can be carried over up to 5 days to the next year.
Maximum PTO balance cannot exceed 30 days.`

const sampleHolidaySchedule = `Holiday Schedule 2024

Company observes the following holidays:
- New Year's Day: January 1
- Martin Luther King Jr. Day: January 15
- Memorial Day: May 27
- Independence Day: July 4
- Labor Day: September 2
- Thanksgiving Day: November 28
- Christmas Day: December 25

Employees receive holiday pay for these dates.`

const sampleSickLeave = `Sick Leave Policy

Sick leave can be used for:
- Personal illness or injury
- Medical appointments
- Caring for sick family members

Documentation may be required for absences longer than 3 consecutive days.
Sick leave does not accrue and is not paid out upon termination.`
