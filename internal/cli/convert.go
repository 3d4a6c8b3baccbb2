package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/compiler"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/config"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/ir"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/metrics"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/output"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/store"
)

// Summary is the result line of a run.
type Summary struct {
	Files    int    `json:"files"`
	Failed   int    `json:"failed"`
	Warnings int    `json:"warnings"`
	Triples  int    `json:"triples"`
	Links    int    `json:"links"`
	Output   string `json:"output"`

	// Known counts payloads an earlier indexed run already holds.
	Known int `json:"known_payloads,omitempty"`
}

func (s Summary) String() string {
	line := fmt.Sprintf("✓ Converted %d file(s) into %s: %d triple(s), %d link(s)",
		s.Files-s.Failed, s.Output, s.Triples, s.Links)
	if s.Failed > 0 {
		line += fmt.Sprintf(", %d file(s) skipped with errors", s.Failed)
	}
	if s.Warnings > 0 {
		line += fmt.Sprintf(", %d content warning(s)", s.Warnings)
	}
	return line
}

func runConvert(cmd *cobra.Command, ids RunIDGenerator, inputDir, outputDir string) error {
	formatter := &OutputFormatter{Format: "text", Writer: cmd.OutOrStdout()}

	cfg, err := config.Load()
	if err != nil {
		return outputError(formatter, ErrCodeConfig, err.Error())
	}
	formatter.Format = cfg.LogFormat

	runID := ids.Generate()
	logger := newLogger(cfg, cmd.ErrOrStderr()).With("run", runID)
	slog.SetDefault(logger)

	paths, err := FindSourceFiles(inputDir, cfg.Extension, cfg.Exclude)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			return outputError(formatter, loadErr.Code, loadErr.Message)
		}
		return outputError(formatter, ErrCodeGeneric, err.Error())
	}
	if len(paths) == 0 {
		logger.Warn("no source files found", "dir", inputDir, "extension", cfg.Extension)
	}
	logger.Info("converting", "dir", inputDir, "files", len(paths))

	start := time.Now()
	c, report, err := compiler.Run(cmd.Context(), paths, cmd.ErrOrStderr(),
		compiler.WithMaxDepth(cfg.MaxDepth),
		compiler.WithRollback(cfg.Rollback()),
		compiler.WithLogger(logger),
	)
	if err != nil {
		logger.Error("conversion aborted", "error", err)
		return outputError(formatter, ErrCodeConvert, err.Error())
	}

	doc := c.Document()
	if err := output.Write(outputDir, doc); err != nil {
		return outputError(formatter, ErrCodeWriteFailed, err.Error())
	}

	var known int
	if cfg.IndexDB != "" {
		run := store.NewRun(runID, inputDir, outputDir, doc, report.Failed)
		known, err = indexRun(cmd.Context(), cfg.IndexDB, run, report, doc)
		if err != nil {
			return outputError(formatter, ErrCodeIndexFailed, err.Error())
		}
		logger.Info("indexed run", "db", cfg.IndexDB, "known_payloads", known)
	}

	if cfg.MetricsFile != "" {
		m := metrics.New()
		m.ObserveReport(report)
		m.ObserveRun(time.Since(start), time.Now())
		if err := m.WriteFile(cfg.MetricsFile); err != nil {
			return outputError(formatter, ErrCodeWriteFailed, err.Error())
		}
	}

	return formatter.Success(runID, Summary{
		Files:    len(report.Files),
		Failed:   report.Failed,
		Warnings: report.Warnings,
		Triples:  len(doc.Triples),
		Links:    len(doc.Links),
		Output:   outputDir,
		Known:    known,
	})
}

// indexRun records the run in the index at path and returns how many of
// its link payloads were already held by earlier runs.
func indexRun(ctx context.Context, path string, run store.Run, report *compiler.Report, doc ir.Document) (int, error) {
	s, err := store.Open(path)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	known := 0
	for _, l := range doc.Links {
		runs, err := s.RunsWithPayload(ctx, ir.LinkDigest(l.Payload))
		if err != nil {
			return 0, err
		}
		if len(runs) > 0 {
			known++
		}
	}

	files := make([]store.FileRecord, 0, len(report.Files))
	for _, f := range report.Files {
		rec := store.FileRecord{Path: f.Path, Offset: f.Offset, Triples: f.Triples}
		if f.Err != nil {
			rec.Error = f.Err.Error()
		}
		files = append(files, rec)
	}
	if err := s.WriteRun(ctx, run, files, doc); err != nil {
		return 0, err
	}
	return known, nil
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// outputError reports a command error and returns it with exit code 2.
func outputError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message), nil)
}
