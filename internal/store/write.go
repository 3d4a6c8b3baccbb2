package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/ir"
)

// Run describes one conversion batch.
type Run struct {
	ID               string
	InputDir         string
	OutputDir        string
	ConverterVersion string
	FormatVersion    string
	Digest           string // ir.DocumentDigest of the triple sequence
	TripleCount      int
	LinkCount        int
	FailedFiles      int
}

// FileRecord is one input file of a run. Error is empty for files that
// converted cleanly.
type FileRecord struct {
	Path    string
	Offset  int
	Triples int
	Error   string
}

// NewRun builds the run row for doc, filling in versions, counts and the
// document digest.
func NewRun(id, inputDir, outputDir string, doc ir.Document, failed int) Run {
	return Run{
		ID:               id,
		InputDir:         inputDir,
		OutputDir:        outputDir,
		ConverterVersion: ir.ConverterVersion,
		FormatVersion:    ir.FormatVersion,
		Digest:           ir.DocumentDigest(doc.Triples),
		TripleCount:      len(doc.Triples),
		LinkCount:        len(doc.Links),
		FailedFiles:      failed,
	}
}

// WriteRun records a run with its files, triples and links in a single
// transaction. Writing a run ID that already exists fails.
func (s *Store) WriteRun(ctx context.Context, run Run, files []FileRecord, doc ir.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, input_dir, output_dir, converter_version, format_version, digest, triple_count, link_count, failed_files)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.InputDir,
		run.OutputDir,
		run.ConverterVersion,
		run.FormatVersion,
		run.Digest,
		run.TripleCount,
		run.LinkCount,
		run.FailedFiles,
	); err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	if err := writeFiles(ctx, tx, run.ID, files); err != nil {
		return err
	}
	if err := writeTriples(ctx, tx, run.ID, doc.Triples); err != nil {
		return err
	}
	if err := writeLinks(ctx, tx, run.ID, doc.Links); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: commit: %w", err)
	}
	return nil
}

func writeFiles(ctx context.Context, tx *sql.Tx, runID string, files []FileRecord) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO files (run_id, seq, path, triple_offset, triple_count, error)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write files: %w", err)
	}
	defer stmt.Close()

	for i, f := range files {
		if _, err := stmt.ExecContext(ctx, runID, i, f.Path, f.Offset, f.Triples, f.Error); err != nil {
			return fmt.Errorf("write file %s: %w", f.Path, err)
		}
	}
	return nil
}

func writeTriples(ctx context.Context, tx *sql.Tx, runID string, triples []ir.Triple) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO triples (run_id, seq, subject, predicate, object)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write triples: %w", err)
	}
	defer stmt.Close()

	for i, t := range triples {
		if _, err := stmt.ExecContext(ctx, runID, i, string(t.Subject), string(t.Predicate), string(t.Object)); err != nil {
			return fmt.Errorf("write triple %d: %w", i, err)
		}
	}
	return nil
}

func writeLinks(ctx context.Context, tx *sql.Tx, runID string, links []ir.Link) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO links (run_id, seq, id, digest, payload)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write links: %w", err)
	}
	defer stmt.Close()

	for _, l := range links {
		if _, err := stmt.ExecContext(ctx, runID, l.Seq, string(l.ID), ir.LinkDigest(l.Payload), l.Payload); err != nil {
			return fmt.Errorf("write link %s: %w", l.ID, err)
		}
	}
	return nil
}
