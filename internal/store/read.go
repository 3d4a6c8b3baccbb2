package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/ir"
)

// ErrRunNotFound is returned when a run ID is not in the index.
var ErrRunNotFound = errors.New("run not found")

// ReadRun returns the run row for id.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var r Run
	err := s.db.QueryRowContext(ctx, `
		SELECT id, input_dir, output_dir, converter_version, format_version, digest, triple_count, link_count, failed_files
		FROM runs
		WHERE id = ?
	`, id).Scan(
		&r.ID,
		&r.InputDir,
		&r.OutputDir,
		&r.ConverterVersion,
		&r.FormatVersion,
		&r.Digest,
		&r.TripleCount,
		&r.LinkCount,
		&r.FailedFiles,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %s: %w", id, err)
	}
	return r, nil
}

// ReadFiles returns the files of a run in conversion order.
//
// Returns an empty slice (not nil) if the run has no files.
func (s *Store) ReadFiles(ctx context.Context, runID string) ([]FileRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, triple_offset, triple_count, error
		FROM files
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query files: %w", err)
	}
	defer rows.Close()

	files := []FileRecord{}
	for rows.Next() {
		var f FileRecord
		if err := rows.Scan(&f.Path, &f.Offset, &f.Triples, &f.Error); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate files: %w", err)
	}
	return files, nil
}

// ReadTriples returns the triple sequence of a run in emission order.
func (s *Store) ReadTriples(ctx context.Context, runID string) ([]ir.Triple, error) {
	return s.queryTriples(ctx, `
		SELECT subject, predicate, object
		FROM triples
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
}

// TriplesAbout returns the triples of a run whose subject or object is id,
// in emission order.
func (s *Store) TriplesAbout(ctx context.Context, runID string, id ir.Identifier) ([]ir.Triple, error) {
	return s.queryTriples(ctx, `
		SELECT subject, predicate, object
		FROM triples
		WHERE run_id = ? AND (subject = ? OR object = ?)
		ORDER BY seq ASC
	`, runID, string(id), string(id))
}

func (s *Store) queryTriples(ctx context.Context, query string, args ...any) ([]ir.Triple, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query triples: %w", err)
	}
	defer rows.Close()

	triples := []ir.Triple{}
	for rows.Next() {
		var subj, pred, obj string
		if err := rows.Scan(&subj, &pred, &obj); err != nil {
			return nil, fmt.Errorf("scan triple: %w", err)
		}
		triples = append(triples, ir.Triple{
			Subject:   ir.Identifier(subj),
			Predicate: ir.Identifier(pred),
			Object:    ir.Identifier(obj),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate triples: %w", err)
	}
	return triples, nil
}

// ReadLinks returns the links of a run in creation order.
func (s *Store) ReadLinks(ctx context.Context, runID string) ([]ir.Link, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, payload
		FROM links
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	links := []ir.Link{}
	for rows.Next() {
		var l ir.Link
		var id string
		if err := rows.Scan(&id, &l.Seq, &l.Payload); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		l.ID = ir.Identifier(id)
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate links: %w", err)
	}
	return links, nil
}

// RunsWithPayload returns the IDs of runs holding a link whose payload
// digest equals digest, oldest first.
func (s *Store) RunsWithPayload(ctx context.Context, digest string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT run_id
		FROM links
		WHERE digest = ?
		ORDER BY run_id COLLATE BINARY ASC
	`, digest)
	if err != nil {
		return nil, fmt.Errorf("query links by digest: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan run id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run ids: %w", err)
	}
	return ids, nil
}
