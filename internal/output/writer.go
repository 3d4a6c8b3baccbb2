package output

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/ir"
)

// TriplesFile is the name of the triple file inside the output directory.
const TriplesFile = "data.scs"

// Render writes the triple file content of doc to w.
func Render(w io.Writer, doc ir.Document) error {
	bw := bufio.NewWriter(w)
	for i, t := range doc.Triples {
		if path, ok := doc.Provenance[i]; ok {
			if _, err := fmt.Fprintf(bw, "/* --- %s --- */\n", path); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(t.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Write removes dir and recreates it holding doc. Payloads are written
// verbatim.
func Write(dir string, doc ir.Document) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to clear output directory: %w", err)
	}
	linkDir := filepath.Join(dir, ir.LinkDir)
	if err := os.MkdirAll(linkDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeTriples(filepath.Join(dir, TriplesFile), doc); err != nil {
		return err
	}
	for _, l := range doc.Links {
		path := filepath.Join(linkDir, strconv.Itoa(l.Seq))
		if err := os.WriteFile(path, []byte(l.Payload), 0o644); err != nil {
			return fmt.Errorf("failed to write link %s: %w", l.ID, err)
		}
	}

	slog.Info("wrote output", "dir", dir, "triples", len(doc.Triples), "links", len(doc.Links))
	return nil
}

func writeTriples(path string, doc ir.Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := Render(f, doc); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
