// Package store provides an optional SQLite index of conversion runs.
//
// Each run records the files it read, the triple sequence it produced and
// the extracted link payloads, so the output of past batches can be queried
// without re-reading data.scs:
//   - Runs: one row per batch, keyed by a UUIDv7 run ID
//   - Files: every input file with its triple offset and any error
//   - Triples: the final triple sequence in emission order
//   - Links: payloads with their SHA-256 digest
//
// # Ordering
//
// All ordering uses the seq column (emission order), never row IDs or
// timestamps. Queries always ORDER BY seq ASC.
//
// # Versioning
//
// The schema version is kept in PRAGMA user_version. Open refuses an index
// stamped by a newer converter.
package store
