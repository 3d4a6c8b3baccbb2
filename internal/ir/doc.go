// Package ir provides the canonical triple representation produced by the
// SCs compiler.
//
// This package contains type definitions and naming rules only. All other
// internal packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - Triples are append-only; sequence order matters only for provenance
//   - Synthetic identifiers are numbered per category (set, ordered set,
//     arc, link) and never reused within one conversion context
//   - Explicit identifiers are NFC-normalized source text
package ir
