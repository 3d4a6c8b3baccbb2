// Package output serializes a conversion result to disk.
//
// The output directory holds data.scs, one "S | P | O;;" line per triple
// with a "/* --- <path> --- */" comment before the first triple of each
// source file, and a data/ subdirectory with one file per link named by the
// link's numeric suffix.
package output
