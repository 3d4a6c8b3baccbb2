package ir

// Version constants for the triple format and converter.
const (
	// FormatVersion is the version of the data.scs layout.
	FormatVersion = "1"

	// ConverterVersion is the SCs converter version.
	ConverterVersion = "0.1.0"
)
