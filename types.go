package featstore

// UnknownPolicy controls how keys absent from the schema are handled on decode.
type UnknownPolicy int

const (
	UnknownStrict UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                       // Drop unknown keys, reporting them as warnings.
)

// Severity expresses how a recoverable condition is reported.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseOpt bundles decoding options. The zero value is strict about unknown
// keys but ignores duplicate keys (the last occurrence wins); DefaultParseOpt
// rejects duplicates as well.
type ParseOpt struct {
	Unknown     UnknownPolicy
	OnDuplicate Severity
	MaxBytes    int64 // 0 means unlimited
	FailFast    bool  // stop at the first issue instead of collecting all of them
}

// DefaultParseOpt returns the options used by bindings unless overridden.
func DefaultParseOpt() ParseOpt {
	return ParseOpt{Unknown: UnknownStrict, OnDuplicate: Error}
}

// FloatStyle selects how floating-point parameters are written.
type FloatStyle int

const (
	// FloatCanonical writes whole values as "N." and all others in
	// sixteen-digit scientific form.
	FloatCanonical FloatStyle = iota
	// FloatCompact writes the shortest text that round-trips at the field's
	// declared precision.
	FloatCompact
)

// EncodeOpt bundles encoding options.
type EncodeOpt struct {
	FloatStyle FloatStyle
}
