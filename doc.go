// Package recfmt serializes flat records into several text formats through a
// pluggable registry.
//
// A [Record] is an ordered set of named string fields. A [Registry] maps a
// [Format] key to a [Serializer], which builds a format-specific
// representation of a record, renders it to text and flattens it back into a
// header and values. The built-in formats are JSON, XML, YAML, FRAME and TOML:
//
//	reg := recfmt.NewDefaultRegistry()
//	res, err := reg.Create(recfmt.JSON, rec)
//	text, err := res.Stringify()
//	header, values := res.Flatten()
//
// # Serializers
//
// The [Serializer] interface is the only requirement for a format. An
// optional interface adds a capability:
//
//   - [Merger] → [Result.Merge] concatenates results row-wise
//
// Flatten output does not depend on the format: every built-in serializer
// returns the record's field names and values in input order, so display code
// can switch formats freely.
//
// # JSON
//
// Fields keep their input order. Compact output uses ", " and ": " separators.
// Use [WithJSONIndent] for one field per line.
//
// # XML
//
// Each record becomes a root element (default "record") with one child per
// field and a synthetic id attribute from an [IDGenerator]. The default
// generator returns random UUIDs; inject a fixed one with [WithIDGenerator]
// for reproducible output. Field names must be valid element names.
//
// # YAML
//
// A block mapping. Keys are written sorted by default; [WithYAMLSortKeys]
// keeps input order instead.
//
// # FRAME
//
// A text table with one row per record and a zero-based index column.
// Results merge: a.Merge(b) holds the rows of a followed by those of b.
// Flatten reports the first row.
//
// # TOML
//
// A flat table with keys in ascending order.
//
// # Batches
//
// [Registry.CreateSeq] and [Registry.CreateAll] create results one record at
// a time so one bad record does not affect the others.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnknownFormat]: no serializer is registered for the key
//     ([*UnknownFormatError] carries it)
//   - [ErrSerialization]: a representation could not be rendered
//     ([*SerializationError])
//   - [ErrNotMergeable]: the results cannot be merged
//   - [ErrUnexpectedRepresentation]: a serializer got a value it did not build
package recfmt
