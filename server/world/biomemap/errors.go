package biomemap

import (
	"fmt"
	"log/slog"

	"github.com/df-mc/cubicbiome/server/world/biome"
	"github.com/google/uuid"
)

// Diagnostic categories of an InvalidBiomeError, naming the operation that failed.
const (
	CategoryBiomeBlock    = "BiomeBlock"
	CategoryCacheBlock    = "BiomeCacheBlock"
	CategoryRawBiomeBlock = "RawBiomeBlock"
	CategoryDownfallBlock = "DownfallBlock"
	CategoryLayer         = "Layer"
	CategorySpawnSearch   = "SpawnSearch"
)

const invalidBiomeDescription = "Invalid Biome id"

// InvalidBiomeError is returned when a generation layer produces an identifier that is not registered. It
// carries the context of the query that failed. Fields that do not apply to the failing operation are
// left zero and omitted from its Record.
type InvalidBiomeError struct {
	// Category names the failing operation, one of the Category constants.
	Category string
	// Resolver is the identity of the resolver that ran the query.
	Resolver uuid.UUID
	// Layer is the name of the layer that produced the identifier.
	Layer string
	// X, Z, Width and Length describe the queried rectangle. For spatial searches X and Z hold the
	// centre and Radius the radius.
	X, Z, Width, Length int
	Radius              int
	// BufferSize is the size of the output buffer at the time of failure.
	BufferSize int
	// Index is the offset of the identifier in the layer's grid.
	Index int
	// ID is the offending identifier.
	ID biome.ID
	// Allowed is the set of categories a spatial search was testing for.
	Allowed CategorySet
	// Err is the error returned by the registry.
	Err error
}

// Error ...
func (e *InvalidBiomeError) Error() string {
	return fmt.Sprintf("%s: %v at index %d of %v", e.Category, e.Err, e.Index, Region{X: e.X, Z: e.Z, Width: e.Width, Length: e.Length})
}

// Unwrap returns the registry error, so that errors.Is(err, biome.ErrInvalidID) holds.
func (e *InvalidBiomeError) Unwrap() error {
	return e.Err
}

// Field is a single entry of a diagnostic Record.
type Field struct {
	Key   string
	Value any
}

// Record is the structured form of a failure, handed to a DiagnosticSink.
type Record struct {
	Description string
	Category    string
	Fields      []Field
}

// Record returns the diagnostic record of the error.
func (e *InvalidBiomeError) Record() Record {
	fields := []Field{{"resolver", e.Resolver.String()}}
	if e.Layer != "" {
		fields = append(fields, Field{"layer", e.Layer})
	}
	fields = append(fields, Field{"biome id", int(e.ID)}, Field{"index", e.Index})
	if e.BufferSize > 0 {
		fields = append(fields, Field{"buffer size", e.BufferSize})
	}
	fields = append(fields, Field{"x", e.X}, Field{"z", e.Z})
	switch e.Category {
	case CategoryLayer, CategorySpawnSearch:
		fields = append(fields, Field{"radius", e.Radius}, Field{"allowed", e.Allowed.String()})
	default:
		fields = append(fields, Field{"w", e.Width}, Field{"h", e.Length})
	}
	return Record{Description: invalidBiomeDescription, Category: e.Category, Fields: fields}
}

// LogValue implements slog.LogValuer.
func (e *InvalidBiomeError) LogValue() slog.Value {
	rec := e.Record()
	attrs := make([]slog.Attr, 0, len(rec.Fields)+1)
	attrs = append(attrs, slog.String("category", rec.Category))
	for _, f := range rec.Fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	return slog.GroupValue(attrs...)
}

// DiagnosticSink receives the record of every failed query before the error is returned to the caller.
type DiagnosticSink interface {
	Report(rec Record)
}

// DiagnosticSinkFunc is a function implementing DiagnosticSink.
type DiagnosticSinkFunc func(rec Record)

// Report ...
func (f DiagnosticSinkFunc) Report(rec Record) {
	f(rec)
}
