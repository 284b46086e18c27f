package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

// WithLogger returns ctx carrying logger. A nil logger selects the default.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger carried by ctx, or the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, _ := ctx.Value(ctxKey{}).(*zerolog.Logger); logger != nil {
			return logger
		}
	}
	return Default()
}

// WithFields returns ctx whose logger adds fields to every entry.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	c := FromContext(ctx).With()
	for k, v := range fields {
		c = addField(c, k, v)
	}
	logger := c.Logger()
	return WithLogger(ctx, &logger)
}

// WithField is WithFields for a single field.
func WithField(ctx context.Context, key string, value any) context.Context {
	logger := addField(FromContext(ctx).With(), key, value).Logger()
	return WithLogger(ctx, &logger)
}

// WithDataset tags entries with a manifest dataset.
func WithDataset(ctx context.Context, dataset string) context.Context {
	return WithField(ctx, "dataset", dataset)
}

// WithTable tags entries with a table name.
func WithTable(ctx context.Context, table string) context.Context {
	return WithField(ctx, "table", table)
}

// WithSource tags entries with a metadata source.
func WithSource(ctx context.Context, source string) context.Context {
	return WithField(ctx, "source", source)
}

// WithOperation tags entries with the running operation.
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithField(ctx, "operation", operation)
}
