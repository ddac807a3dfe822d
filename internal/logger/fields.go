package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldWorkerID is the structured log field key for a worker profile id.
	FieldWorkerID = "worker_id"
	// FieldJobID is the structured log field key for a job posting id.
	FieldJobID = "job_id"
	// FieldDirection is the structured log field key for the query direction (jobs or workers).
	FieldDirection = "direction"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger is replaced by a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// PairFields returns the fields identifying a worker/job pair. Empty ids are skipped.
func PairFields(workerID, jobID string) []zap.Field {
	return StringFields(
		StringField{Key: FieldWorkerID, Value: workerID},
		StringField{Key: FieldJobID, Value: jobID},
	)
}

// OrNop returns the logger, or a no-op logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
