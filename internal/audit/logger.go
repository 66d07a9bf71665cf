package audit

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/maisonbelle/salon-admin/pkg/logging"
)

// Logger writes audit events to the structured log. The gateway has no
// database of its own, so the trail lives in the log stream.
type Logger struct {
	log *logging.Logger
}

func New(log *logging.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Log(
	actor string,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	l.log.Info("audit",
		"event_id", uuid.NewString(),
		"actor", actor,
		"action", action,
		"entity", entity,
		"entity_id", entityID,
		"metadata", metaJSON,
	)

	return nil
}
