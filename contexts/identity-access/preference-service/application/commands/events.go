package commands

import (
	"encoding/json"
	"time"

	"madison/contexts/identity-access/preference-service/ports"
)

func newPreferenceEnvelope(
	eventID string,
	eventType string,
	subject string,
	occurredAt time.Time,
	payload map[string]any,
) (ports.EventEnvelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:       eventID,
		EventType:     eventType,
		OccurredAt:    occurredAt,
		SourceService: "identity-access/preference-service",
		SchemaVersion: 1,
		PartitionKey:  subject,
		Data:          data,
	}, nil
}
