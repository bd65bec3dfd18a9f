package commands

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"

	"madison/contexts/ad-delivery/distribution-service/ports"
)

func newDistributionEnvelope(
	eventID string,
	eventType string,
	campaignID uint64,
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
		SourceService: "ad-delivery/distribution-service",
		SchemaVersion: 1,
		PartitionKey:  strconv.FormatUint(campaignID, 10),
		Data:          data,
	}, nil
}

func hashRequest(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
