package models

// AuditEvent is published to Kafka on every record mutation.
type AuditEvent struct {
	EventID   string `json:"event_id"`            // Unique event identifier
	Timestamp int64  `json:"timestamp"`           // Unix seconds
	Entity    string `json:"entity"`              // user, vm, webhosting_user
	Action    string `json:"action"`              // created, bulk_created, updated, deleted, imported
	RecordID  int64  `json:"record_id,omitempty"` // Affected row id, when a single row is involved
	Actor     string `json:"actor,omitempty"`     // Phone of the operator, when known
}
