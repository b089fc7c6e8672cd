package eventlog

// PayloadKeyAccountID is the payload field events are indexed by
const PayloadKeyAccountID = "account_id"

// DefaultListLimit caps queries that do not set a limit
const DefaultListLimit = 100

// Log messages - service events
const (
	LogMsgPayloadNotObject = "Event payload is not a JSON object, skipping log"
	LogMsgFailedToLogEvent = "Failed to log event to database"
	LogMsgEventLogged      = "Event logged to database"
	LogMsgSubscribed       = "Event log subscribed"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobDisabled  = "Event log retention disabled, cleanup skipped"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)
