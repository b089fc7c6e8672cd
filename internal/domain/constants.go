package domain

// Event metadata keys
const (
	// MetadataKeySource records what triggered the event ("admin", "scheduler", "startup")
	MetadataKeySource = "source"
)
