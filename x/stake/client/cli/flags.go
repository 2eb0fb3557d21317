package cli

// Flag constants for stake CLI commands
const (
	// Distribution flow flags
	FlagManager = "manager"

	// Reward withdrawal flags
	FlagOwner    = "owner"
	FlagFlowID   = "flow-id"
	FlagReceiver = "receiver"
)
