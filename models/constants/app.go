package constants

const (
	InternalName = "crypto-snapshot"
	ExternalName = "Crypto Snapshot"
	Version      = "1.0.0"
)
