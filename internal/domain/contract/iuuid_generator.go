package contract

// IUUIDGenerator defines the interface for generating unique identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}
