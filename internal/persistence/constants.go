package persistence

// DefaultKey is the store key of the single save
const DefaultKey = "growroom.save"

// Log messages
const (
	LogMsgSaveRepaired = "Repaired saved state"
	LogMsgNewerSchema  = "Save was written by a newer schema, unknown fields are ignored"
	LogMsgSaveNotFound = "No save found, starting a new game"
	LogMsgStateSaved   = "State saved"
	LogMsgStateReset   = "Save deleted"
	LogMsgLoadFallback = "Save could not be loaded, starting a new game"
)

// Error messages
const (
	ErrMsgNotAnObject  = "save is not a JSON object"
	ErrMsgDecodeFailed = "failed to decode save"
	ErrMsgEncodeFailed = "failed to encode save"
	ErrMsgStoreLoad    = "failed to read save from store"
	ErrMsgStoreSave    = "failed to write save to store"
	ErrMsgStoreDelete  = "failed to delete save from store"
)
