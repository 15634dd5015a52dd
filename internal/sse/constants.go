package sse

import "time"

const (
	// BroadcastBufferSize bounds events waiting for the delivery loop
	BroadcastBufferSize = 100
	// ClientEventBuffer bounds events waiting on one stream
	ClientEventBuffer = 50

	KeepaliveInterval = 30 * time.Second
)

// Frame types that only exist on the stream. Game events are sent under
// their bus type name.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes takes a comma separated list of event types to receive
const QueryParamTypes = "types"

const (
	LogMsgClientConnected    = "Stream client connected"
	LogMsgClientDisconnected = "Stream client disconnected"
	LogMsgClientDropped      = "Stream client missed events"
	LogMsgEventDropped       = "Stream queue full, event dropped"
	LogMsgWriteError         = "Failed to write stream frame"
	LogMsgSubscribed         = "Stream subscriber registered"
	ErrMsgStreamUnsupported  = "streaming not supported"
)
