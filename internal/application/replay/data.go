package replay

// Version is written into every replay file
const Version = "2.0"

// FrameInput records the input of a single tick
type FrameInput struct {
	F     int     `json:"f"`               // Frame number
	T     float64 `json:"t"`               // Timestamp in ms
	I     uint8   `json:"i,omitempty"`     // Intent bits, see system.Intent.Bits
	Reset bool    `json:"reset,omitempty"` // World was reset before this tick
}

// ReplayData contains all data needed to replay a game session.
// Replaying needs the same config the session was recorded with.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Config    string       `json:"config"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
