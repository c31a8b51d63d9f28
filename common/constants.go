package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	TPS = 60
	// DT is the fixed simulation step in seconds.
	DT = 1.0 / TPS
)
