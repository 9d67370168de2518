package dronescript

// Version and BuildDate are surfaced by the CLI banner. BuildDate is intended
// to be overridden at link time with -ldflags.
var (
	Version   = "0.4.0"
	BuildDate = "unknown"
)
