package material

// Shared palette used by the assemblies and composers.
const (
	Body       = "#fafbfd"
	Trim       = "#d0d4d8"
	PanelLine  = "#c8cdd2"
	Dark       = "#263238"
	DarkVent   = "#1a202c"
	SteelDark  = "#37474f"
	SteelMid   = "#546e7a"
	Steel      = "#607d8b"
	SteelLight = "#78909c"
	SteelPale  = "#90a4ae"
	Robot      = "#d8dde2"
	ScreenFace = "#1565c0"

	// Signal-tower lamps are always emitted dark; lit state is a renderer concern.
	LampOff  = "#1a1a1a"
	LEDGreen = "#22c55e"

	// Load port and wafer cassette.
	PortFrame      = "#2d3748"
	PortColumn     = "#dde4ec"
	PortTable      = "#c8d8e8"
	CassetteShell  = "#8b6538"
	CassetteDoor   = "#7a5830"
	CassetteRecess = "#5a4020"
	CassetteHandle = "#3a4a5a"
	CassetteLabel  = "#f5f5f5"
)
