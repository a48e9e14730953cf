// Package layout holds the per-model placement tables. Each model's table
// is a zygomys script embedded from tables/, evaluated in the engine
// sandbox and decoded into the typed structs below.
package layout

// Vec is an (x, y, z) triple.
type Vec [3]float64

// Pos is an (x, z) floor position.
type Pos [2]float64

// LoadPorts places a row of load ports along one equipment wall. X is the
// cassette center, chosen so the port frame sits flush with the wall.
// Nil sizes were left out of the table and take the assembly defaults.
type LoadPorts struct {
	X              float64   `layout:"x"`
	Z              []float64 `layout:"z"`
	Face           int       `layout:"face"`
	CassetteHeight *float64  `layout:"cassette-height,optional"`
	ColumnWidth    *float64  `layout:"column-width,optional"`
	TableWidth     *float64  `layout:"table-width,optional"`
}

// Tower places a signal tower. Nil sizes take the assembly defaults.
type Tower struct {
	X          float64  `layout:"x"`
	Z          float64  `layout:"z"`
	PoleY      float64  `layout:"pole-y"`
	PoleHeight float64  `layout:"pole-height"`
	GreenY     float64  `layout:"green-y"`
	PoleRadius *float64 `layout:"pole-radius,optional"`
	LampRadius *float64 `layout:"lamp-radius,optional"`
	LampHeight *float64 `layout:"lamp-height,optional"`
}

// EUV is the lithography scanner layout.
type EUV struct {
	Frame          Vec       `layout:"frame"`
	FrameX         float64   `layout:"frame-x"`
	SourceFeet     []Pos     `layout:"source-feet"`
	OpticsRibZ     []float64 `layout:"optics-rib-z"`
	Interferometer []Pos     `layout:"interferometer"`
	MotorRails     []Pos     `layout:"motor-rails"`
	LoadPorts      LoadPorts `layout:"load-ports"`
	PumpX          []float64 `layout:"pump-x"`
	ChillerX       []float64 `layout:"chiller-x"`
	ChillerVents   int       `layout:"chiller-vents"`
	RackScreens    int       `layout:"rack-screens"`
	SignalTower    Tower     `layout:"signal-tower"`
	LevelingPads   []Pos     `layout:"leveling-pads"`
}

// CVD is the deposition cluster tool layout.
type CVD struct {
	HubRadius   float64   `layout:"hub-radius"`
	HubSides    int       `layout:"hub-sides"`
	Chambers    []Pos     `layout:"chambers"`
	LoadPorts   LoadPorts `layout:"load-ports"`
	GasLines    int       `layout:"gas-lines"`
	VacuumPumpZ []float64 `layout:"vacuum-pump-z"`
	SignalTower Tower     `layout:"signal-tower"`
}

// Enclosure is an axis-aligned glass box around a work area.
type Enclosure struct {
	HalfWidth float64 `layout:"half-width"`
	FrontZ    float64 `layout:"front-z"`
	BackZ     float64 `layout:"back-z"`
	BaseY     float64 `layout:"base-y"`
	Height    float64 `layout:"height"`
	Thickness float64 `layout:"thickness"`
}

// CMP is the polisher layout.
type CMP struct {
	Frame       Vec       `layout:"frame"`
	PlatenX     []float64 `layout:"platen-x"`
	PlatenZ     float64   `layout:"platen-z"`
	SlurryTanks int       `layout:"slurry-tanks"`
	CleanerZ    []float64 `layout:"cleaner-z"`
	LoadPorts   LoadPorts `layout:"load-ports"`
	Enclosure   Enclosure `layout:"enclosure"`
	ScreenYaw   float64   `layout:"screen-yaw"`
	SignalTower Tower     `layout:"signal-tower"`
}

// Etch is the dry etch system layout.
type Etch struct {
	Hub         Vec       `layout:"hub"`
	Chambers    []Pos     `layout:"chambers"`
	LoadPorts   LoadPorts `layout:"load-ports"`
	GasLines    int       `layout:"gas-lines"`
	SignalTower Tower     `layout:"signal-tower"`
}

// SEM is the electron microscope layout. It has no load port.
type SEM struct {
	Body         Vec     `layout:"body"`
	Isolators    []Pos   `layout:"isolators"`
	ColumnAt     Pos     `layout:"column-at"`
	KeyboardTilt float64 `layout:"keyboard-tilt"`
	RackSlots    int     `layout:"rack-slots"`
	SignalTower  Tower   `layout:"signal-tower"`
}

// Tables bundles every model layout.
type Tables struct {
	EUV  EUV
	CVD  CVD
	CMP  CMP
	Etch Etch
	SEM  SEM
}
