package compose

// EUV.
const euvWindow = "#0d47a1"

// CVD, green.
const (
	cvdPrimary = "#2e7d32"
	cvdDark    = "#1b5e20"
	cvdLight   = "#a5d6a7"
	cvdAccent  = "#388e3c"
)

// CMP, orange.
const (
	cmpTop         = "#e64a19"
	cmpCleanerTop  = "#bf360c"
	cmpPlaten      = "#6d2813"
	cmpPad         = "#8d3b14"
	cmpPrimary     = "#a04000"
	cmpDark        = "#7b3500"
	cmpNozzle      = "#bf4500"
	cmpNozzleTip   = "#d4500c"
	cmpScreenArm   = "#5a1505"
	cmpScreenFrame = "#3d1505"
)

// ETCH, red.
const (
	etchPrimary  = "#991b1b"
	etchDark     = "#7f1d1d"
	etchDeep     = "#5a1010"
	etchCable    = "#6b1515"
	etchViewport = "#fca5a5"
)

// SEM, purple.
const (
	semPrimary = "#6a1fc2"
	semDark    = "#4a148c"
	semGun     = "#381371"
	semDeep    = "#1e0840"
	semLight   = "#8b5cf6"
	semFrame   = "#1e1b4b"
	semScreen  = "#312e81"
)
