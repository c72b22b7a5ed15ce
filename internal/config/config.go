package config

const (
	// Motor model
	TorqueConstFactor  = 1352    // Kv (RPM/V) to torque constant in the oz-in unit system
	OzInToNewtonMeter  = 0.00706 // Scale factor applied to the intermediate torque
	VoltsPerCell       = 3.7     // Nominal LiPo cell voltage
	WattsPerHorsepower = 745.69987158227

	// Peak search
	CurrentEpsilon  = 1e-4 // Hard-min offset above no-load current, also the convergence tolerance
	SearchGridSteps = 10   // Samples per refinement round = SearchGridSteps + 1
	SearchShrink    = 10.0 // Step divisor between rounds
	MaxSearchRounds = 50   // Defensive cap on refinement rounds

	// Validation
	MinUsableRange = 0.01 // Minimum spread between no-load and max current (A)

	// Display
	DefaultCurvePoints = 11 // Rows in the stepped-current table

	// App
	AppName    = "MOTORCALC"
	AppVersion = "1.0"
)
