package domain

// Field geometry. Yard lines run 0-100 from the perspective of the possessing
// side: 0 is its own goal line, 100 is the opponent's.
const (
	FieldLength    = 100
	FirstDownYards = 10
	MinDown        = 1
	MaxDown        = 4

	// RedZoneStart is the yard line at which the possessing side is inside
	// the opponent's 20.
	RedZoneStart = 80
	Midfield     = 50
)

// Clock rules.
const (
	QuarterSeconds  = 900
	QuartersPerGame = 4
	TwoMinuteMark   = 120
	HalftimeQuarter = 2
)

// Scoring values.
const (
	TouchdownPoints  = 6
	FieldGoalPoints  = 3
	SafetyPoints     = 2
	ExtraPointPoints = 1
	TwoPointPoints   = 2

	// FieldGoalTackOn is added to the distance-to-goal when computing a
	// field goal attempt's length (end zone depth plus the snap spot).
	FieldGoalTackOn = 17
)

// Kicking procedure spots, expressed on the receiving side's 0-100 scale.
const (
	// TouchbackSpot is where the receiving side starts after a touchback.
	TouchbackSpot = 25

	// SafetyKickSpot is where the conceding side free-kicks from after a
	// safety: its own 20.
	SafetyKickSpot = 20

	// PuntTouchbackSpot is where the receiving side starts after a punt
	// into the end zone.
	PuntTouchbackSpot = 20

	// DeepPuntThreshold marks the receiving spot below which a punt
	// returner is eligible to fair catch rather than return.
	DeepPuntThreshold = 20

	// OnsideRecoverySpot is where a recovered onside kick is spotted for
	// the kicking side.
	OnsideRecoverySpot = 45

	// LateGameOnsideWindow is the clock value (4th quarter) under which a
	// trailing kicking side attempts an onside kick.
	LateGameOnsideWindow = 300
)
