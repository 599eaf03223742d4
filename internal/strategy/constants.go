package strategy

// Display formatting
const (
	minutesPerHour = 60

	yieldFormat     = "%.0f BP"
	yieldRateFormat = "%.1f/m"
	usedOfFormat    = "%d / %d"
)
