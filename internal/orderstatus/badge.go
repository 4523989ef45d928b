package orderstatus

// Color tokens used by status badges.
const (
	ColorWarning = "warning"
	ColorInfo    = "info"
	ColorPrimary = "primary"
	ColorSuccess = "success"
	ColorError   = "error"
)

// Icon tokens used by badges and tracker steps.
const (
	IconTime      = "time"
	IconFlame     = "flame"
	IconBicycle   = "bicycle"
	IconCheckmark = "checkmark-circle"
	IconClose     = "close-circle"
)

// palette maps color tokens to the theme's hex values.
var palette = map[string]string{
	ColorWarning: "#B45309",
	ColorInfo:    "#0369A1",
	ColorPrimary: "#C2410C",
	ColorSuccess: "#15803D",
	ColorError:   "#B91C1C",
}

// Badge is the presentation of a status in lists.
type Badge struct {
	Color string
	Icon  string
}

// Hex returns the theme color for the badge.
func (b Badge) Hex() string {
	return palette[b.Color]
}

var badges = map[Status]Badge{
	Pending:        {Color: ColorWarning, Icon: IconTime},
	Preparing:      {Color: ColorInfo, Icon: IconFlame},
	OutForDelivery: {Color: ColorPrimary, Icon: IconBicycle},
	Delivered:      {Color: ColorSuccess, Icon: IconCheckmark},
	Cancelled:      {Color: ColorError, Icon: IconClose},
}

// BadgeFor returns the badge for s. Unknown statuses render like pending.
func BadgeFor(s Status) Badge {
	if b, ok := badges[s]; ok {
		return b
	}
	return badges[Pending]
}
