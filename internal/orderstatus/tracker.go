package orderstatus

// trackerSteps is the delivery progression shown on the order detail screen.
// Cancelled is not a step.
var trackerSteps = []Status{Pending, Preparing, OutForDelivery, Delivered}

// Step is one row of the tracker.
type Step struct {
	Status  Status
	Icon    string
	Reached bool
	Current bool
}

// Tracker is the order detail progress view.
type Tracker struct {
	// CurrentStepIndex is -1 for cancelled orders.
	CurrentStepIndex int
	Steps            []Step
	// Cancelled orders show no reached step and a separate cancelled banner.
	Cancelled bool
}

// TrackerSteps returns the four delivery steps in order.
func TrackerSteps() []Status {
	return append([]Status(nil), trackerSteps...)
}

// TrackerIndex returns the position of s among the tracker steps, or -1.
func TrackerIndex(s Status) int {
	for i, v := range trackerSteps {
		if v == s {
			return i
		}
	}
	return -1
}

// TrackerFor builds the tracker for s. An unrecognized status is shown as
// pending, matching BadgeFor.
func TrackerFor(s Status) Tracker {
	idx := TrackerIndex(s)
	if idx < 0 && s != Cancelled {
		idx = TrackerIndex(Pending)
	}
	t := Tracker{
		CurrentStepIndex: idx,
		Steps:            make([]Step, len(trackerSteps)),
		Cancelled:        s == Cancelled,
	}
	for i, st := range trackerSteps {
		t.Steps[i] = Step{
			Status:  st,
			Icon:    badges[st].Icon,
			Reached: idx >= 0 && i <= idx,
			Current: i == idx,
		}
	}
	return t
}
