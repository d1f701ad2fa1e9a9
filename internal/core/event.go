package core

// Event is a discrete, named occurrence raised by the simulation for the
// audio collaborator. Events carry no payload.
type Event uint8

const (
	EventBounce     Event = iota + 1 // Ball hit a wall or the paddle
	EventBrickBreak                  // A brick was destroyed
	EventLaserFire                   // The paddle fired its lasers
	EventGameOver                    // The last life was lost
)

// Events lists every event in declaration order.
var Events = []Event{EventBounce, EventBrickBreak, EventLaserFire, EventGameOver}

// String returns the cue name of the event.
func (e Event) String() string {
	switch e {
	case EventBounce:
		return "bounce"
	case EventBrickBreak:
		return "brick_break"
	case EventLaserFire:
		return "laser"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
