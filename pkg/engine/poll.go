package engine

import "time"

// PollScheduler decides when the engine should inject a VCSEC status poll
// in between user-initiated commands, the way the original polling_manager
// backed off while the vehicle slept and tightened its cadence right after a
// user command so status UI feels responsive. It holds no transport or
// session state of its own; Engine.tick consults Due() and, when it returns
// true, enqueues a poll command exactly like any other.
type PollScheduler struct {
	// AwakeInterval is how often to poll while the vehicle is awake and no
	// command has run recently.
	AwakeInterval time.Duration
	// ActiveInterval is how often to poll for a short window after a user
	// command, so a status change shows up quickly.
	ActiveInterval time.Duration
	// ActiveWindow is how long after NoteActivity the tighter ActiveInterval
	// applies.
	ActiveWindow time.Duration
	// AsleepInterval is how often to poll while the vehicle is asleep; kept
	// long so routine polling doesn't itself keep the vehicle awake.
	AsleepInterval time.Duration

	lastPoll     time.Time
	lastActivity time.Time
}

// NewPollScheduler returns a PollScheduler with reasonable defaults: poll
// every 30s while awake and idle, every 5s for a minute after a user
// command, and back off to every 5 minutes while asleep.
func NewPollScheduler() *PollScheduler {
	return &PollScheduler{
		AwakeInterval:  30 * time.Second,
		ActiveInterval: 5 * time.Second,
		ActiveWindow:   time.Minute,
		AsleepInterval: 5 * time.Minute,
	}
}

// NoteActivity records that a user-initiated command just ran, so the next
// ActiveWindow gets the tighter ActiveInterval.
func (p *PollScheduler) NoteActivity(now time.Time) {
	p.lastActivity = now
}

// Due reports whether it's time to inject a poll, and if so records now as
// the last poll time.
func (p *PollScheduler) Due(now time.Time, asleep bool) bool {
	interval := p.AwakeInterval
	switch {
	case asleep:
		interval = p.AsleepInterval
	case !p.lastActivity.IsZero() && now.Sub(p.lastActivity) < p.ActiveWindow:
		interval = p.ActiveInterval
	}
	if !p.lastPoll.IsZero() && now.Sub(p.lastPoll) < interval {
		return false
	}
	p.lastPoll = now
	return true
}
