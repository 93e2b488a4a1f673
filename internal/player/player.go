// Package player implements the slideshow playback state machine: current
// slide, autoplay, title overlay, and keyboard command handling. It holds a
// read-only copy of the slide list and never talks to the network; the
// caller feeds it slides and renders from snapshots.
package player

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// State is the coarse playback state.
type State int

const (
	// Idle means no presentation is loaded.
	Idle State = iota
	// Presenting means slides are loaded and exactly one slide is active.
	Presenting
)

const (
	defaultAutoplayInterval  = 8 * time.Second
	defaultTitleOverlayDelay = 4 * time.Second
)

// Options configures playback timing.
type Options struct {
	// AutoplayInterval is the delay between automatic slide advances.
	AutoplayInterval time.Duration
	// TitleOverlayDelay is how long the title overlay stays visible after
	// entering presenting mode.
	TitleOverlayDelay time.Duration
	// Clock is injectable for tests; nil gets the real clock.
	Clock clockwork.Clock
	// OnSubmit fires when enter is pressed while Idle (the generation
	// submit action). Nil is allowed.
	OnSubmit func()
}

// Snapshot is a point-in-time view of playback state for rendering.
type Snapshot struct {
	State            State
	CurrentIndex     int
	IsPlaying        bool
	ShowTitleOverlay bool
	SlideCount       int
}

// Player is the playback state machine. All methods are safe for
// concurrent use; timer callbacks and user input serialize on one mutex.
type Player struct {
	mu    sync.Mutex
	clock clockwork.Clock
	opts  Options

	state   State
	slides  []domain.Slide
	index   int
	playing bool
	overlay bool

	// Timer generations guard against stale callbacks: every transition
	// that affects index or play state bumps the generation, so a timer
	// that fired in flight becomes a no-op.
	overlayTimer clockwork.Timer
	overlayGen   int
	autoTimer    clockwork.Timer
	autoGen      int
}

// New creates an idle Player.
func New(opts Options) *Player {
	if opts.AutoplayInterval <= 0 {
		opts.AutoplayInterval = defaultAutoplayInterval
	}
	if opts.TitleOverlayDelay <= 0 {
		opts.TitleOverlayDelay = defaultTitleOverlayDelay
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &Player{clock: opts.Clock, opts: opts}
}

// Start loads slides and enters presenting mode at slide 0 with autoplay on
// and the title overlay showing. Starting with no slides is a no-op.
func (p *Player) Start(slides []domain.Slide) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(slides) == 0 {
		return
	}

	p.state = Presenting
	p.slides = slides
	p.index = 0
	p.playing = true
	p.overlay = true

	p.startOverlayTimer()
	p.restartAutoplay()
}

// Next advances one slide, clamped to the last slide. Manual navigation
// pauses autoplay.
func (p *Player) Next() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.navigate(1)
}

// Previous goes back one slide, clamped to slide 0. Manual navigation
// pauses autoplay.
func (p *Player) Previous() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.navigate(-1)
}

// navigate moves by delta with clamping. Caller holds mu.
func (p *Player) navigate(delta int) {
	if p.state != Presenting {
		return
	}
	next := p.index + delta
	if next < 0 {
		next = 0
	}
	if next > len(p.slides)-1 {
		next = len(p.slides) - 1
	}
	p.index = next
	p.playing = false
	p.restartAutoplay()
}

// TogglePlay flips autoplay without changing the current slide.
func (p *Player) TogglePlay() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Presenting {
		return
	}
	p.playing = !p.playing
	p.restartAutoplay()
}

// Exit leaves presenting mode, resets playback state, and cancels both
// outstanding timers so nothing mutates state after the view is gone.
func (p *Player) Exit() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = Idle
	p.slides = nil
	p.index = 0
	p.playing = false
	p.overlay = false

	p.overlayGen++
	if p.overlayTimer != nil {
		p.overlayTimer.Stop()
		p.overlayTimer = nil
	}
	p.autoGen++
	if p.autoTimer != nil {
		p.autoTimer.Stop()
		p.autoTimer = nil
	}
}

// Snapshot returns the current playback state.
func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Snapshot{
		State:            p.state,
		CurrentIndex:     p.index,
		IsPlaying:        p.playing,
		ShowTitleOverlay: p.overlay,
		SlideCount:       len(p.slides),
	}
}

// startOverlayTimer schedules clearing the title overlay. Caller holds mu.
func (p *Player) startOverlayTimer() {
	p.overlayGen++
	gen := p.overlayGen
	if p.overlayTimer != nil {
		p.overlayTimer.Stop()
	}
	p.overlayTimer = p.clock.AfterFunc(p.opts.TitleOverlayDelay, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if gen != p.overlayGen || p.state != Presenting {
			return
		}
		// Clearing the overlay touches neither index nor play state.
		p.overlay = false
	})
}

// restartAutoplay cancels any pending autoplay tick and schedules a new one
// if autoplay should run. Caller holds mu. Called on every transition that
// affects index or play state.
func (p *Player) restartAutoplay() {
	p.autoGen++
	gen := p.autoGen
	if p.autoTimer != nil {
		p.autoTimer.Stop()
		p.autoTimer = nil
	}
	if p.state != Presenting || !p.playing {
		return
	}
	p.autoTimer = p.clock.AfterFunc(p.opts.AutoplayInterval, func() {
		p.autoplayTick(gen)
	})
}

// autoplayTick advances one slide, or stops playback at the last slide
// (no wraparound).
func (p *Player) autoplayTick(gen int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.autoGen || p.state != Presenting || !p.playing {
		return
	}

	if p.index < len(p.slides)-1 {
		p.index++
	} else {
		p.playing = false
	}
	p.restartAutoplay()
}
