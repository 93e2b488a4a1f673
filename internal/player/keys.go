package player

// Key names follow the browser KeyboardEvent.key values the frontend sends.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeySpace      = " "
	KeyEscape     = "Escape"
	KeyEnter      = "Enter"
)

// HandleKey applies a keyboard command to the player. The returned bool
// reports whether the caller should suppress the key's default action
// (space would otherwise scroll the page during a presentation).
func (p *Player) HandleKey(key string) bool {
	p.mu.Lock()
	state := p.state
	p.mu.Unlock()

	if state == Idle {
		if key == KeyEnter && p.opts.OnSubmit != nil {
			p.opts.OnSubmit()
		}
		return false
	}

	switch key {
	case KeyArrowLeft:
		p.Previous()
		return false
	case KeyArrowRight, KeySpace:
		// Both keys scroll the page by default; suppress that during a
		// presentation.
		p.Next()
		return true
	case KeyEscape:
		p.Exit()
		return false
	}
	return false
}
