package ui

import (
	"time"
)

// tickMsg is sent on a timer to refresh the status clock
type tickMsg time.Time

// pagerClosedMsg contains the result of a help pager run
type pagerClosedMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
