package services

import (
	"sync"
	"time"

	"github.com/vabank-dev/vabank/internal/core/ports/driven"
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
	"github.com/vabank-dev/vabank/internal/logger"
)

// Ensure CopyIndicator implements the interface.
var _ driving.CopyService = (*CopyIndicator)(nil)

// CopiedDuration is how long the "copied" indicator stays on.
const CopiedDuration = 2 * time.Second

// CopyIndicator copies text and flips a flag that clears itself.
type CopyIndicator struct {
	clipboard driven.Clipboard
	duration  time.Duration

	mu     sync.Mutex
	copied bool
	timer  *time.Timer
	gen    uint64
}

// NewCopyIndicator creates a copy indicator. clipboard may be nil, in which
// case every copy is logged as a failure.
func NewCopyIndicator(clipboard driven.Clipboard) *CopyIndicator {
	return &CopyIndicator{clipboard: clipboard, duration: CopiedDuration}
}

// Copy writes text to the clipboard. On success the indicator turns on and
// reverts after CopiedDuration; a copy during that window restarts it.
// Failures are logged and leave the indicator untouched.
func (c *CopyIndicator) Copy(text string) {
	if c.clipboard == nil {
		logger.Warn("copy failed: no clipboard available")
		return
	}
	if err := c.clipboard.WriteAll(text); err != nil {
		logger.Warn("copy failed: %v", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.copied = true
	c.gen++
	gen := c.gen
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.duration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.gen == gen {
			c.copied = false
		}
	})
}

// Copied reports whether the indicator is on.
func (c *CopyIndicator) Copied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copied
}

// Stop cancels a pending reset and turns the indicator off.
func (c *CopyIndicator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.copied = false
}
