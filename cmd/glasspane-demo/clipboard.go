package main

import (
	"fmt"
	"sync"

	"github.com/intuitionamiga/glasspane"
	"golang.design/x/clipboard"
)

// rectCopier puts a target rectangle somewhere the user can paste it from.
type rectCopier interface {
	copyRect(r glasspane.Rect) error
}

// systemClipboard writes to the desktop clipboard. The clipboard is opened on
// first use.
type systemClipboard struct {
	once sync.Once
	err  error
}

func (c *systemClipboard) copyRect(r glasspane.Rect) error {
	c.once.Do(func() {
		c.err = clipboard.Init()
	})
	if c.err != nil {
		return fmt.Errorf("clipboard unavailable: %w", c.err)
	}
	clipboard.Write(clipboard.FmtText, []byte(formatRect(r)))
	return nil
}

// formatRect renders r as "left,top,right,bottom".
func formatRect(r glasspane.Rect) string {
	return fmt.Sprintf("%d,%d,%d,%d", r.Left, r.Top, r.Right, r.Bottom)
}
