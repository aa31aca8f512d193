package main

import (
	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// systemClipboard adapts the OS clipboard to editor.Clipboard.
type systemClipboard struct {
	log *zap.Logger
}

func (c systemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		c.log.Debug("clipboard unsupported")
		return "", nil
	}
	return clipboard.ReadAll()
}

func (c systemClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return nil
	}
	return clipboard.WriteAll(s)
}
