// clipboard_export.go - Copies the visible page to the host clipboard

package main

import (
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// CopyPageToClipboard places the page text, trailing blanks trimmed, on
// the system clipboard
func CopyPageToClipboard(s TextSurface) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return &VideoError{Operation: "clipboard copy", Details: "clipboard unavailable", Err: clipboardErr}
	}
	clipboard.Write(clipboard.FmtText, []byte(pageText(s)))
	return nil
}
