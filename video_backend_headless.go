//go:build headless

package main

import (
	"fmt"
	"sync"
	"sync/atomic"
)

type HeadlessVideoOutput struct {
	started    atomic.Bool
	config     DisplayConfig
	frameCount atomic.Uint64
	done       chan struct{}
	doneOnce   sync.Once
}

func NewEbitenOutput() (VideoOutput, error) {
	return &HeadlessVideoOutput{config: defaultDisplayConfig(), done: make(chan struct{})}, nil
}

func (h *HeadlessVideoOutput) Start() error {
	h.started.Store(true)
	return nil
}

func (h *HeadlessVideoOutput) Stop() error {
	h.started.Store(false)
	h.doneOnce.Do(func() { close(h.done) })
	return nil
}

func (h *HeadlessVideoOutput) Close() error {
	return h.Stop()
}

func (h *HeadlessVideoOutput) IsStarted() bool {
	return h.started.Load()
}

func (h *HeadlessVideoOutput) Done() <-chan struct{} {
	return h.done
}

func (h *HeadlessVideoOutput) SetDisplayConfig(config DisplayConfig) error {
	config.Scale = ClampScale(config.Scale)
	h.config = config
	return nil
}

func (h *HeadlessVideoOutput) GetDisplayConfig() DisplayConfig {
	return h.config
}

// UpdateFrame checks the frame size and counts it; nothing is shown
func (h *HeadlessVideoOutput) UpdateFrame(buffer []byte) error {
	if want := h.config.Width * h.config.Height * 4; len(buffer) != want {
		return &VideoError{
			Operation: "frame update",
			Details:   fmt.Sprintf("got %d bytes, want %d", len(buffer), want),
		}
	}
	h.frameCount.Add(1)
	return nil
}

func (h *HeadlessVideoOutput) GetFrameCount() uint64 {
	return h.frameCount.Load()
}
