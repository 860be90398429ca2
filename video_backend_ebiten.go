//go:build !headless

// video_backend_ebiten.go - Window front end for the text console

package main

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

type EbitenOutput struct {
	running     atomic.Bool
	window      *ebiten.Image
	width       int
	height      int
	scale       int
	title       string
	frameBuffer []byte
	bufferMutex sync.RWMutex
	frameCount  atomic.Uint64
	vsyncChan   chan struct{}
	done        chan struct{}
	doneOnce    sync.Once
}

func NewEbitenOutput() (VideoOutput, error) {
	cfg := defaultDisplayConfig()
	return &EbitenOutput{
		width:       cfg.Width,
		height:      cfg.Height,
		scale:       cfg.Scale,
		title:       cfg.Title,
		frameBuffer: make([]byte, cfg.Width*cfg.Height*4),
		vsyncChan:   make(chan struct{}, 1),
		done:        make(chan struct{}),
	}, nil
}

func (eo *EbitenOutput) Start() error {
	if eo.running.Load() {
		return nil
	}
	eo.running.Store(true)
	ebiten.SetWindowSize(eo.width*eo.scale, eo.height*eo.scale)
	ebiten.SetWindowTitle(eo.title)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)

	go func() {
		defer func() {
			eo.running.Store(false)
			eo.doneOnce.Do(func() { close(eo.done) })
		}()
		if err := ebiten.RunGame(eo); err != nil {
			fmt.Printf("Ebiten error: %v\n", err)
		}
	}()

	// Wait for first Draw call to ensure Ebiten is ready
	select {
	case <-eo.vsyncChan:
	case <-eo.done:
		return &VideoError{Operation: "start", Details: "window closed before first frame"}
	}
	return nil
}

func (eo *EbitenOutput) Stop() error {
	eo.running.Store(false)
	return nil
}

func (eo *EbitenOutput) Close() error {
	return eo.Stop()
}

func (eo *EbitenOutput) IsStarted() bool {
	return eo.running.Load()
}

func (eo *EbitenOutput) Done() <-chan struct{} {
	return eo.done
}

func (eo *EbitenOutput) SetDisplayConfig(config DisplayConfig) error {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()

	if config.Width > 0 {
		eo.width = config.Width
	}
	if config.Height > 0 {
		eo.height = config.Height
	}
	if config.Title != "" {
		eo.title = config.Title
	}
	eo.scale = ClampScale(config.Scale)
	if size := eo.width * eo.height * 4; len(eo.frameBuffer) != size {
		eo.frameBuffer = make([]byte, size)
	}
	if eo.window != nil {
		eo.window.Dispose()
		eo.window = nil
	}
	if eo.running.Load() {
		ebiten.SetWindowSize(eo.width*eo.scale, eo.height*eo.scale)
	}
	return nil
}

func (eo *EbitenOutput) UpdateFrame(data []byte) error {
	eo.bufferMutex.Lock()
	defer eo.bufferMutex.Unlock()

	if len(data) != len(eo.frameBuffer) {
		return &VideoError{
			Operation: "frame update",
			Details:   fmt.Sprintf("got %d bytes, want %d", len(data), len(eo.frameBuffer)),
		}
	}
	copy(eo.frameBuffer, data)
	return nil
}

func (eo *EbitenOutput) GetFrameCount() uint64 {
	return eo.frameCount.Load()
}

func (eo *EbitenOutput) Update() error {
	if ebiten.IsWindowBeingClosed() || !eo.running.Load() {
		return ebiten.Termination
	}
	return nil
}

func (eo *EbitenOutput) Draw(screen *ebiten.Image) {
	eo.bufferMutex.RLock()
	if eo.window == nil {
		eo.window = ebiten.NewImage(eo.width, eo.height)
	}
	eo.window.WritePixels(eo.frameBuffer)
	eo.bufferMutex.RUnlock()
	screen.DrawImage(eo.window, nil)

	eo.frameCount.Add(1)
	select {
	case eo.vsyncChan <- struct{}{}:
	default:
	}
}

func (eo *EbitenOutput) Layout(_, _ int) (int, int) {
	eo.bufferMutex.RLock()
	defer eo.bufferMutex.RUnlock()
	return eo.width, eo.height
}
