//go:build !headless

// presenter_ebiten.go - Ebiten window presenter for the ZX Spectrum core

package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyTable maps host keyboard keys to Spectrum scancodes. Left and right
// modifier keys both map to the single physical CAPS SHIFT / SYMBOL SHIFT
// key the 48K keyboard actually has.
var keyTable = map[ebiten.Key]Scancode{
	ebiten.KeyA: KeyA, ebiten.KeyB: KeyB, ebiten.KeyC: KeyC, ebiten.KeyD: KeyD,
	ebiten.KeyE: KeyE, ebiten.KeyF: KeyF, ebiten.KeyG: KeyG, ebiten.KeyH: KeyH,
	ebiten.KeyI: KeyI, ebiten.KeyJ: KeyJ, ebiten.KeyK: KeyK, ebiten.KeyL: KeyL,
	ebiten.KeyM: KeyM, ebiten.KeyN: KeyN, ebiten.KeyO: KeyO, ebiten.KeyP: KeyP,
	ebiten.KeyQ: KeyQ, ebiten.KeyR: KeyR, ebiten.KeyS: KeyS, ebiten.KeyT: KeyT,
	ebiten.KeyU: KeyU, ebiten.KeyV: KeyV, ebiten.KeyW: KeyW, ebiten.KeyX: KeyX,
	ebiten.KeyY: KeyY, ebiten.KeyZ: KeyZ,

	ebiten.Key0: Key0, ebiten.Key1: Key1, ebiten.Key2: Key2, ebiten.Key3: Key3,
	ebiten.Key4: Key4, ebiten.Key5: Key5, ebiten.Key6: Key6, ebiten.Key7: Key7,
	ebiten.Key8: Key8, ebiten.Key9: Key9,

	ebiten.KeyEnter: KeyEnter, ebiten.KeySpace: KeySpace,

	ebiten.KeyShiftLeft: KeyCapsShift, ebiten.KeyShiftRight: KeyCapsShift,
	ebiten.KeyControlLeft: KeySymShift, ebiten.KeyControlRight: KeySymShift,
}

// EbitenPresenter drives the emulator forward one chunk per host frame and
// uploads the CRT framebuffer to a window, grounded on video_backend_ebiten.go's
// EbitenOutput (window setup, frame buffer, Update/Draw/Layout shape) but
// adapted from a generic byte-stream terminal device to a CRT texture and a
// key-matrix Press/Release model instead of emitted bytes.
type EbitenPresenter struct {
	system *System
	image  *ebiten.Image

	frameCount  uint64
	lastFPSTime time.Time
}

// NewEbitenPresenter creates a presenter for system.
func NewEbitenPresenter(system *System) *EbitenPresenter {
	return &EbitenPresenter{
		system:      system,
		image:       ebiten.NewImage(CRT_TOTAL_WIDTH, CRT_LINES),
		lastFPSTime: time.Now(),
	}
}

// Run opens the window and blocks until it is closed or ESC is pressed.
func (p *EbitenPresenter) Run() error {
	ebiten.SetWindowSize(CRT_TOTAL_WIDTH*2, CRT_LINES)
	ebiten.SetWindowTitle("ZX Spectrum 48K")
	ebiten.SetWindowResizable(true)
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(p)
}

// Update advances the emulation by one chunk and handles keyboard input.
func (p *EbitenPresenter) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	p.handleKeyboardInput()
	p.system.StepChunk(ChunkTStates)

	p.frameCount++
	if elapsed := time.Since(p.lastFPSTime); elapsed >= 500*time.Millisecond {
		fps := float64(p.frameCount) / elapsed.Seconds()
		ebiten.SetWindowTitle(fmt.Sprintf("ZX Spectrum 48K - %.1f fps", fps))
		p.frameCount = 0
		p.lastFPSTime = time.Now()
	}
	return nil
}

// handleKeyboardInput presses or releases every mapped Spectrum key to
// match the current host key state, then applies the Ctrl+0..7 border
// shortcut — a debug convenience carried over from pyse.py's number-key
// border switch, kept presenter-side since it has no counterpart on real
// hardware.
func (p *EbitenPresenter) handleKeyboardInput() {
	for hostKey, scancode := range keyTable {
		if ebiten.IsKeyPressed(hostKey) {
			p.system.Keyboard.Press(scancode)
		} else {
			p.system.Keyboard.Release(scancode)
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if !ctrl {
		return
	}
	for key := ebiten.Key0; key <= ebiten.Key7; key++ {
		if inpututil.IsKeyJustPressed(key) {
			p.system.ULA.SetBorder(uint8(key - ebiten.Key0))
		}
	}
}

// Draw uploads the CRT framebuffer to the window.
func (p *EbitenPresenter) Draw(screen *ebiten.Image) {
	p.image.WritePixels(p.system.CRT.RGBA())
	screen.DrawImage(p.image, nil)
}

// Layout reports the CRT's native resolution; Ebiten scales it to the
// window.
func (p *EbitenPresenter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return CRT_TOTAL_WIDTH, CRT_LINES
}

// run is main's entry into the presentation layer for this build.
func run(system *System) error {
	return NewEbitenPresenter(system).Run()
}
