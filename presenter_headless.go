//go:build headless

// presenter_headless.go - stdin-driven presenter with no GUI dependency

package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// HeadlessPresenter runs the emulator without a window, for CI and
// scripted runs. Grounded on terminal_host.go's TerminalHost: the same
// raw-stdin, non-blocking-read goroutine shape, adapted from routing bytes
// into a text MMIO device to watching for ESC as a quit signal.
type HeadlessPresenter struct {
	system *System

	fd          int
	nonblockSet bool
	oldState    *term.State

	quit    chan struct{}
	stopped sync.Once
	done    chan struct{}
}

// NewHeadlessPresenter creates a presenter for system.
func NewHeadlessPresenter(system *System) *HeadlessPresenter {
	return &HeadlessPresenter{
		system: system,
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Run puts stdin in raw mode, then drives the emulator at real-time speed
// until ESC is pressed or stdin closes, matching pyse.py's System.run
// real-time throttle (advance a chunk, compare virtual to wall-clock time,
// sleep off any surplus).
func (p *HeadlessPresenter) Run() error {
	p.fd = int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(p.fd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPresenterInit, err)
	}
	p.oldState = oldState
	defer p.restore()

	if err := syscall.SetNonblock(p.fd, true); err != nil {
		return fmt.Errorf("%w: %v", ErrPresenterInit, err)
	}
	p.nonblockSet = true

	go p.readStdin()

	const clockRateHz = 3500000
	start := time.Now()

	for {
		select {
		case <-p.quit:
			return nil
		default:
		}

		executed := p.system.StepChunk(ChunkTStates)
		if p.system.trace.Load() {
			fmt.Printf("t-state=%d border=%d\n", p.system.TState(), p.system.ULA.Border())
		}

		targetElapsed := time.Duration(float64(p.system.TState()) / clockRateHz * float64(time.Second))
		if behind := targetElapsed - time.Since(start); behind > time.Millisecond {
			time.Sleep(behind - time.Millisecond)
		}
		_ = executed
	}
}

func (p *HeadlessPresenter) readStdin() {
	buf := make([]byte, 1)
	for {
		select {
		case <-p.quit:
			return
		default:
		}
		n, err := syscall.Read(p.fd, buf)
		if n > 0 && buf[0] == 0x1B {
			p.stop()
			return
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil || n == 0 {
			p.stop()
			return
		}
	}
}

func (p *HeadlessPresenter) stop() {
	p.stopped.Do(func() {
		close(p.quit)
	})
}

func (p *HeadlessPresenter) restore() {
	if p.nonblockSet {
		_ = syscall.SetNonblock(p.fd, false)
		p.nonblockSet = false
	}
	if p.oldState != nil {
		_ = term.Restore(p.fd, p.oldState)
		p.oldState = nil
	}
}

// run is main's entry into the presentation layer for this build.
func run(system *System) error {
	return NewHeadlessPresenter(system).Run()
}
