// errors.go - error kinds for the ZX Spectrum core

package main

import "errors"

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrFileTooSmall    = errors.New("file too small")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	ErrPresenterInit   = errors.New("presenter initialisation failed")
	ErrBadArgument     = errors.New("bad argument")
)
