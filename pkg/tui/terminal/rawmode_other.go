// ABOUTME: Stubs for platforms without termios support.
// ABOUTME: Raw mode and raw reads report errors.ErrUnsupported.

//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package terminal

import "errors"

type modeState struct{}

func getMode(int) (*modeState, error) { return nil, errors.ErrUnsupported }

func setMode(int, *modeState) error { return errors.ErrUnsupported }

func (s *modeState) raw(uint8) *modeState { return s }

func readRaw(int, []byte) (int, error) { return 0, errors.ErrUnsupported }
