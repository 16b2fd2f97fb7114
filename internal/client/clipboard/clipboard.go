// Package clipboard copies shared diary text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrCopyFailed = errors.New("clipboard write failed")

type Writer interface {
	WriteText(text string) error
}

// System writes through the OS clipboard utilities (pbcopy, xclip, wl-copy, ...).
type System struct {
	write func(string) error
}

func NewSystem() *System {
	return &System{write: clipboard.WriteAll}
}

func (s *System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility available", ErrCopyFailed)
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}
	return nil
}
