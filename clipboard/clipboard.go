package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported means no clipboard utility (xclip, xsel, wl-copy, pbcopy,
// clip.exe) was found.
var ErrUnsupported = errors.New("no clipboard utility available")

type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
