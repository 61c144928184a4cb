package clipboard

import (
	"os"
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemWriteAll(t *testing.T) {
	if os.Getenv("OBOEGAKI_CLIPBOARD_TEST") != "1" {
		t.Skip("Set OBOEGAKI_CLIPBOARD_TEST=1 to test actual clipboard functionality")
	}

	require.NoError(t, System{}.WriteAll("echo oboegaki"))

	got, err := clipboard.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "echo oboegaki", got)
}

func TestSystemWriteAll_Unsupported(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("clipboard utility present")
	}

	err := System{}.WriteAll("x")
	assert.ErrorIs(t, err, ErrUnsupported)
}
