package file

import (
	"context"
	"testing"

	"synaudit/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSourceRequiresPath(t *testing.T) {
	_, err := NewSource("")
	require.Error(t, err)
}

func TestStartMissingFile(t *testing.T) {
	src, err := NewSource("/nonexistent/capture.pcap")
	require.NoError(t, err)

	err = src.Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrCaptureRead)
}

func TestStopWithoutStart(t *testing.T) {
	src, err := NewSource("whatever.pcap")
	require.NoError(t, err)
	assert.NoError(t, src.Stop())
}
