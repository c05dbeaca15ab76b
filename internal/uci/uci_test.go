package uci_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aharrow/plychess/internal/uci"
)

func TestUCIHandshake(t *testing.T) {
	var buf bytes.Buffer
	e := uci.New(&buf, 1)

	ok := e.Command(context.Background(), "uci")
	assert.True(t, ok)
	out := buf.String()
	assert.Contains(t, out, "id name plychess")
	assert.Contains(t, out, "uciok")
}

func TestUCIIsReady(t *testing.T) {
	var buf bytes.Buffer
	e := uci.New(&buf, 1)
	e.Command(context.Background(), "isready")
	assert.Contains(t, buf.String(), "readyok")
}

func TestUCIPositionAndGoProducesBestMove(t *testing.T) {
	var buf bytes.Buffer
	e := uci.New(&buf, 1)

	e.Command(context.Background(), "position startpos")
	e.Command(context.Background(), "go depth 1")

	lastLine := strings.TrimSpace(buf.String())
	assert.Contains(t, lastLine, "bestmove")
}

func TestUCIPositionWithMoves(t *testing.T) {
	var buf bytes.Buffer
	e := uci.New(&buf, 1)

	ok := e.Command(context.Background(), "position startpos moves e2e4 e7e5")
	assert.True(t, ok)

	e.Command(context.Background(), "go depth 1")
	assert.Contains(t, buf.String(), "bestmove")
}

func TestUCIQuitEndsSession(t *testing.T) {
	var buf bytes.Buffer
	e := uci.New(&buf, 1)
	ok := e.Command(context.Background(), "quit")
	assert.False(t, ok)
}
