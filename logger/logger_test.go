package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLoggerBeforeInitialize(t *testing.T) {
	// Package init installs a no-op logger; logging before Initialize must not panic
	require.NotNil(t, Logger)
	Info("safe before initialize")
	Errorw("also safe", FieldError, "none")
}

func TestInitializeConsole(t *testing.T) {
	err := Initialize(false)
	require.NoError(t, err)
	assert.False(t, JSONOutput)
	require.NotNil(t, Logger)

	Infow("console logger works", FieldComponent, "test")
}

func TestInitializeJSON(t *testing.T) {
	err := Initialize(true)
	require.NoError(t, err)
	assert.True(t, JSONOutput)

	Infow("json logger works", FieldComponent, "test")
}

func TestComponentLogger(t *testing.T) {
	require.NoError(t, Initialize(false))

	named := ComponentLogger("translator")
	require.NotNil(t, named)
	named.Infow("named logger works", FieldGraph, "EventGraph")
}

func TestChildLogger(t *testing.T) {
	require.NoError(t, Initialize(false))

	child := ChildLogger(Logger, FieldBlueprint, "BP_Player")
	require.NotNil(t, child)
	child.Info("child logger works")
}
