package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/railyard-cli/railyard/sym"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{3, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
		{-1, zapcore.WarnLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestShouldStreamSubprocess(t *testing.T) {
	assert.False(t, ShouldStreamSubprocess(0))
	assert.False(t, ShouldStreamSubprocess(2))
	assert.True(t, ShouldStreamSubprocess(3))
	assert.True(t, ShouldStreamSubprocess(4))
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(0))
	assert.Equal(t, "Info (-v)", LevelName(1))
	assert.Equal(t, "Debug (-vv)", LevelName(2))
	assert.Equal(t, "Trace (-vvv)", LevelName(3))
}

func TestInitializeSetsGlobalLogger(t *testing.T) {
	err := Initialize(1)
	require.NoError(t, err)
	require.NotNil(t, Logger)

	// Must not panic
	Infow("test message", FieldProject, "blog")
	Cleanup()
}

func TestWithStageNamesLoggerFromGlyph(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	prev := Logger
	Logger = zap.New(core).Sugar()
	t.Cleanup(func() { Logger = prev })

	WithStage(sym.Compose).Infow("wrote manifest")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, sym.StageNames[sym.Compose], entries[0].LoggerName)
	require.Len(t, entries[0].Context, 1)
	assert.Equal(t, FieldStage, entries[0].Context[0].Key)
	assert.Equal(t, sym.Compose, entries[0].Context[0].String)
}

func TestEncodeEntryFormat(t *testing.T) {
	enc := newConsoleEncoder()
	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2026, 1, 2, 13, 4, 35, 0, time.UTC),
		LoggerName: "compose",
		Message:    "⧉ wrote manifest",
	}
	fields := []zapcore.Field{
		zap.String(FieldArtifact, "docker-compose.yml"),
		zap.String(FieldStage, "⧉"),
	}

	buf, err := enc.EncodeEntry(entry, fields)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "13:04:35")
	assert.Contains(t, out, "compose")
	assert.Contains(t, out, "wrote manifest")
	assert.Contains(t, out, "artifact=docker-compose.yml")
	// the stage field is carried by the glyph, not repeated as key=value
	assert.NotContains(t, out, "stage=")
	// INFO entries carry no level tag
	assert.NotContains(t, out, "INFO")
}

func TestEncodeEntryWarnTag(t *testing.T) {
	enc := newConsoleEncoder()
	entry := zapcore.Entry{
		Level:   zapcore.WarnLevel,
		Time:    time.Now(),
		Message: "docker server older than recommended",
	}
	buf, err := enc.EncodeEntry(entry, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "WARN")
}

func TestFieldValueTypes(t *testing.T) {
	assert.Equal(t, "42", fieldValue(zap.Int(FieldExit, 42)))
	assert.Equal(t, "true", fieldValue(zap.Bool("flag", true)))
	assert.Equal(t, "blog", fieldValue(zap.String(FieldProject, "blog")))
	assert.Equal(t, "1500ms", fieldValue(zap.Duration(FieldDurationMS, 1500*time.Millisecond)))
}
