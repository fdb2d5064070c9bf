package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Console encoder with a calm, compact format:
//
//	13:04:35  compose  ⧉ wrote docker-compose.yml  path=blog/docker-compose.yml
//
// Level is only shown for WARN and above; INFO lines stay quiet.

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"

	// Single warm palette (gruvbox-derived)
	fgCream   = "\x1b[38;5;223m" // message text
	fgAqua    = "\x1b[38;5;108m" // timestamps
	fgOrange  = "\x1b[38;5;208m" // component names
	fgYellow  = "\x1b[38;5;214m" // warnings
	fgGreen   = "\x1b[38;5;142m" // stage glyphs
	fgBlue    = "\x1b[38;5;109m" // field values
	fgRed     = "\x1b[38;5;167m" // errors
	bgRedDark = "\x1b[48;5;88m"
	bgYelDark = "\x1b[48;5;58m"
)

// stageGlyphs are highlighted wherever they appear in a message.
var stageGlyphs = []string{"≡", "⌖", "⧉", "⚙", "✎", "⎇"}

type consoleEncoder struct {
	zapcore.Encoder // base encoder for field serialization
}

func newConsoleEncoder() *consoleEncoder {
	return &consoleEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *consoleEncoder) Clone() zapcore.Encoder {
	return &consoleEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *consoleEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()

	final.AppendString(fgAqua)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	if ent.Level != zapcore.InfoLevel && ent.Level != zapcore.DebugLevel {
		final.AppendString("  ")
		final.AppendString(levelTag(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(fgOrange)
		final.AppendString(ent.LoggerName)
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(colorizeGlyphs(ent.Message))

	if rendered := renderFields(fields); rendered != "" {
		final.AppendString("  ")
		final.AppendString(rendered)
	}

	final.AppendString("\n")
	return final, nil
}

// levelTag returns bold colored level markers for WARN and above
func levelTag(level zapcore.Level) string {
	switch level {
	case zapcore.WarnLevel:
		return colorBold + bgYelDark + fgYellow + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + bgRedDark + fgRed + "ERROR" + colorReset
	default:
		return colorBold + bgRedDark + fgRed + level.CapitalString() + colorReset
	}
}

// colorizeGlyphs highlights stage glyphs and leaves the rest of the
// message in the base text color.
func colorizeGlyphs(msg string) string {
	for _, g := range stageGlyphs {
		msg = strings.ReplaceAll(msg, g, fgGreen+g+colorReset+fgCream)
	}
	return fgCream + msg + colorReset
}

// renderFields flattens structured fields to dim key=value pairs.
// The stage field is dropped here: the glyph already appears in the message
// position via WithStage loggers.
func renderFields(fields []zapcore.Field) string {
	var parts []string
	for _, f := range fields {
		if f.Key == FieldStage {
			continue
		}
		if v := fieldValue(f); v != "" {
			parts = append(parts, fgBlue+f.Key+"="+v+colorReset)
		}
	}
	return strings.Join(parts, " ")
}

// fieldValue extracts a printable value from a zap field
func fieldValue(f zapcore.Field) string {
	switch f.Type {
	case zapcore.StringType:
		return f.String
	case zapcore.BoolType:
		if f.Integer == 1 {
			return "true"
		}
		return "false"
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return fmt.Sprintf("%d", f.Integer)
	case zapcore.DurationType:
		return fmt.Sprintf("%dms", f.Integer/1e6)
	case zapcore.ErrorType:
		if err, ok := f.Interface.(error); ok {
			return err.Error()
		}
	}
	if f.Interface != nil {
		return fmt.Sprintf("%v", f.Interface)
	}
	return ""
}
