package log

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const timeFormat = "060102 15:04:05.000"

func setupSLog(level Severity) {
	handlerLogLevel := level.toSLogLevel()

	// Only color a terminal. The Windows console needs the escape
	// sequences translated.
	var w io.Writer = output
	f, isFile := output.(*os.File)
	useColor := isFile && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	if useColor {
		w = colorable.NewColorable(f)
	}

	logHandler := tint.NewHandler(w, &tint.Options{
		AddSource:  level <= DebugLevel,
		Level:      handlerLogLevel,
		TimeFormat: timeFormat,
		NoColor:    !useColor,
	})

	// Set as default logger.
	slog.SetDefault(slog.New(logHandler))
}
