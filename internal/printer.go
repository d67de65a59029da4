package internal

// Printer represents a verbosity aware log writer.
type Printer interface {
	Logf(level VerbosityLevel, format string, args ...interface{})
	Log(level VerbosityLevel, msg string)
	Level() VerbosityLevel
}
