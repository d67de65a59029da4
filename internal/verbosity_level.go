package internal

// VerbosityLevel logging verbosity level.
type VerbosityLevel int8

const (
	// Forced the lowest logging level. Only the messages logged at this level will be printed.
	Forced VerbosityLevel = iota
	// Verbose verbose mode (-v)
	Verbose
	// VeryVerbose very verbose mode (-vv)
	VeryVerbose
	// SuperVerbose super verbose mode (-vvv)
	SuperVerbose
	// Chatty extremely verbose mode (-vvvv). The internal Kafka client logs are enabled at this level.
	Chatty
)

var verbosityToString = map[VerbosityLevel]string{
	Forced:       "default",
	Verbose:      "verbose",
	VeryVerbose:  "very verbose",
	SuperVerbose: "super verbose",
	Chatty:       "chatty",
}

// ToVerbosityLevel converts the number of -v flags to a verbosity level.
func ToVerbosityLevel(counter int) VerbosityLevel {
	if counter <= 0 {
		return Forced
	}
	if counter >= int(Chatty) {
		return Chatty
	}
	return VerbosityLevel(counter)
}

// String returns the string representation of the verbosity level.
func (v VerbosityLevel) String() string {
	if s, ok := verbosityToString[v]; ok {
		return s
	}
	return "unknown"
}
