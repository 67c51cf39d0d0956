package xsdgen

// A Config holds user-defined settings that are used when generating
// an XSD document from a schema tree. The zero value is usable;
// DefaultOptions describes the settings used by the top-level Compile
// function.
type Config struct {
	logger   Logger
	loglevel int
	indent   string
}

func (cfg *Config) logf(format string, v ...interface{}) {
	if cfg.logger != nil && cfg.loglevel > 0 {
		cfg.logger.Printf(format, v...)
	}
}

func (cfg *Config) debugf(format string, v ...interface{}) {
	if cfg.logger != nil && cfg.loglevel > 3 {
		cfg.logger.Printf(format, v...)
	}
}

// An Option is used to customize a Config.
type Option func(*Config) Option

// DefaultOptions are the default settings for XSD generation, used by
// the top-level Compile function.
var DefaultOptions = []Option{
	Indent("  "),
}

// The Option method is used to configure an existing configuration.
// The return value of the Option method can be used to revert the
// final option to its previous setting.
func (cfg *Config) Option(opts ...Option) (previous Option) {
	for _, opt := range opts {
		previous = opt(cfg)
	}
	return previous
}

// Types implementing the Logger interface can receive debug
// information about the compilation walk. The Logger interface is
// implemented by *log.Logger.
type Logger interface {
	Printf(format string, v ...interface{})
}

// LogOutput specifies an optional Logger for debug information about
// the compilation process.
func LogOutput(l Logger) Option {
	return func(cfg *Config) Option {
		prev := cfg.logger
		cfg.logger = l
		return LogOutput(prev)
	}
}

// LogLevel sets the verbosity of messages sent to the Logger
// configured with the LogOutput option. The level parameter should be
// a positive integer between 1 and 5, with 5 providing the greatest
// verbosity.
func LogLevel(level int) Option {
	return func(cfg *Config) Option {
		prev := cfg.loglevel
		cfg.loglevel = level
		return LogLevel(prev)
	}
}

// Indent sets the string used for one level of indentation in the
// generated document.
func Indent(s string) Option {
	return func(cfg *Config) Option {
		prev := cfg.indent
		cfg.indent = s
		return Indent(prev)
	}
}
