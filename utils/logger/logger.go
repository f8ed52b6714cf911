package logger

type Logger interface {
	Infof(format string, a ...interface{})
	Info(msg string)
	Debugf(format string, a ...interface{})
	Debug(msg string)
	Errorf(format string, a ...interface{})
	Error(msg string)
	Warningf(format string, a ...interface{})
	Warning(msg string)
}

// goplaneLevel maps a config log level to the name goplane's logging expects.
func goplaneLevel(level string) string {
	if level == "warn" {
		return "warning"
	}
	return level
}
