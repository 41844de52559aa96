// Package logger is a standardized event logging framework for the shell.
//
// Events are written as newline delimited JSON, one LogEntry per line, so the
// application log can be tailed while the shell runs and folded into a Report
// afterwards.
package logger
