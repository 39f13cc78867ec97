// Package log provides structured logging for the datetime-helper library and
// the datecal command.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with persistent fields, several
//              output formats and integration with the structured error type.
//              Library code receives a *Logger through its options and defaults
//              to Discard(), so nothing is written unless a caller opts in.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-10-12 v0.2.0: Removed async buffering, timers and tracing IDs; added
//                       Discard and a lipgloss-based console formatter
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Output: os.Stderr,
//		Name:   "timex",
//	})
//
//	logger.Debug("locale not recognised, using default", log.Fields{
//		"locale":  "xx-YY",
//		"default": "en-US",
//	})
package log
