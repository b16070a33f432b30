// Package logger provides structured logging on top of zerolog.
//
// The SDK logs through a *Logger handle passed in at construction, never
// through a process-global. Use Nop() to silence logging entirely, or
// NewWriter to capture output in tests:
//
//	log := logger.NewFromEnv().WithComponent("llmkit")
//	log.Warn("retrying request", logger.Fields(
//	    logger.FieldAttempt, 2,
//	    logger.FieldPath, "/chat/completions",
//	))
package logger
