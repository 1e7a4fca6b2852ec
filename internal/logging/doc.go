// Package logging builds the zerolog loggers used across paginate and carries
// them, together with a per-invocation trace ID, through context.Context.
//
// Every log event uses the "component" and "operation" fields to identify
// where it came from. The interactive browser must never write to the
// terminal it draws on, so Output "discard" is supported alongside stderr and
// file output.
package logging
