// Package dispatch orchestrates the batch: file discovery, per-file job
// construction, external tool invocation (directly or via the queue
// wrapper), and summary reporting.
package dispatch
