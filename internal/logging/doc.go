// Package logging provides concrete implementations of the includefolder.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: structured slog output on stderr through a tint handler,
//     coloured only when stderr is a terminal
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
