// Package cli renders results for the terminal.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayTable], [DisplayTriples], [DisplayProgress].
//
//   - Format* and Render* functions return a string without performing I/O.
//     Examples: [FormatOEISLine], [RenderTable].
//
//   - Print* functions emit diagnostics about the run itself, not data.
//     Examples: [PrintExecutionConfig].
package cli
