// Package output handles what the postgraph CLI prints.
//
// # Printer
//
// Every command writes through a Printer, which switches between
// human-readable and JSON output:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Table([]string{"YEAR", "POSTS"}, rows)
//	printer.Error(err)
//
// Human output is styled with lipgloss when the writer is a terminal and
// plain otherwise. In JSON mode errors are printed as {"error": "...", "code": N}.
//
// # Exit codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad flags, invalid dates, malformed input files
//	output.ExitSystemError // 2: I/O failures
//
// Errors built with NewUserError and NewSystemError carry their code;
// GetExitCode maps any other error to ExitUserError.
package output
