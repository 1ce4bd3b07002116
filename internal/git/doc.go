// Package git provides Git operations via exec for the postgraph CLI.
//
// It is used to resolve the "git Created" and "git Last Modified" front
// matter dates, which date a page by its commit history:
//
//	created, err := git.Created(ctx, "content/posts/hello.md")
//	modified, err := git.LastModified(ctx, "content/posts/hello.md")
//
// Commands run in the directory of the file they ask about, so pages may
// live in any repository. A file without commits yields ErrUntracked.
//
// # Running Git Commands
//
// Other commands go through RunContext:
//
//	out, err := git.RunContext(ctx, dir, "log", "--oneline", "-5")
//
// # Error Handling
//
// Failures are returned as *output.ExitError with ExitSystemError, the code
// for a broken or missing git installation.
package git
