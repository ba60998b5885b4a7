// Package pipeline runs the batch CLI: it reads raw names from positional
// args, input files and stdin, parses each with one naming.Parser, writes
// formatted results to stdout, and logs a summary.
//
// Types:
//   - Entry (Origin, Line, Raw)
//   - RunStats (Total, Valid, Invalid, Rejected)
//
// Functions:
//   - ReadNames(ctx, cfg, stdin, fn): args first, then each input in order;
//     blank lines skipped.
//   - Run(ctx, cfg, log, stdin, stdout) -> RunStats, error
package pipeline
