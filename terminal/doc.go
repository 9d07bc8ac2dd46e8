// Package terminal provides ANSI color and line-control helpers for plain
// line-oriented terminal output.
//
// Features:
//   - Closed Color set with SGR payloads and a pure Colorize
//   - Carriage-return and cursor-movement line rewriting
//   - No-echo password and line prompts
//   - Color capability detection (NO_COLOR, TERM, terminfo, isatty)
//   - Best-effort terminal restoration after a crash
//
// Sequences are emitted directly; terminfo is consulted only to decide
// whether color should be used at all.
package terminal
