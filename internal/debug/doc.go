// Package debug provides logging for Monaco.
//
// Output is discarded until a command enables it: the --debug flag sends
// JSON logs to a file (the terminal UI owns the screen), and the serve
// command writes them to stderr.
package debug
