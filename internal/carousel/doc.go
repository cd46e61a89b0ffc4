// Package carousel implements the hero slide rotation.
//
// Carousel is the index state machine over a fixed, ordered slide list:
// Next and Previous wrap, GoTo only accepts indices in [0, N). Schedule
// tracks the auto-advance phase for callers that drive time themselves
// (the TUI tick loop). Player owns a real ticker for callers that do not
// (the HTTP server, `slides --play`): Run acquires the ticker, releases it
// exactly once on return, and applies ticks and commands on one goroutine.
package carousel
