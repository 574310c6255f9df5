// Package classify decides whether a fetched reservation page shows
// day-use pass availability for a target park.
//
// Classification combines weak lexical evidence (fixed availability
// and unavailability phrase lists) with a structural scan for
// interactive booking controls. The decision is deliberately biased
// against false positives: any unavailability phrase on the page
// vetoes an Available verdict.
package classify
