// Package timeline turns the raw entries of a day into what the timeline
// shows: every entry is classified into a display variant, optionally
// filtered by category, grouped into time windows with media runs
// collapsed into galleries, and summarised into message threads and a
// recap of counts and locations.
//
// All functions are pure and total over well-formed entries. Missing
// optional attributes make a predicate false; they never cause an error.
package timeline
