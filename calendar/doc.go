// Package calendar derives the meeting dates of a month.
//
// Meetings recur on a fixed set of weekdays (Thursday and Saturday by default).
// All functions are pure: they depend only on their inputs and the Gregorian
// calendar, never on the wall clock or time zone.
package calendar
