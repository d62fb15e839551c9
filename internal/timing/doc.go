// Package timing recognises SRT cue timing lines ("HH:MM:SS,mmm -->
// HH:MM:SS,mmm") and rewrites them under one adjustment mode.
//
// Timestamps are offsets from zero rather than times of day, so shifting past
// midnight or before zero never wraps: 23:59:59,500 plus one second is
// 24:00:00,500 and 00:00:01,000 minus one and a half seconds is
// -00:00:00,500. Lines that do not contain a timing pair are returned
// untouched.
package timing
