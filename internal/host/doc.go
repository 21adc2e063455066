// Package host is a small owning context for text fields: it lays out a
// column of independent fields, routes keys to the focused one, and answers
// every commit with a confirmation or a rejection after a simulated
// round-trip.
//
// Fields never coordinate with each other; the host only forwards owner
// messages, and each field ignores those addressed to another ID.
package host
