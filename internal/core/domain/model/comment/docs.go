// Package comment provides the customer Comment aggregate.
//
// A comment carries a 1..5 rating and free text, optionally refers to one of
// the author's orders, and stays hidden from the public listing until an
// admin approves it.
package comment
