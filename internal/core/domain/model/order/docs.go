// Package order contains the Order aggregate root and its Status state
// machine.
//
// An order is created in Confirmed status at placement and moves through
// PaymentVerified to Booked according to the transition table in status.go.
// Two documented bypasses exist: payment verification corrects the status in
// either direction, and supplying transport details forces Booked from any
// state. Cancellation removes the order entirely.
package order
