// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the conversation and the back office.
//
// Handlers read through the ports interfaces, outside of any unit of work:
// read-committed consistency is enough for every query here.
package queries
