// Package services provides domain services that work across several domain
// entities of the ordering assistant.
//
// The package includes:
//   - AgentDispatcher: picks the delivery agent for a new order from the staff pool
//
// The taste-based recommendation engine lives in the taste subpackage.
package services
