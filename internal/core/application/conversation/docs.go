// Package conversation implements the per-chat order session state machine.
//
// Raw chat updates are classified into a closed set of intents by Classifier and
// routed by Machine to the transition that owns them. Transitions issue commands
// and queries from the usecases packages and answer with transport-agnostic
// Reply values; they never touch a chat API directly.
//
// State flow:
//
//	New ──> AwaitingContact ──> AwaitingLocation ──> Browsing <──> SizingDish
//	                                                    │
//	                                                    v
//	                     Confirmed <── ReadyToPay <── ReviewingCart <──> AwaitingRemark
//
// Sessions live in a SessionStore, which serializes every transition of one chat
// and expires idle conversations.
package conversation
