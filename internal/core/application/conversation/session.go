package conversation

import (
	"time"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
)

// Session is the transient state of one chat. It is owned by a SessionStore and
// must only be touched inside SessionStore.Do.
type Session struct {
	ChatID   int64
	State    State
	Customer kernel.Phone
	Name     string

	// Order is zero until a location is shared.
	Order      order.Number
	AgentName  string
	AgentPhone kernel.Phone

	// SizingDish is the dish whose quantity prompt was shown last.
	SizingDish string
	// CartLabel heads the main keyboard and shows the running total.
	CartLabel  string
	BackOffice bool
	LastSeen   time.Time

	// sized holds the dishes whose quantity was already answered for this order.
	sized map[string]struct{}
}

func newSession(chatID int64, now time.Time) *Session {
	return &Session{
		ChatID:    chatID,
		State:     New,
		CartLabel: LabelEmptyCart,
		LastSeen:  now,
		sized:     make(map[string]struct{}),
	}
}

// Reset returns the session to New. The customer identity survives.
func (s *Session) Reset() {
	s.State = New
	s.BackOffice = false
	s.clearOrder()
}

// BeginOrder attaches a freshly opened order and clears everything left from the
// previous one.
func (s *Session) BeginOrder(number order.Number, agentName string, agentPhone kernel.Phone) {
	s.clearOrder()
	s.Order = number
	s.AgentName = agentName
	s.AgentPhone = agentPhone
	s.State = Browsing
}

func (s *Session) clearOrder() {
	s.Order = 0
	s.AgentName = ""
	s.AgentPhone = kernel.Phone{}
	s.SizingDish = ""
	s.CartLabel = LabelEmptyCart
	s.sized = make(map[string]struct{})
}

// HasOpenOrder reports whether lines of the session's order may still change.
func (s *Session) HasOpenOrder() bool {
	return s.Order > 0 && s.State.HasOpenOrder()
}

// IsSized reports whether a quantity was already answered for dish.
func (s *Session) IsSized(dish string) bool {
	_, ok := s.sized[dish]
	return ok
}

// MarkSized records a quantity answer for dish. It returns false if one was
// already recorded.
func (s *Session) MarkSized(dish string) bool {
	if s.IsSized(dish) {
		return false
	}
	s.sized[dish] = struct{}{}
	return true
}

// UnmarkSized forgets the quantity answer for dish so it can be ordered again.
func (s *Session) UnmarkSized(dish string) {
	delete(s.sized, dish)
}
