package conversation

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/ports"
	"orderbot/internal/pkg/errs"
)

func (m *Machine) cart(ctx context.Context, s *Session) (queries.GetCartQueryResponse, error) {
	query, err := queries.NewGetCartQuery(s.Order)
	if err != nil {
		return queries.GetCartQueryResponse{}, err
	}
	return m.h.Cart.Handle(ctx, query)
}

// back refreshes the cart button and shows the main keyboard again.
func (m *Machine) back(ctx context.Context, s *Session) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}

	cart, err := m.cart(ctx, s)
	if err != nil {
		return nil, err
	}
	s.CartLabel = cartButton(cart)

	s.State = Browsing
	return []Reply{textWithKeyboard("take your time 😊", mainKeyboard(s.CartLabel))}, nil
}

// cartButton labels the cart button with the current total, or as empty once
// every line is gone.
func cartButton(cart queries.GetCartQueryResponse) string {
	if !cart.HasTotal {
		return LabelEmptyCart
	}
	return CartLabel(cart.Total.String())
}

// notInCart drops the favorites already ordered.
func (m *Machine) notInCart(ctx context.Context, s *Session, favorites []catalog.Favorite) ([]catalog.Favorite, error) {
	cart, err := m.cart(ctx, s)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(slices.Clone(favorites), func(f catalog.Favorite) bool {
		return cart.Contains(f.Name)
	}), nil
}

func (m *Machine) recommendations(ctx context.Context, s *Session) ([]catalog.Favorite, error) {
	query, err := queries.NewGetRecommendedDishesQuery(s.Customer)
	if err != nil {
		return nil, err
	}
	favorites, err := m.h.Recommended.Handle(ctx, query)
	if err != nil {
		return nil, err
	}
	return m.notInCart(ctx, s, favorites)
}

// shoppingCart upsells recommended dishes before the cart review.
func (m *Machine) shoppingCart(ctx context.Context, s *Session) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}

	favorites, err := m.recommendations(ctx, s)
	if err != nil {
		return nil, err
	}

	s.State = Browsing
	return []Reply{textWithKeyboard(
		"We've found some dishes you'll really love, would you like to add to the order?",
		favoritesKeyboard(row(LabelBack, LabelContinue), favorites),
	)}, nil
}

func (m *Machine) recommended(ctx context.Context, s *Session) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}

	favorites, err := m.recommendations(ctx, s)
	if err != nil {
		return nil, err
	}

	s.State = Browsing
	return []Reply{textWithKeyboard(
		"We hope you like the dishes we have chosen for you ☺️",
		favoritesKeyboard(row(LabelBack), favorites),
	)}, nil
}

func (m *Machine) favorites(ctx context.Context, s *Session) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}

	all, err := m.h.Favorites.Handle(ctx, queries.NewGetFavoriteDishesQuery())
	if err != nil {
		return nil, err
	}
	favorites, err := m.notInCart(ctx, s, all)
	if err != nil {
		return nil, err
	}

	s.State = Browsing
	return []Reply{textWithKeyboard("Enjoy our best selling dishes ☺️", favoritesKeyboard(row(LabelBack), favorites))}, nil
}

// reviewCart lists the lines with their total and the remark, if any.
func (m *Machine) reviewCart(ctx context.Context, s *Session) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}

	cart, err := m.cart(ctx, s)
	if err != nil {
		return nil, err
	}

	s.State = ReviewingCart
	s.CartLabel = cartButton(cart)
	if !cart.HasTotal {
		return []Reply{textWithKeyboard(fmt.Sprintf("Ok, %s\nYour shopping cart is empty 🛒", s.Name), cartKeyboard())}, nil
	}

	replies := []Reply{textWithKeyboard(
		fmt.Sprintf("Ok, %s\nYour order cost %s ₪ and includes:", s.Name, cart.Total.String()),
		cartKeyboard(),
	)}
	for _, item := range cart.Items {
		replies = append(replies, text(fmt.Sprintf("%d\t%s", item.Quantity, item.DishName)))
	}
	if cart.Remark != "" {
		replies = append(replies, text(cart.Remark))
	}
	return replies, nil
}

func (m *Machine) remarkPrompt() []Reply {
	return []Reply{textWithKeyboard(
		"Write down your remarks, at the end of the message write down that emoji: "+commands.RemarkSentinel,
		continueKeyboard(),
	)}
}

func (m *Machine) writeRemark(s *Session) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}

	s.State = AwaitingRemark
	return m.remarkPrompt(), nil
}

// remark stores the message as the order remark, replacing any previous one.
func (m *Machine) remark(ctx context.Context, s *Session, remark string) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}

	cmd, err := commands.NewSetOrderRemarkCommand(s.Order, remark)
	if errors.Is(err, errs.ErrValueIsRequired) {
		s.State = AwaitingRemark
		return m.remarkPrompt(), nil
	}
	if err != nil {
		return nil, err
	}
	if err = m.h.SetOrderRemark.Handle(ctx, cmd); err != nil {
		return nil, err
	}

	s.State = ReviewingCart
	return []Reply{textWithKeyboard("Your comment has been successfully registered", continueKeyboard())}, nil
}

func (m *Machine) deleteMenu(ctx context.Context, s *Session) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}

	cart, err := m.cart(ctx, s)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		s.CartLabel = cartButton(cart)
		s.State = Browsing
		return []Reply{textWithKeyboard("Your shopping cart is empty 🛒", mainKeyboard(s.CartLabel))}, nil
	}

	s.State = ReviewingCart
	return []Reply{textWithKeyboard("Select the dishes you want to remove from the order", deleteKeyboard(cart.Items))}, nil
}

// deleteDish removes one line. A dish that is not in the cart is reported as
// already removed.
func (m *Machine) deleteDish(ctx context.Context, s *Session, dish string) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}

	cmd, err := commands.NewRemoveOrderLineCommand(s.Order, dish)
	if err != nil {
		return nil, err
	}
	removed, err := m.h.RemoveOrderLine.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	s.State = Browsing
	if !removed {
		return []Reply{text(dish + " is no longer in your order")}, nil
	}
	s.UnmarkSized(dish)
	return []Reply{text(dish + " has been removed from your order")}, nil
}

func (m *Machine) goToPayment(ctx context.Context, s *Session) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}

	cart, err := m.cart(ctx, s)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		s.CartLabel = cartButton(cart)
		s.State = Browsing
		return []Reply{textWithKeyboard("Your shopping cart is empty, pick some dishes first 🙂", mainKeyboard(s.CartLabel))}, nil
	}

	s.State = ReadyToPay
	return []Reply{textWithKeyboard("How would you like to pay?", paymentKeyboard())}, nil
}

func knownPayment(method string) bool {
	for _, p := range PaymentMethods() {
		if p.Name == method {
			return true
		}
	}
	return false
}

// pay confirms the order. No money is charged; the method is only announced.
func (m *Machine) pay(ctx context.Context, s *Session, method string) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}
	if s.State != ReadyToPay || !knownPayment(method) {
		return m.goToPayment(ctx, s)
	}

	cart, err := m.cart(ctx, s)
	if err != nil {
		return nil, err
	}
	name, phone, err := m.agentContact(ctx, s)
	if err != nil {
		return nil, err
	}

	s.State = Confirmed
	m.logger.InfoContext(ctx, "order confirmed",
		"chat_id", s.ChatID, "order", s.Order.String(), "payment", method, "total", cart.Total.String())
	m.publishConfirmed(ctx, s, method, cart)

	return []Reply{textWithKeyboard(
		"Excellent!, we have started working on your order and it will be out soon\n"+agentLine(name, phone),
		confirmedKeyboard(),
	)}, nil
}

// agentContact looks up the agent stored on the order, falling back to the one
// assigned when the order was opened.
func (m *Machine) agentContact(ctx context.Context, s *Session) (string, string, error) {
	query, err := queries.NewGetOrderAgentQuery(s.Order)
	if err != nil {
		return "", "", err
	}

	contact, err := m.h.OrderAgent.Handle(ctx, query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		m.logger.WarnContext(ctx, "order agent not found", "chat_id", s.ChatID, "order", s.Order.String())
		return s.AgentName, s.AgentPhone.String(), nil
	}
	if err != nil {
		return "", "", err
	}
	return contact.Name, contact.Phone.String(), nil
}

func agentLine(name, phone string) string {
	if name == "" && phone == "" {
		return "a delivery agent will contact you shortly"
	}
	return fmt.Sprintf("your delivery agent is %s\nand their phone number is: %s", name, phone)
}

func (m *Machine) publishConfirmed(ctx context.Context, s *Session, method string, cart queries.GetCartQueryResponse) {
	if m.events == nil {
		return
	}

	event := ports.OrderConfirmedEvent{
		OrderNumber:   int64(s.Order),
		Customer:      s.Customer.String(),
		Agent:         s.AgentPhone.String(),
		PaymentMethod: method,
		Total:         cart.Total,
		Remark:        cart.Remark,
		ConfirmedAt:   m.now(),
	}
	if err := m.events.PublishOrderConfirmed(ctx, event); err != nil {
		m.logger.WarnContext(ctx, "order confirmed event not published",
			"order", s.Order.String(), "error", err)
	}
}

func (m *Machine) shipmentStatus(ctx context.Context, s *Session) ([]Reply, error) {
	switch {
	case s.Order > 0 && s.State == Confirmed:
		name, phone, err := m.agentContact(ctx, s)
		if err != nil {
			return nil, err
		}
		return []Reply{textWithKeyboard(
			fmt.Sprintf("Your order %s is on its way 🛵\n%s", s.Order.String(), agentLine(name, phone)),
			confirmedKeyboard(),
		)}, nil
	case s.HasOpenOrder():
		return []Reply{textWithKeyboard(
			"Your order has not been placed yet, go to payment to complete it",
			mainKeyboard(s.CartLabel),
		)}, nil
	default:
		replies, _ := m.requireOpenOrder(s)
		return replies, nil
	}
}
