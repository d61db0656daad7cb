package conversation

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/services"
	"orderbot/internal/pkg/errs"
)

func (m *Machine) start(s *Session) []Reply {
	s.Reset()
	return []Reply{textWithKeyboard("Hello customer What would you like to do?", startKeyboard())}
}

func (m *Machine) somethingElse() []Reply {
	return []Reply{textWithKeyboard(
		"You are welcome to visit the restaurant website\n"+m.cfg.Website,
		somethingElseKeyboard(),
	)}
}

func (m *Machine) callUs() []Reply {
	return []Reply{textWithKeyboard("Dial the number: "+m.cfg.Phone, undoKeyboard())}
}

func (m *Machine) requestDelivery(s *Session) []Reply {
	s.Reset()
	s.State = AwaitingContact
	return m.contactPrompt()
}

func (m *Machine) contactPrompt() []Reply {
	return []Reply{textWithKeyboard("Please share your phone number", contactKeyboard())}
}

func (m *Machine) shareContact(ctx context.Context, s *Session, c Contact) ([]Reply, error) {
	phone, err := kernel.NewPhone(c.PhoneNumber)
	if err != nil {
		m.logger.WarnContext(ctx, "contact without a usable phone", "chat_id", s.ChatID, "error", err)
		s.State = AwaitingContact
		return m.contactPrompt(), nil
	}

	name := customer.DisplayName(c.FirstName, c.LastName)
	cmd, err := commands.NewRegisterCustomerCommand(phone, name)
	if err != nil {
		return nil, err
	}
	if err = m.h.RegisterCustomer.Handle(ctx, cmd); err != nil {
		return nil, err
	}

	s.clearOrder()
	s.Customer = phone
	s.Name = name
	s.State = AwaitingLocation
	return []Reply{textWithKeyboard(
		fmt.Sprintf("Hey %s please share your location for delivery", name),
		locationKeyboard(),
	)}, nil
}

func (m *Machine) shareLocation(ctx context.Context, s *Session) ([]Reply, error) {
	if s.Customer.IsZero() {
		s.State = AwaitingContact
		return m.contactPrompt(), nil
	}

	cmd, err := commands.NewOpenOrderCommand(s.Customer, true)
	if err != nil {
		return nil, err
	}

	result, err := m.h.OpenOrder.Handle(ctx, cmd)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// The customer row is gone; ask for the contact again to recreate it.
		s.Customer = kernel.Phone{}
		s.State = AwaitingContact
		return m.contactPrompt(), nil
	case errors.Is(err, services.ErrAgentNotFound):
		m.logger.ErrorContext(ctx, "no delivery agents configured", "chat_id", s.ChatID)
		return []Reply{text("Sorry, no delivery agent is available right now, please try again later 🙏")}, nil
	case err != nil:
		return nil, err
	}

	s.BeginOrder(result.Number, result.Agent.Name(), result.Agent.Phone())
	m.logger.InfoContext(ctx, "order opened",
		"chat_id", s.ChatID, "order", result.Number.String(), "agent", result.Agent.Phone().String())

	return []Reply{textWithKeyboard(
		fmt.Sprintf("ok, %s let's choose dishes to order, you are also welcome to browse the menu:\n%s",
			s.Name, m.cfg.MenuURL),
		mainKeyboard(s.CartLabel),
	)}, nil
}

func (m *Machine) chooseDishType(ctx context.Context, s *Session, dishType string) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}

	query, err := queries.NewGetMenuSectionQuery(dishType)
	if err != nil {
		return m.unknown(s), nil //nolint:nilerr // unparsable label
	}
	items, err := m.h.MenuSection.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	s.State = Browsing
	return []Reply{textWithKeyboard("Select "+query.DishType(), menuKeyboard(row(LabelBack), items))}, nil
}

func (m *Machine) chooseDish(s *Session, dish string) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}
	if dish == "" {
		return m.unknown(s), nil
	}

	s.SizingDish = dish
	s.State = SizingDish
	return []Reply{
		photo(filepath.Join(m.cfg.PhotoDir, dish+".png")),
		choice("How many units would you like of this dish?", quantityChoices(dish)),
	}, nil
}

// chooseQuantity writes the first quantity answered for a dish. Later answers
// for the same dish leave the cart untouched until the dish is deleted from it.
func (m *Machine) chooseQuantity(ctx context.Context, s *Session, dish string, quantity int) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}
	if s.IsSized(dish) {
		m.logger.DebugContext(ctx, "duplicate quantity answer dropped", "chat_id", s.ChatID, "dish", dish)
		if s.SizingDish == dish {
			s.SizingDish = ""
			s.State = Browsing
		}
		return []Reply{clearChoice(), text(dish + " is already in your order")}, nil
	}

	cmd, err := commands.NewAddOrderLineCommand(s.Order, dish, quantity)
	if err != nil {
		return nil, err
	}

	s.State = Browsing
	if s.SizingDish == dish {
		s.SizingDish = ""
	}

	err = m.h.AddOrderLine.Handle(ctx, cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		m.logger.WarnContext(ctx, "dish no longer in catalog", "chat_id", s.ChatID, "dish", dish)
		return []Reply{clearChoice(), text(fmt.Sprintf("Sorry, %s is no longer available 😔", dish))}, nil
	}
	if err != nil {
		return nil, err
	}

	s.MarkSized(dish)
	return []Reply{clearChoice(), text(fmt.Sprintf("%d × %s added to your order", quantity, dish))}, nil
}

func (m *Machine) rejectDish(s *Session, dish string) ([]Reply, error) {
	if replies, ok := m.requireOpenOrder(s); !ok {
		return replies, nil
	}

	if s.SizingDish == dish {
		s.SizingDish = ""
	}
	s.State = Browsing
	return []Reply{clearChoice()}, nil
}
