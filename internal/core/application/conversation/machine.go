package conversation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/core/ports"
	"orderbot/internal/pkg/errs"
)

const (
	msgMisunderstood = "Sorry, I didn't understand that 🤔"
	msgUnavailable   = "Sorry, we are having technical difficulties, please try again in a few minutes 🙏"
	msgGone          = "Sorry, this is no longer available 😔"
)

// Config holds the texts and paths the conversation shows to users.
type Config struct {
	// BackOfficeCommand is the secret chat command opening the reports menu.
	BackOfficeCommand string
	// PhotoDir holds one <dish name>.png per dish.
	PhotoDir string
	Website  string
	MenuURL  string
	Phone    string
}

// Handlers are the usecases the conversation drives.
type Handlers struct {
	RegisterCustomer commands.RegisterCustomerCommandHandler
	OpenOrder        commands.OpenOrderCommandHandler
	AddOrderLine     commands.AddOrderLineCommandHandler
	RemoveOrderLine  commands.RemoveOrderLineCommandHandler
	SetOrderRemark   commands.SetOrderRemarkCommandHandler

	MenuSection      queries.GetMenuSectionQueryHandler
	Cart             queries.GetCartQueryHandler
	Recommended      queries.GetRecommendedDishesQueryHandler
	Favorites        queries.GetFavoriteDishesQueryHandler
	OrderAgent       queries.GetOrderAgentQueryHandler
	WeeklyIncome     queries.GetWeeklyIncomeQueryHandler
	IncomeByDishType queries.GetIncomeByDishTypeQueryHandler
	DishSales        queries.GetDishSalesQueryHandler
}

// Option customizes a Machine.
type Option func(*Machine)

// WithEventPublisher announces confirmed orders through p.
func WithEventPublisher(p ports.OrderEventPublisher) Option {
	return func(m *Machine) { m.events = p }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// WithLogger replaces slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) { m.logger = logger }
}

// Machine routes classified updates to session transitions.
type Machine struct {
	cfg        Config
	classifier Classifier
	sessions   *SessionStore
	h          Handlers
	events     ports.OrderEventPublisher
	now        func() time.Time
	logger     *slog.Logger
}

// NewMachine creates the state machine over sessions.
func NewMachine(cfg Config, h Handlers, sessions *SessionStore, opts ...Option) *Machine {
	m := &Machine{
		cfg:        cfg,
		classifier: NewClassifier(cfg.BackOfficeCommand),
		sessions:   sessions,
		h:          h,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", "conversation")
	return m
}

// Handle classifies u and runs the matching transition on the chat's session.
//
// Store outages, vanished catalog entries and malformed input are answered with
// an apology instead of an error. An error is returned only for an update without
// a chat or when ctx is done.
func (m *Machine) Handle(ctx context.Context, u Update) ([]Reply, error) {
	if u.ChatID == 0 {
		return nil, errs.NewValueIsRequiredError("chat id")
	}

	intent := m.classifier.Classify(u)
	m.logger.DebugContext(ctx, "update classified", "chat_id", u.ChatID, "intent", intent.Kind.String())

	var replies []Reply
	err := m.sessions.Do(u.ChatID, func(s *Session) error {
		var err error
		replies, err = m.dispatch(ctx, s, intent)
		return err
	})
	if err == nil {
		return replies, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	return []Reply{m.apology(ctx, u.ChatID, intent, err)}, nil
}

//nolint:cyclop,gocyclo // one case per intent
func (m *Machine) dispatch(ctx context.Context, s *Session, intent Intent) ([]Reply, error) {
	switch intent.Kind {
	case IntentStart:
		return m.start(s), nil
	case IntentBackOffice:
		return m.openBackOffice(s), nil
	case IntentRequestDelivery:
		return m.requestDelivery(s), nil
	case IntentSomethingElse:
		return m.somethingElse(), nil
	case IntentCallUs:
		return m.callUs(), nil
	case IntentShareContact:
		return m.shareContact(ctx, s, intent.Contact)
	case IntentShareLocation:
		return m.shareLocation(ctx, s)
	case IntentChooseDishType:
		return m.chooseDishType(ctx, s, intent.DishType)
	case IntentChooseDish:
		return m.chooseDish(s, intent.Dish)
	case IntentChooseQuantity:
		return m.chooseQuantity(ctx, s, intent.Dish, intent.Quantity)
	case IntentRejectDish:
		return m.rejectDish(s, intent.Dish)
	case IntentBack:
		return m.back(ctx, s)
	case IntentShoppingCart:
		return m.shoppingCart(ctx, s)
	case IntentRecommended:
		return m.recommended(ctx, s)
	case IntentFavorites:
		return m.favorites(ctx, s)
	case IntentReviewCart:
		return m.reviewCart(ctx, s)
	case IntentWriteRemark:
		return m.writeRemark(s)
	case IntentRemark:
		return m.remark(ctx, s, intent.Remark)
	case IntentDeleteMenu:
		return m.deleteMenu(ctx, s)
	case IntentDeleteDish:
		return m.deleteDish(ctx, s, intent.Dish)
	case IntentGoToPayment:
		return m.goToPayment(ctx, s)
	case IntentPay:
		return m.pay(ctx, s, intent.Payment)
	case IntentShipmentStatus:
		return m.shipmentStatus(ctx, s)
	case IntentWeeklyIncome:
		return m.weeklyIncome(ctx, s)
	case IntentIncomeByDishType:
		return m.incomeByDishType(ctx, s)
	case IntentWorstSellers:
		return m.dishSales(ctx, s, queries.WorstSellers)
	case IntentBestSellers:
		return m.dishSales(ctx, s, queries.BestSellers)
	default:
		return m.unknown(s), nil
	}
}

func (m *Machine) apology(ctx context.Context, chatID int64, intent Intent, err error) Reply {
	attrs := []any{"chat_id", chatID, "intent", intent.Kind.String(), "error", err}

	switch {
	case errors.Is(err, errs.ErrStoreUnavailable):
		m.logger.ErrorContext(ctx, "store unavailable", attrs...)
		return text(msgUnavailable)
	case errors.Is(err, errs.ErrObjectNotFound):
		m.logger.WarnContext(ctx, "object not found", attrs...)
		return text(msgGone)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		m.logger.WarnContext(ctx, "rejected input", attrs...)
		return text(msgMisunderstood)
	default:
		m.logger.ErrorContext(ctx, "transition failed", attrs...)
		return text(msgUnavailable)
	}
}

// requireOpenOrder answers for intents that need an order accepting changes.
// ok is false when the caller must return replies as is.
func (m *Machine) requireOpenOrder(s *Session) (replies []Reply, ok bool) {
	switch {
	case s.HasOpenOrder():
		return nil, true
	case s.Order > 0 && s.State == Confirmed:
		return []Reply{textWithKeyboard(
			"Your order is already on its way 🛵 Start a new order to add more dishes.",
			confirmedKeyboard(),
		)}, false
	default:
		return []Reply{textWithKeyboard("Let's start with a new order 🙂", startKeyboard())}, false
	}
}

// currentKeyboard is the keyboard matching where the session stands.
func currentKeyboard(s *Session) Keyboard {
	switch {
	case s.BackOffice:
		return backOfficeKeyboard()
	case s.State == AwaitingContact:
		return contactKeyboard()
	case s.State == AwaitingLocation:
		return locationKeyboard()
	case s.State == Confirmed:
		return confirmedKeyboard()
	case s.HasOpenOrder():
		return mainKeyboard(s.CartLabel)
	default:
		return startKeyboard()
	}
}

func (m *Machine) unknown(s *Session) []Reply {
	if s.State == AwaitingRemark {
		return m.remarkPrompt()
	}
	return []Reply{textWithKeyboard(msgMisunderstood, currentKeyboard(s))}
}
