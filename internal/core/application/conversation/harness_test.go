package conversation_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"orderbot/internal/adapters/out/memory"
	"orderbot/internal/core/application/conversation"
	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/core/domain/model/agent"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/services"
	"orderbot/internal/core/ports"
	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

const (
	chatID            = int64(1001)
	backOfficeCommand = "/mypassword"
)

var (
	clock = time.Date(2024, 5, 14, 19, 30, 0, 0, time.UTC)
	pool  = []struct{ phone, name string }{
		{"+972542562628", "Avi"},
		{"+972544969475", "Dana"},
		{"+972505852703", "Moshe"},
	}
)

type customerUoWFactory func() commands.CustomerUoW

func (f customerUoWFactory) Create() commands.CustomerUoW { return f() }

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW { return f() }

type orderLineUoWFactory func() commands.OrderLineUoW

func (f orderLineUoWFactory) Create() commands.OrderLineUoW { return f() }

type uowFactory func() commands.UoW

func (f uowFactory) Create() commands.UoW { return f() }

type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.OrderConfirmedEvent
	err    error
}

func (p *recordingPublisher) PublishOrderConfirmed(_ context.Context, event ports.OrderConfirmedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

// unavailableCatalog fails every read like a database that went away.
type unavailableCatalog struct{}

func (unavailableCatalog) Save(context.Context, *catalog.Dish) error {
	return errs.NewStoreUnavailableError("save dish", errors.New("connection refused"))
}

func (unavailableCatalog) ListByType(context.Context, string) ([]*catalog.Dish, error) {
	return nil, errs.NewStoreUnavailableError("list dishes", errors.New("connection refused"))
}

func (unavailableCatalog) GetByName(context.Context, string) (*catalog.Dish, error) {
	return nil, errs.NewStoreUnavailableError("get dish", errors.New("connection refused"))
}

type harness struct {
	t        *testing.T
	store    *memory.Store
	sessions *conversation.SessionStore
	events   *recordingPublisher
	handlers conversation.Handlers
	machine  *conversation.Machine
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store := memory.NewStore()
	seedCatalog(t, store)

	uows := memory.NewUnitOfWorkFactory(store)
	orders := memory.NewOrderRepository(store)
	readModel := memory.NewReadModel(store)

	h := &harness{
		t:        t,
		store:    store,
		sessions: conversation.NewSessionStore(func() time.Time { return clock }),
		events:   &recordingPublisher{},
		handlers: conversation.Handlers{
			RegisterCustomer: commands.NewRegisterCustomerCommandHandler(
				customerUoWFactory(func() commands.CustomerUoW { return uows.Create() })),
			OpenOrder: commands.NewOpenOrderCommandHandler(
				uowFactory(func() commands.UoW { return uows.Create() }),
				services.NewAgentDispatcher(rand.NewPCG(7, 11)),
				func() time.Time { return clock }),
			AddOrderLine: commands.NewAddOrderLineCommandHandler(
				orderLineUoWFactory(func() commands.OrderLineUoW { return uows.Create() })),
			RemoveOrderLine: commands.NewRemoveOrderLineCommandHandler(
				orderLineUoWFactory(func() commands.OrderLineUoW { return uows.Create() })),
			SetOrderRemark: commands.NewSetOrderRemarkCommandHandler(
				orderUoWFactory(func() commands.OrderUoW { return uows.Create() })),
			MenuSection:      queries.NewGetMenuSectionQueryHandler(memory.NewCatalogRepository(store)),
			Cart:             queries.NewGetCartQueryHandler(orders),
			Recommended:      queries.NewGetRecommendedDishesQueryHandler(orders, readModel),
			Favorites:        queries.NewGetFavoriteDishesQueryHandler(readModel),
			OrderAgent:       queries.NewGetOrderAgentQueryHandler(orders, memory.NewAgentRepository(store)),
			WeeklyIncome:     queries.NewGetWeeklyIncomeQueryHandler(readModel),
			IncomeByDishType: queries.NewGetIncomeByDishTypeQueryHandler(readModel),
			DishSales:        queries.NewGetDishSalesQueryHandler(readModel),
		},
	}
	h.rebuild()
	return h
}

// rebuild recreates the machine after handlers were swapped. Sessions survive.
func (h *harness) rebuild() {
	h.machine = conversation.NewMachine(
		conversation.Config{
			BackOfficeCommand: backOfficeCommand,
			PhotoDir:          "photos",
			Website:           "https://thaichin.co.il/",
			MenuURL:           "https://thaichin.co.il/menu/#mr-tab-0",
			Phone:             "04-953-3333",
		},
		h.handlers,
		h.sessions,
		conversation.WithEventPublisher(h.events),
		conversation.WithClock(func() time.Time { return clock }),
	)
}

func seedCatalog(t *testing.T, store *memory.Store) {
	t.Helper()
	ctx := context.Background()

	agents := memory.NewAgentRepository(store)
	for _, p := range pool {
		a, err := agent.NewAgent(kernel.MustNewPhone(p.phone), p.name)
		require.NoError(t, err)
		require.NoError(t, agents.Save(ctx, a))
	}

	menu := []struct {
		number int64
		name   string
		kind   string
		price  string
		tags   catalog.Tags
	}{
		{1, "Pad Thai", "Pad Thai", "58", catalog.NewTags(catalog.Chicken, catalog.Rice, catalog.Eggs)},
		{2, "Tom Yum", "Soups", "32", catalog.NewTags(catalog.Spicy, catalog.SeaFood, catalog.CoconutCream)},
		{3, "Spring Rolls", "Appetizer", "28", catalog.NewTags(catalog.Fried, catalog.Vegetarian)},
		{4, "Green Curry", "Wok mains", "62", catalog.NewTags(catalog.Curry, catalog.Chicken, catalog.Spicy)},
	}
	dishes := memory.NewCatalogRepository(store)
	for _, d := range menu {
		dish, err := catalog.NewDish(d.number, d.name, d.kind, kernel.MustNewPrice(d.price), d.tags)
		require.NoError(t, err)
		require.NoError(t, dishes.Save(ctx, dish))
	}
}

func (h *harness) send(u conversation.Update) []conversation.Reply {
	h.t.Helper()
	if u.ChatID == 0 {
		u.ChatID = chatID
	}
	replies, err := h.machine.Handle(context.Background(), u)
	require.NoError(h.t, err)
	return replies
}

func (h *harness) say(text string) []conversation.Reply {
	h.t.Helper()
	return h.send(conversation.Update{Text: text})
}

func (h *harness) tap(callback string) []conversation.Reply {
	h.t.Helper()
	return h.send(conversation.Update{Callback: callback})
}

func (h *harness) session() conversation.Session {
	h.t.Helper()
	var snapshot conversation.Session
	require.NoError(h.t, h.sessions.Do(chatID, func(s *conversation.Session) error {
		snapshot = *s
		return nil
	}))
	return snapshot
}

// openOrder walks a fresh chat up to Browsing with an open order.
func (h *harness) openOrder() {
	h.t.Helper()
	h.say("/start")
	h.say(conversation.LabelOrderDelivery)
	h.send(conversation.Update{Contact: &conversation.Contact{
		PhoneNumber: "0501234567", FirstName: "John", LastName: "Doe",
	}})
	h.send(conversation.Update{Location: &conversation.Location{Latitude: 32.92, Longitude: 35.08}})
	require.Equal(h.t, conversation.Browsing, h.session().State)
}

func (h *harness) addDish(name string, quantity string) []conversation.Reply {
	h.t.Helper()
	h.say("🥡 " + name + "\t0₪")
	return h.tap(conversation.QuantityCallback(quantity, name))
}

func texts(replies []conversation.Reply) []string {
	out := make([]string, 0, len(replies))
	for _, r := range replies {
		if r.Kind == conversation.TextReply || r.Kind == conversation.ChoiceReply {
			out = append(out, r.Text)
		}
	}
	return out
}

func labels(kb conversation.Keyboard) []string {
	var out []string
	for _, row := range kb {
		for _, b := range row {
			out = append(out, b.Text)
		}
	}
	return out
}
