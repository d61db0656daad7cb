package conversation_test

import (
	"context"
	"errors"
	"testing"

	"orderbot/internal/adapters/out/memory"
	"orderbot/internal/core/application/conversation"
	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_EndToEndOrder(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	replies := h.say("/start")
	require.Len(t, replies, 1)
	assert.Equal(t, []string{conversation.LabelOrderDelivery, conversation.LabelSomethingElse}, labels(replies[0].Keyboard))

	replies = h.say(conversation.LabelOrderDelivery)
	require.Len(t, replies, 1)
	assert.True(t, replies[0].Keyboard[0][0].RequestContact)
	assert.Equal(t, conversation.AwaitingContact, h.session().State)

	replies = h.send(conversation.Update{Contact: &conversation.Contact{
		PhoneNumber: "0501234567", FirstName: "John", LastName: "Doe",
	}})
	require.Len(t, replies, 1)
	assert.Equal(t, "Hey John Doe please share your location for delivery", replies[0].Text)
	assert.True(t, replies[0].Keyboard[0][0].RequestLocation)

	phone := kernel.MustNewPhone("0501234567")
	stored, err := memory.NewCustomerRepository(h.store).Get(ctx, phone)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", stored.Name())
	assert.Equal(t, "+0501234567", stored.Phone().String())

	replies = h.send(conversation.Update{Location: &conversation.Location{Latitude: 32.92, Longitude: 35.08}})
	require.Len(t, replies, 1)
	assert.Equal(t, conversation.LabelEmptyCart, replies[0].Keyboard[0][0].Text)

	s := h.session()
	assert.Equal(t, conversation.Browsing, s.State)
	assert.Equal(t, order.Number(1), s.Order)
	o, err := memory.NewOrderRepository(h.store).Get(ctx, s.Order)
	require.NoError(t, err)
	assert.True(t, o.Customer().IsEqual(phone))
	assert.True(t, o.IsShipping())
	var agentPhones []string
	for _, p := range pool {
		agentPhones = append(agentPhones, p.phone)
	}
	assert.Contains(t, agentPhones, o.Agent().String())

	replies = h.say("🌏 Pad Thai🫕")
	require.Len(t, replies, 1)
	assert.Equal(t, "Select Pad Thai", replies[0].Text)
	assert.Equal(t, []string{conversation.LabelBack, "🥡 Pad Thai\t58₪"}, labels(replies[0].Keyboard))

	replies = h.say("🥡 Pad Thai\t58₪")
	require.Len(t, replies, 2)
	assert.Equal(t, conversation.PhotoReply, replies[0].Kind)
	assert.Equal(t, "photos/Pad Thai.png", replies[0].Photo)
	assert.Equal(t, conversation.ChoiceReply, replies[1].Kind)
	assert.Equal(t, "How many units would you like of this dish?", replies[1].Text)
	assert.Equal(t, "qty:2:Pad Thai", replies[1].Choices[1][1].Data)
	assert.Equal(t, conversation.SizingDish, h.session().State)

	replies = h.tap("qty:2:Pad Thai")
	require.Len(t, replies, 2)
	assert.Equal(t, conversation.ClearChoiceReply, replies[0].Kind)
	assert.Equal(t, conversation.Browsing, h.session().State)

	lines, err := memory.NewOrderRepository(h.store).Lines(ctx, s.Order)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Pad Thai", lines[0].DishName)
	assert.Equal(t, 2, lines[0].Quantity)

	replies = h.say(conversation.LabelContinue)
	assert.Equal(t, []string{
		"Ok, John Doe\nYour order cost 116 ₪ and includes:",
		"2\tPad Thai",
	}, texts(replies))
	assert.Equal(t, conversation.ReviewingCart, h.session().State)
}

func TestMachine_DuplicateQuantityIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.openOrder()

	h.addDish("Pad Thai", "2")
	replies := h.tap("qty:3:Pad Thai")

	require.Len(t, replies, 2)
	assert.Equal(t, conversation.ClearChoiceReply, replies[0].Kind)
	assert.Equal(t, []string{"Pad Thai is already in your order"}, texts(replies))
	lines, err := memory.NewOrderRepository(h.store).Lines(context.Background(), h.session().Order)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestMachine_RejectDish(t *testing.T) {
	h := newHarness(t)
	h.openOrder()

	h.say("🥡 Tom Yum\t32₪")
	replies := h.tap(conversation.RejectCallback("Tom Yum"))

	require.Len(t, replies, 1)
	assert.Equal(t, conversation.ClearChoiceReply, replies[0].Kind)
	assert.Equal(t, conversation.Browsing, h.session().State)
	lines, err := memory.NewOrderRepository(h.store).Lines(context.Background(), h.session().Order)
	require.NoError(t, err)
	assert.Empty(t, lines)

	h.tap("qty:1:Tom Yum")
	lines, err = memory.NewOrderRepository(h.store).Lines(context.Background(), h.session().Order)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestMachine_DishGoneFromCatalog(t *testing.T) {
	h := newHarness(t)
	h.openOrder()

	replies := h.addDish("Massaman", "1")

	assert.Equal(t, []string{"Sorry, Massaman is no longer available 😔"}, texts(replies))
	lines, err := memory.NewOrderRepository(h.store).Lines(context.Background(), h.session().Order)
	require.NoError(t, err)
	assert.Empty(t, lines)
	s := h.session()
	assert.False(t, s.IsSized("Massaman"))
}

func TestMachine_BackShowsCartTotal(t *testing.T) {
	h := newHarness(t)
	h.openOrder()

	replies := h.say(conversation.LabelBack)
	require.Len(t, replies, 1)
	assert.Equal(t, conversation.LabelEmptyCart, replies[0].Keyboard[0][0].Text)

	h.addDish("Pad Thai", "2")
	h.addDish("Tom Yum", "1")
	replies = h.say(conversation.LabelBack)

	require.Len(t, replies, 1)
	assert.Equal(t, "take your time 😊", replies[0].Text)
	assert.Equal(t, "🛒Shopping cart (148 ₪)", replies[0].Keyboard[0][0].Text)
	assert.Len(t, replies[0].Keyboard, 8)
}

func TestMachine_DeleteFlow(t *testing.T) {
	h := newHarness(t)
	h.openOrder()
	h.addDish("Pad Thai", "2")
	h.addDish("Tom Yum", "1")

	replies := h.say(conversation.LabelDeleteMenu)
	require.Len(t, replies, 1)
	assert.Equal(t, []string{conversation.LabelBack, "❌delete\tPad Thai", "❌delete\tTom Yum"}, labels(replies[0].Keyboard))

	replies = h.say(conversation.DeleteLabel("Spring Rolls"))
	assert.Equal(t, []string{"Spring Rolls is no longer in your order"}, texts(replies))

	replies = h.say(conversation.DeleteLabel("Pad Thai"))
	assert.Equal(t, []string{"Pad Thai has been removed from your order"}, texts(replies))

	replies = h.say(conversation.DeleteLabel("Pad Thai"))
	assert.Equal(t, []string{"Pad Thai is no longer in your order"}, texts(replies))

	ctx := context.Background()
	lines, err := memory.NewOrderRepository(h.store).Lines(ctx, h.session().Order)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Tom Yum", lines[0].DishName)

	h.addDish("Pad Thai", "1")
	lines, err = memory.NewOrderRepository(h.store).Lines(ctx, h.session().Order)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestMachine_CartButtonEmptiesAfterLastDelete(t *testing.T) {
	h := newHarness(t)
	h.openOrder()
	h.addDish("Pad Thai", "1")

	replies := h.say(conversation.LabelBack)
	require.Len(t, replies, 1)
	assert.Equal(t, "🛒Shopping cart (58 ₪)", replies[0].Keyboard[0][0].Text)

	h.say(conversation.DeleteLabel("Pad Thai"))
	replies = h.say(conversation.LabelBack)

	require.Len(t, replies, 1)
	assert.Equal(t, conversation.LabelEmptyCart, replies[0].Keyboard[0][0].Text)
	assert.Equal(t, conversation.LabelEmptyCart, h.session().CartLabel)
}

func TestMachine_Remark(t *testing.T) {
	h := newHarness(t)
	h.openOrder()
	h.addDish("Pad Thai", "1")
	h.say(conversation.LabelContinue)

	replies := h.say(conversation.LabelWriteRemark)
	assert.Equal(t, []string{"Write down your remarks, at the end of the message write down that emoji: 📝"}, texts(replies))
	assert.Equal(t, conversation.AwaitingRemark, h.session().State)

	replies = h.say("just some words")
	assert.Equal(t, []string{"Write down your remarks, at the end of the message write down that emoji: 📝"}, texts(replies))

	h.say("no peanuts 📝")
	replies = h.say("ring twice, no peanuts📝")
	assert.Equal(t, []string{"Your comment has been successfully registered"}, texts(replies))
	assert.Equal(t, conversation.ReviewingCart, h.session().State)

	replies = h.say(conversation.LabelContinue)
	assert.Equal(t, []string{
		"Ok, John Doe\nYour order cost 58 ₪ and includes:",
		"1\tPad Thai",
		"ring twice, no peanuts",
	}, texts(replies))
}

func TestMachine_EmptyRemarkIsRejected(t *testing.T) {
	h := newHarness(t)
	h.openOrder()

	replies := h.say(" 📝 ")

	assert.Equal(t, []string{"Write down your remarks, at the end of the message write down that emoji: 📝"}, texts(replies))
	o, err := memory.NewOrderRepository(h.store).Get(context.Background(), h.session().Order)
	require.NoError(t, err)
	_, ok := o.Remark()
	assert.False(t, ok)
}

func TestMachine_PaymentConfirmsOrder(t *testing.T) {
	h := newHarness(t)
	h.openOrder()

	replies := h.say(conversation.LabelGoToPayment)
	assert.Equal(t, []string{"Your shopping cart is empty, pick some dishes first 🙂"}, texts(replies))

	h.addDish("Green Curry", "2")
	h.say("remove coriander 📝")

	replies = h.say("♦ Cash 💷")
	assert.Equal(t, []string{"How would you like to pay?"}, texts(replies))
	assert.Equal(t, conversation.ReadyToPay, h.session().State)

	replies = h.say("♦ Cash 💷")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Excellent!, we have started working on your order")

	s := h.session()
	assert.Equal(t, conversation.Confirmed, s.State)
	assert.Contains(t, replies[0].Text, s.AgentName)
	assert.Contains(t, replies[0].Text, s.AgentPhone.String())
	assert.Equal(t, []string{conversation.LabelMakeNewOrder, conversation.LabelShipmentStatus}, labels(replies[0].Keyboard))

	require.Len(t, h.events.events, 1)
	event := h.events.events[0]
	assert.Equal(t, int64(s.Order), event.OrderNumber)
	assert.Equal(t, "+0501234567", event.Customer)
	assert.Equal(t, "Cash", event.PaymentMethod)
	assert.True(t, event.Total.Equal(decimal.NewFromInt(124)))
	assert.Equal(t, "remove coriander", event.Remark)
	assert.Equal(t, clock, event.ConfirmedAt)

	replies = h.tap("qty:1:Pad Thai")
	assert.Equal(t, []string{"Your order is already on its way 🛵 Start a new order to add more dishes."}, texts(replies))
	lines, err := memory.NewOrderRepository(h.store).Lines(context.Background(), s.Order)
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	replies = h.say(conversation.LabelShipmentStatus)
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Your order 1 is on its way")
	assert.Contains(t, replies[0].Text, s.AgentName)
}

func TestMachine_PublisherFailureDoesNotBlockConfirmation(t *testing.T) {
	h := newHarness(t)
	h.events.err = errors.New("broker down")
	h.openOrder()
	h.addDish("Pad Thai", "1")
	h.say(conversation.LabelGoToPayment)

	h.say("♦ Bit 🟦")

	assert.Equal(t, conversation.Confirmed, h.session().State)
}

func TestMachine_MakeNewOrderAfterConfirmation(t *testing.T) {
	h := newHarness(t)
	h.openOrder()
	h.addDish("Pad Thai", "1")
	h.say(conversation.LabelGoToPayment)
	h.say("♦ Apple Pay 🍏")

	replies := h.say(conversation.LabelMakeNewOrder)
	require.Len(t, replies, 1)
	assert.Equal(t, conversation.New, h.session().State)
	assert.Equal(t, order.Number(0), h.session().Order)

	h.say(conversation.LabelOrderDelivery)
	h.send(conversation.Update{Contact: &conversation.Contact{PhoneNumber: "972501234567", FirstName: "John"}})
	h.send(conversation.Update{Location: &conversation.Location{}})

	s := h.session()
	assert.Equal(t, order.Number(2), s.Order)
	assert.Equal(t, "John", s.Name)
	assert.False(t, s.IsSized("Pad Thai"))
}

func TestMachine_GuardsWithoutOrder(t *testing.T) {
	h := newHarness(t)

	replies := h.say("🌏 Soups🍜")
	require.Len(t, replies, 1)
	assert.Equal(t, "Let's start with a new order 🙂", replies[0].Text)
	assert.Equal(t, []string{conversation.LabelOrderDelivery, conversation.LabelSomethingElse}, labels(replies[0].Keyboard))

	replies = h.tap("qty:1:Pad Thai")
	assert.Equal(t, []string{"Let's start with a new order 🙂"}, texts(replies))

	replies = h.send(conversation.Update{Location: &conversation.Location{}})
	assert.Equal(t, []string{"Please share your phone number"}, texts(replies))
	assert.Equal(t, conversation.AwaitingContact, h.session().State)
}

func TestMachine_ContactWithoutPhone(t *testing.T) {
	h := newHarness(t)
	h.say(conversation.LabelOrderDelivery)

	replies := h.send(conversation.Update{Contact: &conversation.Contact{FirstName: "John"}})

	assert.Equal(t, []string{"Please share your phone number"}, texts(replies))
	assert.Equal(t, conversation.AwaitingContact, h.session().State)
}

func TestMachine_ContactWithoutName(t *testing.T) {
	h := newHarness(t)
	h.say(conversation.LabelOrderDelivery)

	replies := h.send(conversation.Update{Contact: &conversation.Contact{PhoneNumber: "0501234567"}})

	require.Len(t, replies, 1)
	assert.Equal(t, conversation.AwaitingLocation, h.session().State)
}

func TestMachine_InformationalMenus(t *testing.T) {
	h := newHarness(t)

	replies := h.say(conversation.LabelSomethingElse)
	assert.Equal(t, []string{"You are welcome to visit the restaurant website\nhttps://thaichin.co.il/"}, texts(replies))

	replies = h.say(conversation.LabelCallUs)
	assert.Equal(t, []string{"Dial the number: 04-953-3333"}, texts(replies))

	replies = h.say(conversation.LabelUndo)
	assert.Equal(t, []string{"Hello customer What would you like to do?"}, texts(replies))
}

func TestMachine_UpsellHidesDishesInCart(t *testing.T) {
	h := newHarness(t)

	other := int64(2002)
	h.send(conversation.Update{ChatID: other, Text: conversation.LabelOrderDelivery})
	h.send(conversation.Update{ChatID: other, Contact: &conversation.Contact{PhoneNumber: "0529876543", FirstName: "Dana"}})
	h.send(conversation.Update{ChatID: other, Location: &conversation.Location{}})
	h.send(conversation.Update{ChatID: other, Text: "🥡 Pad Thai\t58₪"})
	h.send(conversation.Update{ChatID: other, Callback: "qty:1:Pad Thai"})

	h.openOrder()
	h.addDish("Pad Thai", "1")

	replies := h.say(conversation.CartLabel("58"))
	require.Len(t, replies, 1)
	assert.Equal(t, []string{conversation.LabelBack, conversation.LabelContinue}, labels(replies[0].Keyboard))

	replies = h.say(conversation.LabelFavorites)
	require.Len(t, replies, 1)
	assert.Equal(t, []string{conversation.LabelBack}, labels(replies[0].Keyboard))

	h.say(conversation.DeleteLabel("Pad Thai"))
	replies = h.say(conversation.LabelRecommended)
	require.Len(t, replies, 1)
	assert.Equal(t, []string{conversation.LabelBack, "🥡 Pad Thai\t58₪"}, labels(replies[0].Keyboard))
}

func TestMachine_StoreUnavailable(t *testing.T) {
	h := newHarness(t)
	h.openOrder()
	h.handlers.MenuSection = queries.NewGetMenuSectionQueryHandler(unavailableCatalog{})
	h.rebuild()

	replies := h.say("🌏 Soups🍜")

	assert.Equal(t, []string{"Sorry, we are having technical difficulties, please try again in a few minutes 🙏"}, texts(replies))
	assert.Equal(t, conversation.Browsing, h.session().State)
}

func TestMachine_UnknownText(t *testing.T) {
	h := newHarness(t)
	h.openOrder()

	replies := h.say("hello?")

	require.Len(t, replies, 1)
	assert.Equal(t, "Sorry, I didn't understand that 🤔", replies[0].Text)
	assert.Equal(t, conversation.LabelEmptyCart, replies[0].Keyboard[0][0].Text)
}

func TestMachine_RequiresChat(t *testing.T) {
	h := newHarness(t)

	_, err := h.machine.Handle(context.Background(), conversation.Update{Text: "/start"})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestMachine_BackOffice(t *testing.T) {
	h := newHarness(t)
	h.openOrder()
	h.addDish("Pad Thai", "2")
	h.addDish("Tom Yum", "1")

	replies := h.say(conversation.LabelWeeklyIncome)
	assert.Equal(t, []string{"Sorry, I didn't understand that 🤔"}, texts(replies))

	replies = h.say(backOfficeCommand)
	require.Len(t, replies, 1)
	assert.Equal(t, []string{
		conversation.LabelNew,
		conversation.LabelWeeklyIncome,
		conversation.LabelIncomeByType,
		conversation.LabelWorstSellers,
		conversation.LabelBestSellers,
	}, labels(replies[0].Keyboard))

	replies = h.say(conversation.LabelWeeklyIncome)
	require.Len(t, replies, 1)
	require.Equal(t, conversation.ChartReply, replies[0].Kind)
	assert.Len(t, replies[0].Chart.Labels, queries.WeekDays)
	assert.Equal(t, "14/05", replies[0].Chart.Labels[6])
	assert.InDelta(t, 148.0, replies[0].Chart.Values[6], 1e-9)

	replies = h.say(conversation.LabelIncomeByType)
	require.Len(t, replies, 1)
	require.Equal(t, conversation.ChartReply, replies[0].Kind)
	assert.Equal(t, []string{"Pad Thai", "Soups"}, replies[0].Chart.Labels)

	replies = h.say(conversation.LabelBestSellers)
	assert.Equal(t, []string{
		"The best selling dishes this month are:" +
			"\n\nPad Thai\t\tsold\t2\t\tand generated\t116 ₪" +
			"\n\nTom Yum\t\tsold\t1\t\tand generated\t32 ₪",
	}, texts(replies))

	replies = h.say(conversation.LabelWorstSellers)
	require.Len(t, replies, 1)
	assert.True(t, len(replies[0].Text) > 0)
	assert.Contains(t, replies[0].Text, "the weakest dishes this month are:\n\nTom Yum")

	h.say(conversation.LabelNew)
	replies = h.say(conversation.LabelBestSellers)
	assert.Equal(t, []string{"Sorry, I didn't understand that 🤔"}, texts(replies))
}

func TestMachine_ChatsAreIndependent(t *testing.T) {
	h := newHarness(t)
	h.openOrder()

	other := int64(2002)
	replies := h.send(conversation.Update{ChatID: other, Text: "🌏 Soups🍜"})

	assert.Equal(t, []string{"Let's start with a new order 🙂"}, texts(replies))
	assert.Equal(t, conversation.Browsing, h.session().State)
	assert.Equal(t, 2, h.sessions.Len())
}
