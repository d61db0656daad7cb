package conversation

import (
	"strings"

	"orderbot/internal/core/application/usecases/queries"
	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
)

// Button labels. The classifier recognizes them by prefix or fragment, so the
// trailing emoji may be dropped by the client without breaking the flow.
const (
	LabelOrderDelivery   = "Order delivery 🛵"
	LabelSomethingElse   = "Something else  🤷‍♂"
	LabelUndo            = "🆕 Undo 🔙"
	LabelCallUs          = "Call us 📞"
	LabelShareContact    = "Send my phone number 📲"
	LabelShareLocation   = "Send location 📍"
	LabelEmptyCart       = "Your shopping cart is empty 🛒"
	LabelRecommended     = "My recommended dishes🙋"
	LabelFavorites       = "The most favorite🔝"
	LabelBack            = "🔙 Back"
	LabelContinue        = "🛍️ continue "
	LabelWriteRemark     = "✍️i have a remarks"
	LabelGoToPayment     = "💳 Go to payment"
	LabelDeleteMenu      = "I want to delete one or more dishes from the order🪚"
	LabelMakeNewOrder    = "🆕 Make new order 🥳"
	LabelShipmentStatus  = "What is the status of my shipment?"
	LabelRejectDish      = "I don't want this dish ⛔"
	LabelNew             = "🆕"
	LabelWeeklyIncome    = "Show Income chart from the last week📊"
	LabelIncomeByType    = "Show distribution of income per dishes types📊"
	LabelWorstSellers    = "The dishes that brought in the least money this month📉"
	LabelBestSellers     = "The dishes that brought in the most money this month📈"
	dishTypePrefix       = "🌏 "
	dishPrefix           = "🥡 "
	deletePrefix         = "❌delete\t"
	paymentPrefix        = "♦ "
	cartLabelPrefix      = "🛒Shopping cart"
	startCommand         = "/start"
	quantityCallbackData = "qty:"
	rejectCallbackData   = "reject:"
)

// PaymentMethod is a way to pay. None of them is charged by the bot.
type PaymentMethod struct {
	Name  string
	Emoji string
}

// PaymentMethods returns the offered methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{Name: "Apple Pay", Emoji: "🍏"},
		{Name: "Credit Card", Emoji: "💳"},
		{Name: "Cash", Emoji: "💷"},
		{Name: "Bit", Emoji: "🟦"},
	}
}

// Label is the button text of the method.
func (p PaymentMethod) Label() string {
	return paymentPrefix + p.Name + " " + p.Emoji
}

// SectionLabel is the button text of a menu section.
func SectionLabel(s catalog.Section) string {
	return dishTypePrefix + s.Type + s.Emoji
}

// DishLabel is the button text of a dish: its name and price separated by a tab.
func DishLabel(name string, price kernel.Price) string {
	return dishPrefix + name + "\t" + price.String() + "₪"
}

// DeleteLabel is the button text removing a dish from the cart.
func DeleteLabel(dish string) string {
	return deletePrefix + dish
}

// CartLabel is the cart button text showing the running total.
func CartLabel(total string) string {
	return cartLabelPrefix + " (" + total + " ₪)"
}

// QuantityCallback is the callback data of a quantity choice.
func QuantityCallback(quantity string, dish string) string {
	return quantityCallbackData + quantity + ":" + dish
}

// RejectCallback is the callback data of the reject choice.
func RejectCallback(dish string) string {
	return rejectCallbackData + dish
}

func row(labels ...string) []Button {
	buttons := make([]Button, 0, len(labels))
	for _, l := range labels {
		buttons = append(buttons, Button{Text: l})
	}
	return buttons
}

func startKeyboard() Keyboard {
	return Keyboard{row(LabelOrderDelivery), row(LabelSomethingElse)}
}

func somethingElseKeyboard() Keyboard {
	return Keyboard{row(LabelUndo), row(LabelCallUs)}
}

func undoKeyboard() Keyboard {
	return Keyboard{row(LabelUndo)}
}

func contactKeyboard() Keyboard {
	return Keyboard{{{Text: LabelShareContact, RequestContact: true}}}
}

func locationKeyboard() Keyboard {
	return Keyboard{{{Text: LabelShareLocation, RequestLocation: true}}}
}

// mainKeyboard is the dish-type menu of an open order headed by the cart button.
func mainKeyboard(cartLabel string) Keyboard {
	kb := Keyboard{row(cartLabel), row(LabelRecommended, LabelFavorites)}
	sections := catalog.Sections()
	for i := 0; i < len(sections); i += 2 {
		labels := []string{SectionLabel(sections[i])}
		if i+1 < len(sections) {
			labels = append(labels, SectionLabel(sections[i+1]))
		}
		kb = append(kb, row(labels...))
	}
	return kb
}

func menuKeyboard(header []Button, items []queries.MenuItem) Keyboard {
	kb := Keyboard{header}
	for _, item := range items {
		kb = append(kb, row(DishLabel(item.Name, item.Price)))
	}
	return kb
}

func favoritesKeyboard(header []Button, favorites []catalog.Favorite) Keyboard {
	kb := Keyboard{header}
	for _, f := range favorites {
		kb = append(kb, row(DishLabel(f.Name, f.Price)))
	}
	return kb
}

func cartKeyboard() Keyboard {
	return Keyboard{
		row(LabelBack, LabelWriteRemark),
		row(LabelGoToPayment),
		row(LabelDeleteMenu),
	}
}

func continueKeyboard() Keyboard {
	return Keyboard{row(LabelContinue)}
}

func deleteKeyboard(items []order.CartItem) Keyboard {
	kb := Keyboard{row(LabelBack)}
	for _, item := range items {
		kb = append(kb, row(DeleteLabel(item.DishName)))
	}
	return kb
}

func paymentKeyboard() Keyboard {
	methods := PaymentMethods()
	kb := Keyboard{row(LabelBack)}
	for i := 0; i < len(methods); i += 2 {
		labels := []string{methods[i].Label()}
		if i+1 < len(methods) {
			labels = append(labels, methods[i+1].Label())
		}
		kb = append(kb, row(labels...))
	}
	return kb
}

func confirmedKeyboard() Keyboard {
	return Keyboard{row(LabelMakeNewOrder), row(LabelShipmentStatus)}
}

func backOfficeKeyboard() Keyboard {
	return Keyboard{
		row(LabelNew),
		row(LabelWeeklyIncome),
		row(LabelIncomeByType),
		row(LabelWorstSellers),
		row(LabelBestSellers),
	}
}

func quantityChoices(dish string) [][]Choice {
	return [][]Choice{
		{{Text: LabelRejectDish, Data: RejectCallback(dish)}},
		{
			{Text: "1", Data: QuantityCallback("1", dish)},
			{Text: "2", Data: QuantityCallback("2", dish)},
			{Text: "3", Data: QuantityCallback("3", dish)},
		},
	}
}

// trimLastRune drops a trailing emoji from a label.
func trimLastRune(s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) == 0 {
		return ""
	}
	return strings.TrimSpace(string(r[:len(r)-1]))
}
