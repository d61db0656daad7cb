package conversation

import (
	"strconv"
	"strings"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/catalog"
)

// Contact is a contact card shared by the user.
type Contact struct {
	PhoneNumber string
	FirstName   string
	LastName    string
}

// Location is a shared delivery location.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Update is one inbound user action as delivered by the chat transport.
// Exactly one of Text, Contact, Location or Callback is expected to be set.
type Update struct {
	ChatID   int64
	Text     string
	Contact  *Contact
	Location *Location
	Callback string
}

// IntentKind enumerates everything a user can ask for.
type IntentKind int

const (
	IntentUnknown IntentKind = iota
	IntentStart
	IntentBackOffice
	IntentRequestDelivery
	IntentSomethingElse
	IntentCallUs
	IntentShareContact
	IntentShareLocation
	IntentChooseDishType
	IntentChooseDish
	IntentChooseQuantity
	IntentRejectDish
	IntentBack
	IntentShoppingCart
	IntentReviewCart
	IntentRecommended
	IntentFavorites
	IntentWriteRemark
	IntentRemark
	IntentDeleteMenu
	IntentDeleteDish
	IntentGoToPayment
	IntentPay
	IntentShipmentStatus
	IntentWeeklyIncome
	IntentIncomeByDishType
	IntentWorstSellers
	IntentBestSellers
)

var intentNames = map[IntentKind]string{
	IntentUnknown:          "unknown",
	IntentStart:            "start",
	IntentBackOffice:       "back_office",
	IntentRequestDelivery:  "request_delivery",
	IntentSomethingElse:    "something_else",
	IntentCallUs:           "call_us",
	IntentShareContact:     "share_contact",
	IntentShareLocation:    "share_location",
	IntentChooseDishType:   "choose_dish_type",
	IntentChooseDish:       "choose_dish",
	IntentChooseQuantity:   "choose_quantity",
	IntentRejectDish:       "reject_dish",
	IntentBack:             "back",
	IntentShoppingCart:     "shopping_cart",
	IntentReviewCart:       "review_cart",
	IntentRecommended:      "recommended",
	IntentFavorites:        "favorites",
	IntentWriteRemark:      "write_remark",
	IntentRemark:           "remark",
	IntentDeleteMenu:       "delete_menu",
	IntentDeleteDish:       "delete_dish",
	IntentGoToPayment:      "go_to_payment",
	IntentPay:              "pay",
	IntentShipmentStatus:   "shipment_status",
	IntentWeeklyIncome:     "weekly_income",
	IntentIncomeByDishType: "income_by_dish_type",
	IntentWorstSellers:     "worst_sellers",
	IntentBestSellers:      "best_sellers",
}

func (k IntentKind) String() string {
	if name, ok := intentNames[k]; ok {
		return name
	}
	return "unknown"
}

// Intent is a classified Update. Only the fields of its kind are set.
type Intent struct {
	Kind     IntentKind
	DishType string
	Dish     string
	Quantity int
	Payment  string
	Remark   string
	Text     string
	Contact  Contact
	Location Location
}

// Classifier maps raw updates to intents.
type Classifier struct {
	backOfficeCommand string
}

// NewClassifier returns a classifier. An empty backOfficeCommand disables the back office.
func NewClassifier(backOfficeCommand string) Classifier {
	backOfficeCommand = strings.TrimSpace(backOfficeCommand)
	if backOfficeCommand != "" && !strings.HasPrefix(backOfficeCommand, "/") {
		backOfficeCommand = "/" + backOfficeCommand
	}
	return Classifier{backOfficeCommand: backOfficeCommand}
}

type textRule struct {
	match func(string) bool
	kind  IntentKind
}

func contains(fragment string) func(string) bool {
	return func(s string) bool { return strings.Contains(s, fragment) }
}

// textRules are tried in order; the first match wins. Remarks go first since
// they are free text that may mention anything.
var textRules = []textRule{
	{contains(commands.RemarkSentinel), IntentRemark},
	{contains("Order delivery"), IntentRequestDelivery},
	{contains(strings.TrimSpace(dishTypePrefix)), IntentChooseDishType},
	{contains(strings.TrimSpace(dishPrefix)), IntentChooseDish},
	{contains(LabelBack), IntentBack},
	{contains(cartLabelPrefix), IntentShoppingCart},
	{contains("Your shopping cart is empty"), IntentShoppingCart},
	{contains(strings.TrimSpace(LabelContinue)), IntentReviewCart},
	{contains(LabelGoToPayment), IntentGoToPayment},
	{contains(strings.TrimSpace(paymentPrefix)), IntentPay},
	{contains(LabelNew), IntentStart},
	{contains("My recommended dishes"), IntentRecommended},
	{contains("The most favorite"), IntentFavorites},
	{contains("Something else"), IntentSomethingElse},
	{contains("Call us"), IntentCallUs},
	{contains("least money this month"), IntentWorstSellers},
	{contains("most money this month"), IntentBestSellers},
	{contains("delete one or more dishes"), IntentDeleteMenu},
	{contains(strings.TrimSpace(deletePrefix)), IntentDeleteDish},
	{contains(LabelWriteRemark), IntentWriteRemark},
	{contains("Income chart from the last week"), IntentWeeklyIncome},
	{contains("income per dishes types"), IntentIncomeByDishType},
	{contains(LabelShipmentStatus), IntentShipmentStatus},
}

// Classify returns the intent of u. Anything unrecognized is IntentUnknown with
// the raw text kept.
func (c Classifier) Classify(u Update) Intent {
	switch {
	case u.Contact != nil:
		return Intent{Kind: IntentShareContact, Contact: *u.Contact}
	case u.Location != nil:
		return Intent{Kind: IntentShareLocation, Location: *u.Location}
	case u.Callback != "":
		return classifyCallback(u.Callback)
	}

	msg := strings.TrimSpace(u.Text)
	if command, ok := strings.CutPrefix(msg, "/"); ok {
		return c.classifyCommand(command)
	}

	for _, rule := range textRules {
		if rule.match(msg) {
			return parseText(rule.kind, msg)
		}
	}
	return Intent{Kind: IntentUnknown, Text: msg}
}

func (c Classifier) classifyCommand(command string) Intent {
	name, _, _ := strings.Cut(command, " ")
	name, _, _ = strings.Cut(name, "@")
	switch {
	case "/"+name == startCommand:
		return Intent{Kind: IntentStart}
	case c.backOfficeCommand != "" && "/"+name == c.backOfficeCommand:
		return Intent{Kind: IntentBackOffice}
	default:
		return Intent{Kind: IntentUnknown, Text: "/" + command}
	}
}

func classifyCallback(data string) Intent {
	if rest, ok := strings.CutPrefix(data, quantityCallbackData); ok {
		raw, dish, found := strings.Cut(rest, ":")
		quantity, err := strconv.Atoi(raw)
		if !found || err != nil || dish == "" {
			return Intent{Kind: IntentUnknown, Text: data}
		}
		return Intent{Kind: IntentChooseQuantity, Dish: dish, Quantity: quantity}
	}
	if dish, ok := strings.CutPrefix(data, rejectCallbackData); ok {
		return Intent{Kind: IntentRejectDish, Dish: dish}
	}
	return Intent{Kind: IntentUnknown, Text: data}
}

func parseText(kind IntentKind, msg string) Intent {
	intent := Intent{Kind: kind, Text: msg}

	switch kind {
	case IntentChooseDishType:
		intent.DishType = parseDishType(msg)
	case IntentChooseDish:
		intent.Dish = parseDishName(msg)
	case IntentDeleteDish:
		_, after, _ := strings.Cut(msg, strings.TrimSpace(deletePrefix))
		intent.Dish = strings.TrimSpace(after)
	case IntentPay:
		intent.Payment = parsePayment(msg)
	case IntentRemark:
		intent.Remark = msg
	}
	return intent
}

func parseDishType(msg string) string {
	for _, s := range catalog.Sections() {
		if msg == strings.TrimSpace(SectionLabel(s)) {
			return s.Type
		}
	}
	_, after, _ := strings.Cut(msg, strings.TrimSpace(dishTypePrefix))
	return trimLastRune(after)
}

func parseDishName(msg string) string {
	_, after, _ := strings.Cut(msg, strings.TrimSpace(dishPrefix))
	name, _, _ := strings.Cut(after, "\t")
	return strings.TrimSpace(name)
}

func parsePayment(msg string) string {
	for _, p := range PaymentMethods() {
		if strings.Contains(msg, p.Name) {
			return p.Name
		}
	}
	_, after, _ := strings.Cut(msg, strings.TrimSpace(paymentPrefix))
	return trimLastRune(after)
}
