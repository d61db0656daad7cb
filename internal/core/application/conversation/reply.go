package conversation

// ReplyKind tells the transport how to render a Reply.
type ReplyKind int

const (
	// TextReply is a message, optionally replacing the reply keyboard.
	TextReply ReplyKind = iota + 1
	// PhotoReply is an image file.
	PhotoReply
	// ChoiceReply is a message with inline choices answered by callbacks.
	ChoiceReply
	// ChartReply is a chart to be drawn by the transport.
	ChartReply
	// ClearChoiceReply removes the inline choices of the last ChoiceReply.
	ClearChoiceReply
)

func (k ReplyKind) String() string {
	switch k {
	case TextReply:
		return "text"
	case PhotoReply:
		return "photo"
	case ChoiceReply:
		return "choice"
	case ChartReply:
		return "chart"
	case ClearChoiceReply:
		return "clear_choice"
	default:
		return "unknown"
	}
}

// Button is a reply keyboard button. Request buttons ask the client to share
// the user's contact or location instead of sending the text.
type Button struct {
	Text            string
	RequestContact  bool
	RequestLocation bool
}

// Keyboard is a reply keyboard, row by row.
type Keyboard [][]Button

// Choice is an inline button; Data comes back in the callback.
type Choice struct {
	Text string
	Data string
}

// Chart describes a bar chart as labeled values.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Labels []string
	Values []float64
}

// Reply is one render instruction for the transport.
type Reply struct {
	Kind     ReplyKind
	Text     string
	Keyboard Keyboard
	Photo    string
	Choices  [][]Choice
	Chart    *Chart
}

func text(msg string) Reply {
	return Reply{Kind: TextReply, Text: msg}
}

func textWithKeyboard(msg string, kb Keyboard) Reply {
	return Reply{Kind: TextReply, Text: msg, Keyboard: kb}
}

func photo(path string) Reply {
	return Reply{Kind: PhotoReply, Photo: path}
}

func choice(msg string, choices [][]Choice) Reply {
	return Reply{Kind: ChoiceReply, Text: msg, Choices: choices}
}

func chart(c Chart) Reply {
	return Reply{Kind: ChartReply, Text: c.Title, Chart: &c}
}

func clearChoice() Reply {
	return Reply{Kind: ClearChoiceReply}
}
