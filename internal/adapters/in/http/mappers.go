package http

import (
	"time"

	"orderbot/internal/core/application/conversation"
	"orderbot/internal/core/ports"
	"orderbot/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toUpdate(r servers.UpdateRequest) conversation.Update {
	u := conversation.Update{
		ChatID:   r.ChatId,
		Text:     deref(r.Text),
		Callback: deref(r.Callback),
	}
	if r.Contact != nil {
		u.Contact = &conversation.Contact{
			PhoneNumber: r.Contact.PhoneNumber,
			FirstName:   deref(r.Contact.FirstName),
			LastName:    deref(r.Contact.LastName),
		}
	}
	if r.Location != nil {
		u.Location = &conversation.Location{
			Latitude:  r.Location.Latitude,
			Longitude: r.Location.Longitude,
		}
	}
	return u
}

func fromReplies(replies []conversation.Reply) []servers.Reply {
	out := make([]servers.Reply, 0, len(replies))
	for _, r := range replies {
		reply := servers.Reply{
			Kind:  servers.ReplyKind(r.Kind.String()),
			Text:  optional(r.Text),
			Photo: optional(r.Photo),
		}
		if len(r.Keyboard) > 0 {
			keyboard := make([][]servers.Button, 0, len(r.Keyboard))
			for _, row := range r.Keyboard {
				buttons := make([]servers.Button, 0, len(row))
				for _, b := range row {
					buttons = append(buttons, servers.Button{
						Text:            b.Text,
						RequestContact:  flag(b.RequestContact),
						RequestLocation: flag(b.RequestLocation),
					})
				}
				keyboard = append(keyboard, buttons)
			}
			reply.Keyboard = &keyboard
		}
		if len(r.Choices) > 0 {
			choices := make([][]servers.Choice, 0, len(r.Choices))
			for _, row := range r.Choices {
				inline := make([]servers.Choice, 0, len(row))
				for _, c := range row {
					inline = append(inline, servers.Choice{Text: c.Text, Data: c.Data})
				}
				choices = append(choices, inline)
			}
			reply.Choices = &choices
		}
		if r.Chart != nil {
			reply.Chart = &servers.Chart{
				Title:  r.Chart.Title,
				XLabel: r.Chart.XLabel,
				YLabel: r.Chart.YLabel,
				Labels: r.Chart.Labels,
				Values: r.Chart.Values,
			}
		}
		out = append(out, reply)
	}
	return out
}

func fromDailyIncome(days []ports.DailyIncome) []servers.DailyIncome {
	response := make([]servers.DailyIncome, len(days))
	for i, d := range days {
		response[i] = servers.DailyIncome{
			Day:    openapi_types.Date{Time: time.Date(d.Day.Year(), d.Day.Month(), d.Day.Day(), 0, 0, 0, 0, time.UTC)},
			Income: d.Income.StringFixed(2),
		}
	}
	return response
}

func fromTypeIncome(rows []ports.TypeIncome) []servers.TypeIncome {
	response := make([]servers.TypeIncome, len(rows))
	for i, r := range rows {
		response[i] = servers.TypeIncome{DishType: r.DishType, Income: r.Income.StringFixed(2)}
	}
	return response
}

func fromDishSales(rows []ports.DishSales) []servers.DishSales {
	response := make([]servers.DishSales, len(rows))
	for i, r := range rows {
		response[i] = servers.DishSales{Dish: r.Dish, Quantity: r.Quantity, Income: r.Income.StringFixed(2)}
	}
	return response
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func flag(b bool) *bool {
	if !b {
		return nil
	}
	return &b
}
