// Package notify turns canonical events into display messages for the chat
// sink. Composition is pure: no I/O, no failure mode.
package notify

import (
	"fmt"
	"strings"

	"github.com/gyaneshwarpardhi/paynotify/internal/slackblock"
	"github.com/gyaneshwarpardhi/paynotify/internal/stripe"
)

// summary is the category-independent view a message is rendered from.
// Values left empty render as the placeholder dash.
type summary struct {
	status   string
	account  string
	customer string
	amount   string
	period   string
	items    string
}

// Compose renders a single-event message: one text section with a one-line
// title, then one fields section with the fixed Account / Customer / Amount /
// Period / Items set.
func Compose(e *stripe.Event) slackblock.Message {
	s := summarize(e)
	return slackblock.Message{Blocks: []slackblock.Block{
		slackblock.SectionText{Text: slackblock.Mrkdwn(title(e, s.status))},
		slackblock.SectionFields{Fields: fields(s)},
	}}
}

// ComposeDigest renders a multi-event digest: a header, then one summary
// line per event separated by dividers.
func ComposeDigest(events []*stripe.Event) slackblock.Message {
	blocks := []slackblock.Block{
		slackblock.Header{Text: slackblock.PlainText(fmt.Sprintf("Stripe digest – %d events", len(events)))},
	}
	for i, e := range events {
		if i > 0 {
			blocks = append(blocks, slackblock.Divider{})
		}
		s := summarize(e)
		blocks = append(blocks, slackblock.SectionText{Text: slackblock.Mrkdwn(title(e, s.status))})
	}
	return slackblock.Message{Blocks: blocks}
}

// title interpolates category, event type and the status-like field. Events
// from test mode carry the memo marker the notification channel filters on.
func title(e *stripe.Event, status string) string {
	label := strings.ReplaceAll(string(e.Category), "_", " ")
	t := fmt.Sprintf("New *Stripe* %s event – *%s*", label, e.EventType())
	if status != "" {
		t += fmt.Sprintf(" (%s)", status)
	}
	if !e.Livemode {
		t += " :memo:"
	}
	return t
}

func fields(s summary) []slackblock.TextObject {
	return []slackblock.TextObject{
		slackblock.Mrkdwn("*Account:* " + orDash(s.account)),
		slackblock.Mrkdwn("*Customer:* " + orDash(s.customer)),
		slackblock.Mrkdwn("*Amount:* " + orDash(s.amount)),
		slackblock.Mrkdwn("*Period:* " + orDash(s.period)),
		slackblock.Mrkdwn("*Items:*\n" + orDash(s.items)),
	}
}

func summarize(e *stripe.Event) summary {
	switch p := e.Data.(type) {
	case *stripe.Invoice:
		return summary{
			status:   p.Status,
			account:  nameWithDetail(p.AccountName, p.AccountCountry, "(", ")"),
			customer: customerLine(p.CustomerName, p.CustomerEmail, p.Customer),
			amount:   formatAmount(p.AmountDue, p.Currency),
			period:   formatPeriod(p.PeriodStart, p.PeriodEnd),
			items:    formatLines(p.Lines),
		}
	case *stripe.Customer:
		return summary{
			customer: customerLine(p.Name, p.Email, p.ID),
		}
	case *stripe.Charge:
		return summary{
			status:   p.Status,
			customer: p.Customer,
			amount:   formatAmount(p.Amount, p.Currency),
		}
	case *stripe.SubscriptionSchedule:
		return summary{
			status:   p.Status,
			customer: p.Customer,
			period:   scheduleWindow(p),
		}
	case *stripe.InvoiceItem:
		return summary{
			customer: p.Customer,
			amount:   formatAmount(p.Amount, p.Currency),
			period:   formatPeriod(p.Period.Start, p.Period.End),
			items:    itemLine(p),
		}
	case *stripe.PaymentIntent:
		return summary{
			status:   p.Status,
			customer: p.Customer,
			amount:   formatAmount(p.Amount, p.Currency),
		}
	case *stripe.Payout:
		return summary{
			status: p.Status,
			amount: formatAmount(p.Amount, p.Currency),
			period: formatDate(p.ArrivalDate),
		}
	case *stripe.IssuingCardholder:
		return summary{
			status:   p.Status,
			customer: nameWithDetail(p.Name, p.Email, "<", ">"),
		}
	case *stripe.IssuingCard:
		return summary{
			status:   p.Status,
			customer: p.Cardholder.ID,
			items:    fmt.Sprintf("- %s •••• %s (exp %d/%d)", p.Brand, p.Last4, p.ExpMonth, p.ExpYear),
		}
	case *stripe.IssuingDispute:
		return summary{
			status: p.Status,
			amount: formatAmount(p.Amount, p.Currency),
			items:  disputeLine(p),
		}
	case *stripe.Topup:
		return summary{
			status: p.Status,
			amount: formatAmount(p.Amount, p.Currency),
		}
	case *stripe.Source:
		return summary{
			status:   p.Status,
			customer: p.Customer,
			amount:   sourceAmount(p),
		}
	case *stripe.IssuingAuthorization:
		return summary{
			status:   p.Status,
			customer: p.Cardholder,
			amount:   formatAmount(p.Amount, p.Currency),
			account:  nameWithDetail(p.MerchantData.Name, p.MerchantData.Country, "(", ")"),
		}
	}
	return summary{}
}

func customerLine(name, email, id string) string {
	if line := nameWithDetail(name, email, "<", ">"); line != "" {
		return line
	}
	return id
}

func scheduleWindow(p *stripe.SubscriptionSchedule) string {
	if p.CompletedAt != 0 {
		return formatDate(p.CompletedAt)
	}
	if p.CanceledAt != 0 {
		return formatDate(p.CanceledAt)
	}
	return ""
}

func itemLine(p *stripe.InvoiceItem) string {
	desc := p.Description
	if desc == "" {
		desc = p.ID
	}
	return fmt.Sprintf("- %s x%d (%s)", desc, p.Quantity, formatAmount(p.Amount, p.Currency))
}

func disputeLine(p *stripe.IssuingDispute) string {
	if p.Reason == "" {
		return ""
	}
	return "- reason: " + p.Reason
}

// sourceAmount: sources for flow-style payment methods carry no amount.
func sourceAmount(p *stripe.Source) string {
	if p.Amount == 0 {
		return ""
	}
	return formatAmount(p.Amount, p.Currency)
}
