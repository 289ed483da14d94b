package reduce

import (
	"github.com/gyaneshwarpardhi/paynotify/internal/stripe"
)

// Per-category projectors. Each selects the documented field subset from the
// raw data.object tree; every coercion is total, so a projector can never
// fail regardless of what the vendor sent.

func projectInvoice(o object, eventType string) *stripe.Invoice {
	inv := &stripe.Invoice{
		AccountCountry:   o.str("account_country"),
		AccountName:      o.str("account_name"),
		AmountDue:        o.integer("amount_due"),
		AmountPaid:       o.integer("amount_paid"),
		AmountRemaining:  o.integer("amount_remaining"),
		AmountShipping:   o.integer("amount_shipping"),
		AttemptCount:     o.integer("attempt_count"),
		Attempted:        o.boolean("attempted"),
		BillingReason:    o.str("billing_reason"),
		CollectionMethod: o.str("collection_method"),
		Created:          o.integer("created"),
		Currency:         o.str("currency"),
		Customer:         o.ref("customer"),
		CustomerEmail:    o.str("customer_email"),
		CustomerName:     o.str("customer_name"),
		EventType:        eventType,
		HostedInvoiceURL: o.str("hosted_invoice_url"),
		ID:               o.str("id"),
		Lines:            projectLines(o),
		Paid:             o.boolean("paid"),
		PaidOutOfBand:    o.boolean("paid_out_of_band"),
		PeriodEnd:        o.integer("period_end"),
		PeriodStart:      o.integer("period_start"),
		Status:           o.str("status"),
		Subtotal:         o.integer("subtotal"),
		Total:            o.integer("total"),
	}
	return inv
}

// projectLines reduces lines.data[] elements to {description, amount,
// currency}, preserving order. A missing or empty source list yields an
// empty list, never null.
func projectLines(o object) []stripe.LineItem {
	items := make([]stripe.LineItem, 0)
	lines, ok := o.child("lines")
	if !ok {
		return items
	}
	for _, el := range lines.list("data") {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		line := object(m)
		items = append(items, stripe.LineItem{
			Amount:      line.integer("amount"),
			Currency:    line.str("currency"),
			Description: line.str("description"),
		})
	}
	return items
}

func projectCustomer(o object, eventType string) *stripe.Customer {
	c := &stripe.Customer{
		Balance:             o.integer("balance"),
		Created:             o.integer("created"),
		Currency:            o.str("currency"),
		Delinquent:          o.boolean("delinquent"),
		Description:         o.str("description"),
		Email:               o.str("email"),
		EventType:           eventType,
		ID:                  o.str("id"),
		InvoicePrefix:       o.str("invoice_prefix"),
		Name:                o.str("name"),
		NextInvoiceSequence: o.integer("next_invoice_sequence"),
		Phone:               o.str("phone"),
	}
	if addr, ok := o.child("address"); ok {
		c.Address = &stripe.CustomerAddress{
			City:       addr.str("city"),
			Country:    addr.str("country"),
			Line1:      addr.str("line1"),
			Line2:      addr.str("line2"),
			PostalCode: addr.str("postal_code"),
			State:      addr.str("state"),
		}
	}
	return c
}

func projectCharge(o object, eventType string) *stripe.Charge {
	return &stripe.Charge{
		Amount:                        o.integer("amount"),
		AmountCaptured:                o.integer("amount_captured"),
		AmountRefunded:                o.integer("amount_refunded"),
		BalanceTransaction:            o.ref("balance_transaction"),
		CalculatedStatementDescriptor: o.str("calculated_statement_descriptor"),
		Captured:                      o.boolean("captured"),
		Created:                       o.integer("created"),
		Currency:                      o.str("currency"),
		Customer:                      o.ref("customer"),
		Description:                   o.str("description"),
		Disputed:                      o.boolean("disputed"),
		EventType:                     eventType,
		FailureCode:                   o.str("failure_code"),
		FailureMessage:                o.str("failure_message"),
		ID:                            o.str("id"),
		Invoice:                       o.ref("invoice"),
		Paid:                          o.boolean("paid"),
		ReceiptURL:                    o.str("receipt_url"),
		Refunded:                      o.boolean("refunded"),
		Status:                        o.str("status"),
	}
}

func projectSubscriptionSchedule(o object, eventType string) *stripe.SubscriptionSchedule {
	ss := &stripe.SubscriptionSchedule{
		CanceledAt:  o.integer("canceled_at"),
		CompletedAt: o.integer("completed_at"),
		Created:     o.integer("created"),
		Customer:    o.ref("customer"),
		EndBehavior: o.str("end_behavior"),
		EventType:   eventType,
		ID:          o.str("id"),
		ReleasedAt:  o.integer("released_at"),
		Status:      o.str("status"),
	}
	if ds, ok := o.child("default_settings"); ok {
		ss.DefaultSettings = stripe.ScheduleDefaultSettings{
			BillingCycleAnchor: ds.str("billing_cycle_anchor"),
			CollectionMethod:   ds.str("collection_method"),
		}
	}
	return ss
}

func projectInvoiceItem(o object, eventType string) *stripe.InvoiceItem {
	ii := &stripe.InvoiceItem{
		Amount:      o.integer("amount"),
		Currency:    o.str("currency"),
		Customer:    o.ref("customer"),
		Date:        o.integer("date"),
		Description: o.str("description"),
		EventType:   eventType,
		ID:          o.str("id"),
		Quantity:    o.integer("quantity"),
	}
	if p, ok := o.child("period"); ok {
		ii.Period = stripe.Period{End: p.integer("end"), Start: p.integer("start")}
	}
	return ii
}

func projectPaymentIntent(o object, eventType string) *stripe.PaymentIntent {
	pi := &stripe.PaymentIntent{
		Amount:             o.integer("amount"),
		AmountReceived:     o.integer("amount_received"),
		CanceledAt:         o.integer("canceled_at"),
		CancellationReason: o.str("cancellation_reason"),
		CaptureMethod:      o.str("capture_method"),
		ConfirmationMethod: o.str("confirmation_method"),
		Created:            o.integer("created"),
		Currency:           o.str("currency"),
		Customer:           o.ref("customer"),
		Description:        o.str("description"),
		EventType:          eventType,
		ID:                 o.str("id"),
		Invoice:            o.ref("invoice"),
		PaymentMethodTypes: projectStringList(o, "payment_method_types"),
		ReceiptEmail:       o.str("receipt_email"),
		Status:             o.str("status"),
	}
	return pi
}

func projectStringList(o object, key string) []string {
	out := make([]string, 0)
	for _, el := range o.list(key) {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func projectPayout(o object, eventType string) *stripe.Payout {
	return &stripe.Payout{
		Amount:               o.integer("amount"),
		ArrivalDate:          o.integer("arrival_date"),
		Automatic:            o.boolean("automatic"),
		BalanceTransaction:   o.ref("balance_transaction"),
		Created:              o.integer("created"),
		Currency:             o.str("currency"),
		Description:          o.str("description"),
		EventType:            eventType,
		FailureCode:          o.str("failure_code"),
		FailureMessage:       o.str("failure_message"),
		ID:                   o.str("id"),
		Method:               o.str("method"),
		ReconciliationStatus: o.str("reconciliation_status"),
		SourceType:           o.str("source_type"),
		StatementDescriptor:  o.str("statement_descriptor"),
		Status:               o.str("status"),
		Type:                 o.str("type"),
	}
}

func projectTopup(o object, eventType string) *stripe.Topup {
	return &stripe.Topup{
		Amount:                   o.integer("amount"),
		Created:                  o.integer("created"),
		Currency:                 o.str("currency"),
		Description:              o.str("description"),
		EventType:                eventType,
		ExpectedAvailabilityDate: o.integer("expected_availability_date"),
		FailureCode:              o.str("failure_code"),
		FailureMessage:           o.str("failure_message"),
		ID:                       o.str("id"),
		Status:                   o.str("status"),
	}
}

func projectSource(o object, eventType string) *stripe.Source {
	s := &stripe.Source{
		Amount:              o.integer("amount"),
		ClientSecret:        o.str("client_secret"),
		Created:             o.integer("created"),
		Currency:            o.str("currency"),
		Customer:            o.ref("customer"),
		EventType:           eventType,
		ID:                  o.str("id"),
		StatementDescriptor: o.str("statement_descriptor"),
		Status:              o.str("status"),
		Type:                o.str("type"),
	}
	if owner, ok := o.child("owner"); ok {
		so := &stripe.SourceOwner{
			Email: owner.str("email"),
			Name:  owner.str("name"),
			Phone: owner.str("phone"),
		}
		if addr, ok := owner.child("address"); ok {
			so.Address = &stripe.SourceOwnerAddress{
				City:       addr.str("city"),
				Country:    addr.str("country"),
				Line1:      addr.str("line1"),
				Line2:      addr.str("line2"),
				PostalCode: addr.str("postal_code"),
				State:      addr.str("state"),
			}
		}
		s.Owner = so
	}
	return s
}

func projectIssuingCardholder(o object, eventType string) *stripe.IssuingCardholder {
	ch := &stripe.IssuingCardholder{
		Created:     o.integer("created"),
		Email:       o.str("email"),
		EventType:   eventType,
		ID:          o.str("id"),
		Name:        o.str("name"),
		PhoneNumber: o.str("phone_number"),
		Status:      o.str("status"),
		Type:        o.str("type"),
	}
	if billing, ok := o.child("billing"); ok {
		if addr, ok := billing.child("address"); ok {
			ch.Billing = stripe.BillingAddress{
				City:       addr.str("city"),
				Country:    addr.str("country"),
				Line1:      addr.str("line1"),
				Line2:      addr.str("line2"),
				PostalCode: addr.str("postal_code"),
				State:      addr.str("state"),
			}
		}
	}
	if ind, ok := o.child("individual"); ok {
		ci := &stripe.CardholderIndividual{
			FirstName: ind.str("first_name"),
			LastName:  ind.str("last_name"),
		}
		if dob, ok := ind.child("dob"); ok {
			ci.Dob = &stripe.DateOfBirth{
				Day:   dob.integer("day"),
				Month: dob.integer("month"),
				Year:  dob.integer("year"),
			}
		}
		ch.Individual = ci
	}
	return ch
}

func projectIssuingCard(o object, eventType string) *stripe.IssuingCard {
	ic := &stripe.IssuingCard{
		Brand:              o.str("brand"),
		CancellationReason: o.str("cancellation_reason"),
		Created:            o.integer("created"),
		Currency:           o.str("currency"),
		CVC:                o.str("cvc"),
		EventType:          eventType,
		ExpMonth:           o.integer("exp_month"),
		ExpYear:            o.integer("exp_year"),
		FinancialAccount:   o.str("financial_account"),
		ID:                 o.str("id"),
		Last4:              o.str("last4"),
		Status:             o.str("status"),
		Type:               o.str("type"),
	}
	if ch, ok := o.child("cardholder"); ok {
		ic.Cardholder = stripe.CardCardholder{
			Email: ch.str("email"),
			ID:    ch.str("id"),
		}
	}
	return ic
}

func projectIssuingDispute(o object, eventType string) *stripe.IssuingDispute {
	return &stripe.IssuingDispute{
		Amount:     o.integer("amount"),
		Created:    o.integer("created"),
		Currency:   o.str("currency"),
		EventType:  eventType,
		ID:         o.str("id"),
		LossReason: o.str("loss_reason"),
		Reason:     o.str("reason"),
		Status:     o.str("status"),
	}
}

func projectIssuingAuthorization(o object, eventType string) *stripe.IssuingAuthorization {
	ia := &stripe.IssuingAuthorization{
		Amount:              o.integer("amount"),
		Approved:            o.boolean("approved"),
		AuthorizationMethod: o.str("authorization_method"),
		Card:                o.ref("card"),
		Cardholder:          o.ref("cardholder"),
		Created:             o.integer("created"),
		Currency:            o.str("currency"),
		EventType:           eventType,
		ID:                  o.str("id"),
		MerchantAmount:      o.integer("merchant_amount"),
		MerchantCurrency:    o.str("merchant_currency"),
		Status:              o.str("status"),
		Wallet:              o.str("wallet"),
	}
	if ad, ok := o.child("amount_details"); ok {
		ia.AmountDetails = &stripe.AmountDetails{
			AtmFee:         ad.integer("atm_fee"),
			CashbackAmount: ad.integer("cashback_amount"),
		}
	}
	if md, ok := o.child("merchant_data"); ok {
		ia.MerchantData = stripe.MerchantData{
			Category:     md.str("category"),
			CategoryCode: md.str("category_code"),
			City:         md.str("city"),
			Country:      md.str("country"),
			Name:         md.str("name"),
			NetworkID:    md.str("network_id"),
			PostalCode:   md.str("postal_code"),
			State:        md.str("state"),
			TaxID:        md.str("tax_id"),
			TerminalID:   md.str("terminal_id"),
			URL:          md.str("url"),
		}
	}
	return ia
}
