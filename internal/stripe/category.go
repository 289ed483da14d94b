package stripe

// Category is the canonical kind a raw event reduces to.
type Category string

const (
	CategoryInvoice              Category = "invoice"
	CategoryCustomer             Category = "customer"
	CategoryCharge               Category = "charge"
	CategorySubscriptionSchedule Category = "subscription_schedule"
	CategoryInvoiceItem          Category = "invoiceitem"
	CategoryPaymentIntent        Category = "payment_intent"
	CategoryPayout               Category = "payout"
	CategoryIssuingCardholder    Category = "issuing_cardholder"
	CategoryIssuingCard          Category = "issuing_card"
	CategoryIssuingDispute       Category = "issuing_dispute"
	CategoryTopup                Category = "topup"
	CategorySource               Category = "source"
	CategoryIssuingAuthorization Category = "issuing_authorization"
	CategoryUnhandled            Category = "unhandled"
)

// Categories lists every concrete category (Unhandled excluded).
var Categories = []Category{
	CategoryInvoice,
	CategoryCustomer,
	CategoryCharge,
	CategorySubscriptionSchedule,
	CategoryInvoiceItem,
	CategoryPaymentIntent,
	CategoryPayout,
	CategoryIssuingCardholder,
	CategoryIssuingCard,
	CategoryIssuingDispute,
	CategoryTopup,
	CategorySource,
	CategoryIssuingAuthorization,
}

// Known returns whether c names a concrete category or Unhandled.
func Known(c Category) bool {
	if c == CategoryUnhandled {
		return true
	}
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// EventCategories is the authoritative mapping from each supported event-type
// literal to its category. Lookup is exact: there is no prefix matching, so an
// unlisted subtype like "invoice.something_new" classifies as Unhandled even
// though listed invoice.* types exist.
var EventCategories = map[string]Category{
	// charge
	"charge.captured":                 CategoryCharge,
	"charge.dispute.closed":           CategoryCharge,
	"charge.dispute.created":          CategoryCharge,
	"charge.dispute.funds_reinstated": CategoryCharge,
	"charge.dispute.funds_withdrawn":  CategoryCharge,
	"charge.dispute.updated":          CategoryCharge,
	"charge.expired":                  CategoryCharge,
	"charge.failed":                   CategoryCharge,
	"charge.pending":                  CategoryCharge,
	"charge.refund.updated":           CategoryCharge,
	"charge.refunded":                 CategoryCharge,
	"charge.succeeded":                CategoryCharge,
	"charge.updated":                  CategoryCharge,

	// customer
	"customer.bank_account.created":                CategoryCustomer,
	"customer.bank_account.deleted":                CategoryCustomer,
	"customer.bank_account.updated":                CategoryCustomer,
	"customer.card.created":                        CategoryCustomer,
	"customer.card.deleted":                        CategoryCustomer,
	"customer.card.updated":                        CategoryCustomer,
	"customer.created":                             CategoryCustomer,
	"customer.deleted":                             CategoryCustomer,
	"customer.subscription.created":                CategoryCustomer,
	"customer.subscription.deleted":                CategoryCustomer,
	"customer.subscription.paused":                 CategoryCustomer,
	"customer.subscription.pending_update_applied": CategoryCustomer,
	"customer.subscription.pending_update_expired": CategoryCustomer,
	"customer.subscription.resumed":                CategoryCustomer,
	"customer.subscription.trial_will_end":         CategoryCustomer,
	"customer.subscription.updated":                CategoryCustomer,
	"customer.updated":                             CategoryCustomer,

	// invoice
	"invoice.created":                 CategoryInvoice,
	"invoice.deleted":                 CategoryInvoice,
	"invoice.finalization_failed":     CategoryInvoice,
	"invoice.finalized":               CategoryInvoice,
	"invoice.marked_uncollectible":    CategoryInvoice,
	"invoice.overdue":                 CategoryInvoice,
	"invoice.paid":                    CategoryInvoice,
	"invoice.payment_action_required": CategoryInvoice,
	"invoice.payment_failed":          CategoryInvoice,
	"invoice.payment_succeeded":       CategoryInvoice,
	"invoice.sent":                    CategoryInvoice,
	"invoice.upcoming":                CategoryInvoice,
	"invoice.updated":                 CategoryInvoice,
	"invoice.voided":                  CategoryInvoice,
	"invoice.will_be_due":             CategoryInvoice,

	// invoiceitem
	"invoiceitem.created": CategoryInvoiceItem,
	"invoiceitem.deleted": CategoryInvoiceItem,

	// issuing
	"issuing_authorization.created": CategoryIssuingAuthorization,
	"issuing_authorization.updated": CategoryIssuingAuthorization,
	"issuing_card.created":          CategoryIssuingCard,
	"issuing_card.updated":          CategoryIssuingCard,
	"issuing_cardholder.created":    CategoryIssuingCardholder,
	"issuing_cardholder.updated":    CategoryIssuingCardholder,
	"issuing_dispute.closed":        CategoryIssuingDispute,
	"issuing_dispute.created":       CategoryIssuingDispute,
	"issuing_dispute.funds_reinstated": CategoryIssuingDispute,
	"issuing_dispute.funds_rescinded":  CategoryIssuingDispute,
	"issuing_dispute.submitted":        CategoryIssuingDispute,
	"issuing_dispute.updated":          CategoryIssuingDispute,

	// payment_intent
	"payment_intent.amount_capturable_updated": CategoryPaymentIntent,
	"payment_intent.canceled":                  CategoryPaymentIntent,
	"payment_intent.created":                   CategoryPaymentIntent,
	"payment_intent.partially_funded":          CategoryPaymentIntent,
	"payment_intent.payment_failed":            CategoryPaymentIntent,
	"payment_intent.processing":                CategoryPaymentIntent,
	"payment_intent.requires_action":           CategoryPaymentIntent,
	"payment_intent.succeeded":                 CategoryPaymentIntent,

	// payout
	"payout.canceled":                 CategoryPayout,
	"payout.created":                  CategoryPayout,
	"payout.failed":                   CategoryPayout,
	"payout.paid":                     CategoryPayout,
	"payout.reconciliation_completed": CategoryPayout,
	"payout.updated":                  CategoryPayout,

	// source
	"source.canceled":                   CategorySource,
	"source.chargeable":                 CategorySource,
	"source.failed":                     CategorySource,
	"source.mandate_notification":       CategorySource,
	"source.refund_attributes_required": CategorySource,
	"source.transaction.created":        CategorySource,
	"source.transaction.updated":        CategorySource,

	// subscription_schedule
	"subscription_schedule.aborted":   CategorySubscriptionSchedule,
	"subscription_schedule.canceled":  CategorySubscriptionSchedule,
	"subscription_schedule.completed": CategorySubscriptionSchedule,
	"subscription_schedule.created":   CategorySubscriptionSchedule,
	"subscription_schedule.expiring":  CategorySubscriptionSchedule,
	"subscription_schedule.released":  CategorySubscriptionSchedule,
	"subscription_schedule.updated":   CategorySubscriptionSchedule,

	// topup
	"topup.canceled":  CategoryTopup,
	"topup.created":   CategoryTopup,
	"topup.failed":    CategoryTopup,
	"topup.reversed":  CategoryTopup,
	"topup.succeeded": CategoryTopup,
}

// Classify maps a raw event-type string to its category. Unknown types yield
// CategoryUnhandled; classification never fails.
func Classify(eventType string) Category {
	if c, ok := EventCategories[eventType]; ok {
		return c
	}
	return CategoryUnhandled
}
