package stripe

// Payload field sets mirror the vendor objects one-to-one for each category.
// Expandable references (customer, invoice, balance_transaction, card, …) are
// always plain identifier strings here; optional scalars fall back to their
// zero value, while optional nested objects are omitted entirely when absent.
//
// Key naming is deliberately not unified across categories (the cardholder
// billing address spells its postal code with a hyphen, the customer address
// with an underscore); downstream consumers depend on the literal keys.

// LineItem is one reduced invoice line.
type LineItem struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

// Invoice covers all invoice.* events.
type Invoice struct {
	AccountCountry   string     `json:"account_country"`
	AccountName      string     `json:"account_name"`
	AmountDue        int64      `json:"amount_due"`
	AmountPaid       int64      `json:"amount_paid"`
	AmountRemaining  int64      `json:"amount_remaining"`
	AmountShipping   int64      `json:"amount_shipping"`
	AttemptCount     int64      `json:"attempt_count"`
	Attempted        bool       `json:"attempted"`
	BillingReason    string     `json:"billing_reason"`
	CollectionMethod string     `json:"collection_method"`
	Created          int64      `json:"created"`
	Currency         string     `json:"currency"`
	Customer         string     `json:"customer"`
	CustomerEmail    string     `json:"customer_email"`
	CustomerName     string     `json:"customer_name"`
	EventType        string     `json:"event_type"`
	HostedInvoiceURL string     `json:"hosted_invoice_url,omitempty"`
	ID               string     `json:"id"`
	Lines            []LineItem `json:"lines"`
	Paid             bool       `json:"paid"`
	PaidOutOfBand    bool       `json:"paid_out_of_band"`
	PeriodEnd        int64      `json:"period_end"`
	PeriodStart      int64      `json:"period_start"`
	Status           string     `json:"status"`
	Subtotal         int64      `json:"subtotal"`
	Total            int64      `json:"total"`
}

func (*Invoice) Category() Category { return CategoryInvoice }

// CustomerAddress is the customer postal address. Present only when the raw
// payload carried a non-null address object.
type CustomerAddress struct {
	City       string `json:"city"`
	Country    string `json:"country"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
}

// Customer covers all customer.* events.
type Customer struct {
	Address             *CustomerAddress `json:"address,omitempty"`
	Balance             int64            `json:"balance"`
	Created             int64            `json:"created"`
	Currency            string           `json:"currency"`
	Delinquent          bool             `json:"delinquent"`
	Description         string           `json:"description"`
	Email               string           `json:"email"`
	EventType           string           `json:"event_type"`
	ID                  string           `json:"id"`
	InvoicePrefix       string           `json:"invoice_prefix"`
	Name                string           `json:"name"`
	NextInvoiceSequence int64            `json:"next_invoice_sequence"`
	Phone               string           `json:"phone"`
}

func (*Customer) Category() Category { return CategoryCustomer }

// Charge covers charge.* events, including dispute and refund subtypes.
type Charge struct {
	Amount                        int64  `json:"amount"`
	AmountCaptured                int64  `json:"amount_captured"`
	AmountRefunded                int64  `json:"amount_refunded"`
	BalanceTransaction            string `json:"balance_transaction"`
	CalculatedStatementDescriptor string `json:"calculated_statement_descriptor"`
	Captured                      bool   `json:"captured"`
	Created                       int64  `json:"created"`
	Currency                      string `json:"currency"`
	Customer                      string `json:"customer"`
	Description                   string `json:"description"`
	Disputed                      bool   `json:"disputed"`
	EventType                     string `json:"event_type"`
	FailureCode                   string `json:"failure_code"`
	FailureMessage                string `json:"failure_message"`
	ID                            string `json:"id"`
	Invoice                       string `json:"invoice"`
	Paid                          bool   `json:"paid"`
	ReceiptURL                    string `json:"receipt_url"`
	Refunded                      bool   `json:"refunded"`
	Status                        string `json:"status"`
}

func (*Charge) Category() Category { return CategoryCharge }

// ScheduleDefaultSettings is the subscription schedule's default phase settings.
type ScheduleDefaultSettings struct {
	BillingCycleAnchor string `json:"billing_cycle_anchor"`
	CollectionMethod   string `json:"collection_method"`
}

// SubscriptionSchedule covers subscription_schedule.* events.
type SubscriptionSchedule struct {
	CanceledAt      int64                   `json:"canceled_at"`
	CompletedAt     int64                   `json:"completed_at"`
	Created         int64                   `json:"created"`
	Customer        string                  `json:"customer"`
	DefaultSettings ScheduleDefaultSettings `json:"default_settings"`
	EndBehavior     string                  `json:"end_behavior"`
	EventType       string                  `json:"event_type"`
	ID              string                  `json:"id"`
	ReleasedAt      int64                   `json:"released_at"`
	Status          string                  `json:"status"`
}

func (*SubscriptionSchedule) Category() Category { return CategorySubscriptionSchedule }

// Period is a start/end timestamp pair.
type Period struct {
	End   int64 `json:"end"`
	Start int64 `json:"start"`
}

// InvoiceItem covers invoiceitem.* events.
type InvoiceItem struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Customer    string `json:"customer"`
	Date        int64  `json:"date"`
	Description string `json:"description"`
	EventType   string `json:"event_type"`
	ID          string `json:"id"`
	Period      Period `json:"period"`
	Quantity    int64  `json:"quantity"`
}

func (*InvoiceItem) Category() Category { return CategoryInvoiceItem }

// PaymentIntent covers payment_intent.* events.
type PaymentIntent struct {
	Amount             int64    `json:"amount"`
	AmountReceived     int64    `json:"amount_received"`
	CanceledAt         int64    `json:"canceled_at"`
	CancellationReason string   `json:"cancellation_reason"`
	CaptureMethod      string   `json:"capture_method"`
	ConfirmationMethod string   `json:"confirmation_method"`
	Created            int64    `json:"created"`
	Currency           string   `json:"currency"`
	Customer           string   `json:"customer"`
	Description        string   `json:"description"`
	EventType          string   `json:"event_type"`
	ID                 string   `json:"id"`
	Invoice            string   `json:"invoice"`
	PaymentMethodTypes []string `json:"payment_method_types"`
	ReceiptEmail       string   `json:"receipt_email"`
	Status             string   `json:"status"`
}

func (*PaymentIntent) Category() Category { return CategoryPaymentIntent }

// Payout covers payout.* events.
type Payout struct {
	Amount               int64  `json:"amount"`
	ArrivalDate          int64  `json:"arrival_date"`
	Automatic            bool   `json:"automatic"`
	BalanceTransaction   string `json:"balance_transaction"`
	Created              int64  `json:"created"`
	Currency             string `json:"currency"`
	Description          string `json:"description"`
	EventType            string `json:"event_type"`
	FailureCode          string `json:"failure_code"`
	FailureMessage       string `json:"failure_message"`
	ID                   string `json:"id"`
	Method               string `json:"method"`
	ReconciliationStatus string `json:"reconciliation_status"`
	SourceType           string `json:"source_type"`
	StatementDescriptor  string `json:"statement_descriptor"`
	Status               string `json:"status"`
	Type                 string `json:"type"`
}

func (*Payout) Category() Category { return CategoryPayout }

// Topup covers topup.* events.
type Topup struct {
	Amount                   int64  `json:"amount"`
	Created                  int64  `json:"created"`
	Currency                 string `json:"currency"`
	Description              string `json:"description"`
	EventType                string `json:"event_type"`
	ExpectedAvailabilityDate int64  `json:"expected_availability_date"`
	FailureCode              string `json:"failure_code"`
	FailureMessage           string `json:"failure_message"`
	ID                       string `json:"id"`
	Status                   string `json:"status"`
}

func (*Topup) Category() Category { return CategoryTopup }

// SourceOwnerAddress is the source owner's postal address.
type SourceOwnerAddress struct {
	City       string `json:"city"`
	Country    string `json:"country"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
}

// SourceOwner is the owning party of a payment source.
type SourceOwner struct {
	Address *SourceOwnerAddress `json:"address,omitempty"`
	Email   string              `json:"email"`
	Name    string              `json:"name"`
	Phone   string              `json:"phone"`
}

// Source covers source.* events.
type Source struct {
	Amount              int64        `json:"amount"`
	ClientSecret        string       `json:"client_secret"`
	Created             int64        `json:"created"`
	Currency            string       `json:"currency"`
	Customer            string       `json:"customer"`
	EventType           string       `json:"event_type"`
	ID                  string       `json:"id"`
	Owner               *SourceOwner `json:"owner,omitempty"`
	StatementDescriptor string       `json:"statement_descriptor"`
	Status              string       `json:"status"`
	Type                string       `json:"type"`
}

func (*Source) Category() Category { return CategorySource }

// Unhandled carries events whose type string is outside the supported set.
type Unhandled struct {
	EventType string `json:"event_type"`
	Message   string `json:"message"`
}

func (*Unhandled) Category() Category { return CategoryUnhandled }

// UnhandledMessage is the fixed message carried by every Unhandled payload.
const UnhandledMessage = "Event type not handled"
