package stripe

// BillingAddress is the cardholder billing address. Note the postal code key
// is hyphenated on the wire, unlike the customer address.
type BillingAddress struct {
	City       string `json:"city"`
	Country    string `json:"country"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	PostalCode string `json:"postal-code"`
	State      string `json:"state"`
}

// DateOfBirth is a cardholder's date of birth.
type DateOfBirth struct {
	Day   int64 `json:"day"`
	Month int64 `json:"month"`
	Year  int64 `json:"year"`
}

// CardholderIndividual holds the individual details of a cardholder.
type CardholderIndividual struct {
	Dob       *DateOfBirth `json:"dob,omitempty"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
}

// IssuingCardholder covers issuing_cardholder.* events.
type IssuingCardholder struct {
	Billing     BillingAddress        `json:"billing"`
	Created     int64                 `json:"created"`
	Email       string                `json:"email"`
	EventType   string                `json:"event_type"`
	ID          string                `json:"id"`
	Individual  *CardholderIndividual `json:"individual,omitempty"`
	Name        string                `json:"name"`
	PhoneNumber string                `json:"phone_number"`
	Status      string                `json:"status"`
	Type        string                `json:"type"`
}

func (*IssuingCardholder) Category() Category { return CategoryIssuingCardholder }

// CardCardholder is the cardholder summary embedded in an issued card.
type CardCardholder struct {
	Email string `json:"email"`
	ID    string `json:"id"`
}

// IssuingCard covers issuing_card.* events.
type IssuingCard struct {
	Brand              string         `json:"brand"`
	CancellationReason string         `json:"cancellation_reason"`
	Cardholder         CardCardholder `json:"cardholder"`
	Created            int64          `json:"created"`
	Currency           string         `json:"currency"`
	CVC                string         `json:"cvc"`
	EventType          string         `json:"event_type"`
	ExpMonth           int64          `json:"exp_month"`
	ExpYear            int64          `json:"exp_year"`
	FinancialAccount   string         `json:"financial_account"`
	ID                 string         `json:"id"`
	Last4              string         `json:"last4"`
	Status             string         `json:"status"`
	Type               string         `json:"type"`
}

func (*IssuingCard) Category() Category { return CategoryIssuingCard }

// IssuingDispute covers issuing_dispute.* events.
type IssuingDispute struct {
	Amount     int64  `json:"amount"`
	Created    int64  `json:"created"`
	Currency   string `json:"currency"`
	EventType  string `json:"event_type"`
	ID         string `json:"id"`
	LossReason string `json:"loss_reason"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
}

func (*IssuingDispute) Category() Category { return CategoryIssuingDispute }

// AmountDetails itemizes an authorization amount.
type AmountDetails struct {
	AtmFee         int64 `json:"atm_fee"`
	CashbackAmount int64 `json:"cashback_amount"`
}

// MerchantData describes the merchant side of an authorization.
type MerchantData struct {
	Category     string `json:"category"`
	CategoryCode string `json:"category_code"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Name         string `json:"name"`
	NetworkID    string `json:"network_id"`
	PostalCode   string `json:"postal_code"`
	State        string `json:"state"`
	TaxID        string `json:"tax_id"`
	TerminalID   string `json:"terminal_id"`
	URL          string `json:"url"`
}

// IssuingAuthorization covers issuing_authorization.* events.
type IssuingAuthorization struct {
	Amount              int64          `json:"amount"`
	AmountDetails       *AmountDetails `json:"amount_details,omitempty"`
	Approved            bool           `json:"approved"`
	AuthorizationMethod string         `json:"authorization_method"`
	Card                string         `json:"card"`
	Cardholder          string         `json:"cardholder"`
	Created             int64          `json:"created"`
	Currency            string         `json:"currency"`
	EventType           string         `json:"event_type"`
	ID                  string         `json:"id"`
	MerchantAmount      int64          `json:"merchant_amount"`
	MerchantCurrency    string         `json:"merchant_currency"`
	MerchantData        MerchantData   `json:"merchant_data"`
	Status              string         `json:"status"`
	Wallet              string         `json:"wallet"`
}

func (*IssuingAuthorization) Category() Category { return CategoryIssuingAuthorization }
