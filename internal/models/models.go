package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	APPName    = "Mukesh Dairy"
	APPVersion = "1.0"
)

// Response is the type for response
type Response struct {
	Error   bool   `json:"error"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JWT holds the claims carried by an operator token
type JWT struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Issuer    string    `json:"iss"`
	Audience  string    `json:"aud"`
	ExpiresAt int64     `json:"exp"`
	IssuedAt  int64     `json:"iat"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
	Audience  string
	Algorithm string
	Expiry    time.Duration
}

type DBConfig struct {
	DSN    string
	DEVDSN string
}

type Config struct {
	Port int
	Env  string
	JWT  JWTConfig
	DB   DBConfig
}

// Shift values; milk is collected twice a day
const (
	ShiftMorning = "MORNING"
	ShiftEvening = "EVENING"
)

// Milk types are a fixed set; adding one is a schema change
const (
	MilkTypeCow     = "COW"
	MilkTypeBuffalo = "BUFFALO"
	MilkTypeMix     = "MIX"
)

// Rate sources. A MANUAL rate is an operator override and must not be
// replaced by chart resolution until fat/snf change again.
const (
	RateSourceAuto   = "AUTO"
	RateSourceManual = "MANUAL"
)

// Payment modes
const (
	PaymentModeCash = "Cash"
	PaymentModeUPI  = "UPI"
)

// User is an operator account that can sign in to the service
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // bcrypt hash, don't expose
	Name      string    `json:"name"`
	Role      string    `json:"role"` //admin //operator
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Customer is a milk supplier registered with the cooperative.
// SlNo is the human-facing serial, zero-padded to 3 digits for display.
type Customer struct {
	ID        int64     `json:"id"`
	SlNo      int       `json:"slNo"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Village   *string   `json:"village"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerNameID is the slim shape embedded in entry/payment listings
type CustomerNameID struct {
	ID   int64  `json:"id"`
	SlNo int    `json:"slNo"`
	Name string `json:"name"`
}

// Entry is one recorded milk delivery: one customer, one date, one shift.
// Amount is always round2(QuantityL * Rate) and is recomputed on every edit.
type Entry struct {
	ID         int64            `json:"id"`
	CustomerID int64            `json:"customerId"`
	DateStr    string           `json:"date"` // YYYY-MM-DD on the wire
	Date       time.Time        `json:"-"`
	Shift      string           `json:"shift"`
	MilkType   string           `json:"milkType"`
	QuantityL  decimal.Decimal  `json:"quantityL"`
	Fat        *decimal.Decimal `json:"fat,omitempty"`
	Snf        *decimal.Decimal `json:"snf,omitempty"`
	Rate       decimal.Decimal  `json:"rate"`
	RateSource string           `json:"rateSource"`
	Amount     decimal.Decimal  `json:"amount"`
	Note       *string          `json:"note,omitempty"`
	Customer   *CustomerNameID  `json:"customer,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// Payment is money paid out to a customer; several per day are allowed
type Payment struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customerId"`
	DateStr    string          `json:"date"` // YYYY-MM-DD on the wire
	Date       time.Time       `json:"-"`
	Amount     decimal.Decimal `json:"amount"`
	Mode       string          `json:"mode"`
	ReceiptNo  string          `json:"receiptNo"`
	Note       *string         `json:"note,omitempty"`
	Customer   *CustomerNameID `json:"customer,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// RateSlab is one band of the configured rate chart. A sample matches a
// slab when the milk type is equal and fat/snf both fall inside the
// inclusive [min, max] bounds.
type RateSlab struct {
	ID        int64           `json:"id"`
	MilkType  string          `json:"milkType"`
	FatMin    decimal.Decimal `json:"fatMin"`
	FatMax    decimal.Decimal `json:"fatMax"`
	SnfMin    decimal.Decimal `json:"snfMin"`
	SnfMax    decimal.Decimal `json:"snfMax"`
	Rate      decimal.Decimal `json:"rate"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// MilkTypeTotal is one (shift, milk type) bucket of a daily summary
type MilkTypeTotal struct {
	Liters decimal.Decimal `json:"liters"`
	Amount decimal.Decimal `json:"amount"`
}

// ShiftSummary holds one shift's buckets plus shift totals.
// Count is distinct customers, not entry count.
type ShiftSummary struct {
	Cow         MilkTypeTotal   `json:"COW"`
	Buffalo     MilkTypeTotal   `json:"BUFFALO"`
	Mix         MilkTypeTotal   `json:"MIX"`
	TotalLiters decimal.Decimal `json:"totalLiters"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Count       int             `json:"count"`
}

// DailySummary is derived from the entries of one calendar date.
// It is never stored; aggregators recompute it on demand.
type DailySummary struct {
	Date        string          `json:"date"`
	Morning     ShiftSummary    `json:"MORNING"`
	Evening     ShiftSummary    `json:"EVENING"`
	TotalLiters decimal.Decimal `json:"totalLiters"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalCount  int             `json:"totalCount"`
}

// PeriodTotals are one customer's milk and payment totals over a range.
// UnpaidAmount may go negative when the customer is overpaid.
type PeriodTotals struct {
	TotalMilkQuantity decimal.Decimal `json:"totalMilkQuantity"`
	TotalMilkAmount   decimal.Decimal `json:"totalMilkAmount"`
	TotalPaidAmount   decimal.Decimal `json:"totalPaidAmount"`
	UnpaidAmount      decimal.Decimal `json:"unpaidAmount"`
}

// PeriodStatement is the drill-down report for one customer and date range
type PeriodStatement struct {
	CustomerID int64        `json:"customerId"`
	From       string       `json:"from"`
	To         string       `json:"to"`
	Totals     PeriodTotals `json:"totals"`
	Entries    []*Entry     `json:"entries"`
	Payments   []*Payment   `json:"payments"`
}

// CustomerPeriodTotal is one row of the cooperative-wide period listing
type CustomerPeriodTotal struct {
	CustomerID  int64           `json:"customerId"`
	SlNo        int             `json:"slNo"`
	Name        string          `json:"name"`
	TotalLiters decimal.Decimal `json:"totalLiters"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
