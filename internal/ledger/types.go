package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the transaction category.
type Kind string

const (
	KindRevenue Kind = "revenue"
	KindExpense Kind = "expense"
)

// ValidKinds defines the allowed transaction kinds.
var ValidKinds = []Kind{KindRevenue, KindExpense}

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindRevenue || k == KindExpense
}

// ParseKind maps a surface form to a Kind. It is case-insensitive and
// accepts the pluralized forms ("revenues", "expenses").
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.TrimSuffix(strings.ToLower(s), "s"))
	if !k.Valid() {
		return "", fmt.Errorf("unknown transaction kind %q: must be one of %v", s, ValidKinds)
	}
	return k, nil
}

// Record is a single ledger entry before persistence.
// Records are immutable once constructed.
type Record struct {
	Date        time.Time // civil date, UTC midnight
	Kind        Kind
	Amount      decimal.Decimal
	Description *string // nil = no description
}

// Transaction is a persisted ledger row as returned by listing queries.
// Description is coalesced to "" when the stored value is NULL.
type Transaction struct {
	ID          int64
	Date        time.Time
	Kind        Kind
	Amount      decimal.Decimal
	Description string
}

// DescriptionTotal is one row of the revenue-by-description report.
type DescriptionTotal struct {
	Description string
	Total       decimal.Decimal
}

// DateRange is an inclusive calendar-date filter. Either bound may be nil
// to leave that side open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether no bound is set.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}
