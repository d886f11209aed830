package transactions

// Categories a transaction can carry. The sign of an entry is implied by the
// category; amounts themselves are stored as non-negative magnitudes.
const (
	CategoryIncome  = "income"
	CategoryExpense = "expense"
)

// Transaction represents a single ledger entry.
//
// The ledger is global: entries carry no owning user. This mirrors the
// observed production schema; access is still gated on authentication.
type Transaction struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
}

// TransactionRequest is the request payload for creating or replacing an entry
type TransactionRequest struct {
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Description string  `json:"description" binding:"required,max=500"`
	Category    string  `json:"category" binding:"required,oneof=income expense"`
	Amount      float64 `json:"amount" binding:"gte=0"`
}
