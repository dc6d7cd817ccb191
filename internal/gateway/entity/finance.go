package entity

// TransactionType is the closed set of ledger entry kinds.
type TransactionType string

const (
	TransactionIncome     TransactionType = "income"
	TransactionExpense    TransactionType = "expense"
	TransactionInvestment TransactionType = "investment"
)

// Transaction is a display-oriented ledger row. Date is an opaque display
// string, not a parsed timestamp.
type Transaction struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Date   string          `json:"date"`
	Amount float64         `json:"amount"`
	Type   TransactionType `json:"type"`
}

// FinanceData is a stored snapshot. The aggregates are not derived from the
// transaction list.
type FinanceData struct {
	TotalAssets          float64       `json:"totalAssets"`
	MonthlyPassiveIncome float64       `json:"monthlyPassiveIncome"`
	MonthlyExpense       float64       `json:"monthlyExpense"`
	ActiveProjects       []Project     `json:"activeProjects"`
	Transactions         []Transaction `json:"transactions"`
}

func (f FinanceData) Clone() FinanceData {
	out := f
	out.ActiveProjects = CloneProjects(f.ActiveProjects)
	out.Transactions = append([]Transaction(nil), f.Transactions...)
	return out
}
