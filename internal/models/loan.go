package models

// LoanStatus is the lifecycle state of a loan, owned by the remote API.
type LoanStatus string

const (
	LoanActive    LoanStatus = "ATIVA"
	LoanFinished  LoanStatus = "FINALIZADA"
	LoanOverdue   LoanStatus = "ATRASADA"
	LoanCancelled LoanStatus = "CANCELADA"
)

// LoanStatusLabels maps API loan status values to display labels.
var LoanStatusLabels = map[LoanStatus]string{
	LoanActive:    "Ativa",
	LoanFinished:  "Finalizada",
	LoanOverdue:   "Atrasada",
	LoanCancelled: "Cancelada",
}

// LoanBook is the embedded book summary inside a loan record.
type LoanBook struct {
	ID               string `json:"id"`
	Title            string `json:"titulo"`
	Author           string `json:"autor"`
	CoverURL         string `json:"capaFoto"`
	AvailableForLoan bool   `json:"disponivelLocacao"`
}

// LoanUser is the embedded borrower summary inside a loan record.
type LoanUser struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// Loan is a checkout record as returned by the library API.
// ReturnedAt is nil while the loan is open.
type Loan struct {
	ID         string     `json:"id"`
	Book       LoanBook   `json:"livro"`
	User       LoanUser   `json:"usuario"`
	LoanedAt   string     `json:"dataLocacao"`
	ReturnedAt *string    `json:"dataDevolucao"`
	Status     LoanStatus `json:"status"`
}
