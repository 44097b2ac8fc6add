package models

import "time"

// Account is a money account. The stored balance is only the opening value;
// the current balance is derived from transactions at read time.
type Account struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	AccountName    string    `json:"account_name"`
	InitialBalance float64   `json:"initial_balance"`
	CreatedAt      time.Time `json:"created_at"`
}

// AccountWithBalance augments an Account with its derived current balance
// (initial + income − expense).
type AccountWithBalance struct {
	Account
	CurrentBalance float64 `json:"current_balance"`
}

// Transaction is a single income or expense entry against an account.
// AccountName is populated on reads that join the accounts table.
type Transaction struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	AccountID       int64   `json:"account_id"`
	TransactionType string  `json:"transaction_type"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category"`
	Notes           string  `json:"notes"`
	TransactionDate string  `json:"transaction_date"`
	AccountName     string  `json:"account_name,omitempty"`
}

// Loan tracks money lent or borrowed. RepaymentDate is set when the loan is
// marked paid and cleared when it is reopened.
type Loan struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	LoanType      string     `json:"loan_type"`
	PersonName    string     `json:"person_name"`
	Amount        float64    `json:"amount"`
	Notes         string     `json:"notes"`
	LoanDate      string     `json:"loan_date"`
	Status        string     `json:"status"`
	RepaymentDate *time.Time `json:"repayment_date"`
}
