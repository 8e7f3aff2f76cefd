package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a ledger account in the company's chart of accounts.
// Accounts form a tree via ParentID. System accounts (IsSystem) are
// created by provisioning and reject mutation and deletion.
//
// Invariant: Balance == OpeningBalance + Σ(CREDIT amounts) − Σ(DEBIT amounts)
// over the account's transactions. Writes maintain it atomically; the
// recalculation operation corrects historical drift.
type Account struct {
	ID             uuid.UUID
	CompanyID      uuid.UUID
	Code           string
	Name           string
	Type           AccountType
	Category       *string
	Description    *string
	Currency       string
	Balance        decimal.Decimal
	OpeningBalance decimal.Decimal
	IsSystem       bool
	ParentID       *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AccountUpdateParams holds partial-update fields for an account.
type AccountUpdateParams struct {
	Name        *string
	Category    *string
	Description *string
	ParentID    *uuid.UUID
}

// Transaction is a single debit or credit against an account.
// Creating, updating, or deleting one adjusts the owning account's balance.
type Transaction struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	AccountID   uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	Description *string
	Reference   *string
	Reconciled  bool
	Metadata    map[string]any
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BalanceChange returns the signed effect of the transaction on its
// account's balance: +Amount for credits, −Amount for debits.
func (t Transaction) BalanceChange() decimal.Decimal {
	if t.Type == TransactionCredit {
		return t.Amount
	}
	return t.Amount.Neg()
}

// TransactionUpdateParams holds partial-update fields for a transaction.
type TransactionUpdateParams struct {
	Type        *TransactionType
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
	Reference   *string
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	AccountID  *uuid.UUID
	Type       *TransactionType
	Reconciled *bool
	Limit      int
	Offset     int
}

// AccountFilter narrows account listings.
type AccountFilter struct {
	Type   *AccountType
	Limit  int
	Offset int
}
