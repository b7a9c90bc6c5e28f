// Package mapping converts between domain models and API models. Amount
// formatting through the money codec happens only here.
package mapping

import (
	"github.com/chris/bank-ledger/pkg/api"
	"github.com/chris/bank-ledger/pkg/models"
	"github.com/chris/bank-ledger/pkg/money"
)

// timeLayout renders record timestamps at second resolution.
const timeLayout = "2006-01-02 15:04:05"

// ToApiTransaction converts a domain record to its API shape.
func ToApiTransaction(rec *models.TransactionRecord) api.Transaction {
	tx := api.Transaction{
		Type:      string(rec.Kind),
		Amount:    money.FromCents(rec.Amount),
		CreatedAt: rec.CreatedAt.Format(timeLayout),
	}
	if rec.Counterparty != "" {
		cp := rec.Counterparty
		tx.Counterparty = &cp
	}
	return tx
}

// ToApiTransactionList converts a newest-first slice of records.
func ToApiTransactionList(recs []models.TransactionRecord) api.TransactionList {
	items := make([]api.Transaction, len(recs))
	for i := range recs {
		items[i] = ToApiTransaction(&recs[i])
	}
	return api.TransactionList{Items: items}
}
