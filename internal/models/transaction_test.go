package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedAmount(t *testing.T) {
	expense := Transaction{Amount: decimal.RequireFromString("45.5"), Type: TypeExpense}
	assert.True(t, expense.SignedAmount().Equal(decimal.RequireFromString("-45.5")))
	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())

	income := Transaction{Amount: decimal.NewFromInt(1500), Type: TypeIncome}
	assert.True(t, income.SignedAmount().Equal(decimal.NewFromInt(1500)))
	assert.True(t, income.IsIncome())
}

func TestNetAmount(t *testing.T) {
	result := ParseResult{
		Transactions: []Transaction{
			{Amount: decimal.NewFromInt(1500), Type: TypeIncome},
			{Amount: decimal.RequireFromString("45.5"), Type: TypeExpense},
			{Amount: decimal.RequireFromString("800"), Type: TypeExpense},
		},
	}

	assert.True(t, result.NetAmount().Equal(decimal.RequireFromString("654.5")))
	assert.True(t, ParseResult{}.NetAmount().IsZero())
}

func TestTransactionJSONAmountIsNumeric(t *testing.T) {
	tx := Transaction{
		Date:        "2024-03-12",
		Description: "Test",
		Amount:      decimal.RequireFromString("45.5"),
		Type:        TypeExpense,
		Category:    "Varie",
	}

	data, err := json.Marshal(tx)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"amount":45.5`, "amounts serialize as JSON numbers, not strings")
	assert.Contains(t, string(data), `"type":"expense"`)

	// The numeric form is local to Transaction: a bare decimal keeps its
	// quoted default, proving no package-global flag is flipped.
	bare, err := json.Marshal(decimal.RequireFromString("45.5"))
	require.NoError(t, err)
	assert.Equal(t, `"45.5"`, string(bare))
}

func TestParseResultJSONShape(t *testing.T) {
	result := ParseResult{
		Transactions:     []Transaction{},
		SourceLabel:      "Generico",
		TotalRowsScanned: 3,
		ParsedCount:      0,
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"transactions":[]`, "an empty result keeps an empty array, not null")
	assert.Contains(t, string(data), `"totalRowsScanned":3`)
}
