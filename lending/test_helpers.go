package lending

import (
	"github.com/libraryapp/lending/loan"
	"github.com/stretchr/testify/mock"
)

// MatchHistory creates a custom matcher for ledger entries in mocks.
func MatchHistory(matcher func(loan.History) bool) interface{} {
	return mock.MatchedBy(matcher)
}
