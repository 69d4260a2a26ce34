package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPurchaseStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    PurchaseStatus
		to      PurchaseStatus
		allowed bool
	}{
		{"pending to completed", PurchaseStatusPending, PurchaseStatusCompleted, true},
		{"pending to failed", PurchaseStatusPending, PurchaseStatusFailed, true},
		{"pending to pending", PurchaseStatusPending, PurchaseStatusPending, false},
		{"completed is terminal", PurchaseStatusCompleted, PurchaseStatusFailed, false},
		{"completed cannot revert", PurchaseStatusCompleted, PurchaseStatusPending, false},
		{"failed is terminal", PurchaseStatusFailed, PurchaseStatusCompleted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}
