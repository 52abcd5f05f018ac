package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreadIDIsOrderIndependent(t *testing.T) {
	assert.Equal(t, "A_B_P1", ThreadID("A", "B", "P1"))
	assert.Equal(t, "A_B_P1", ThreadID("B", "A", "P1"))
}

func TestThreadIDVariesByProduct(t *testing.T) {
	assert.NotEqual(t, ThreadID("A", "B", "P1"), ThreadID("A", "B", "P2"))
}

func TestCounterparty(t *testing.T) {
	thread := &Thread{Users: []string{"buyer-1", "seller-1"}}

	assert.Equal(t, "seller-1", thread.Counterparty("buyer-1"))
	assert.Equal(t, "buyer-1", thread.Counterparty("seller-1"))
}

func TestHasParticipant(t *testing.T) {
	thread := &Thread{Users: []string{"buyer-1", "seller-1"}}

	assert.True(t, thread.HasParticipant("buyer-1"))
	assert.False(t, thread.HasParticipant("stranger"))
}
