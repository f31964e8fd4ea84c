package dedup

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdmitRejectsRepeats(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Admit("jk-1"))
	assert.False(t, r.Admit("jk-1"))
	assert.True(t, r.Admit("jk-2"))
	assert.False(t, r.Admit("jk-2"))
	assert.Equal(t, 2, r.Len())
}

func TestAdmitAlwaysAcceptsMissingIdentifier(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 5; i++ {
		assert.True(t, r.Admit(""))
	}
	assert.Equal(t, 0, r.Len())
}

// No identifier is ever admitted twice, whatever the feed order.
func TestAdmitInvariant(t *testing.T) {
	r := NewRegistry()
	admitted := map[string]int{}
	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("jk-%d", i%10)
		if r.Admit(id) {
			admitted[id]++
		}
	}
	for id, n := range admitted {
		assert.Equal(t, 1, n, id)
	}
}
