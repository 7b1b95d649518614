package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Processing", "Completed", "Cancelled"} {
		st, ok := ParseStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, Status(valid), st)
	}

	for _, invalid := range []string{"", "pending", "Shipped", "CANCELLED"} {
		_, ok := ParseStatus(invalid)
		assert.False(t, ok, invalid)
	}
}
