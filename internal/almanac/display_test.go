package almanac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayForm(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"1775-07-04", "Tuesday, July 4, 1775"},
		{"1775-12-25", "Monday, December 25, 1775"},
		{"1776-02-29", "Thursday, February 29, 1776"},
		{"1776-07-03", "Wednesday, July 3, 1776"},
	}

	for _, tt := range tests {
		got, err := DisplayForm(tt.addr)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestDisplayFormInvalid(t *testing.T) {
	_, err := DisplayForm("1776-2-29")
	assert.Error(t, err)
}
