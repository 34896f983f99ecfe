package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/ctibook/internal/client/api"
)

func TestMessageFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unreachable server",
			err:  fmt.Errorf("%w: dial tcp: connection refused", api.ErrUnavailable),
			want: "Cannot reach the server. Check your connection and try again.",
		},
		{
			name: "missing record",
			err:  &api.APIError{Status: 404, Message: "not found"},
			want: "Record not found. It may have already been deleted.",
		},
		{
			name: "expired session",
			err:  &api.APIError{Status: 401, Message: "invalid token"},
			want: "Your session has expired. Please log in again.",
		},
		{
			name: "server message passes through",
			err:  &api.APIError{Status: 409, Message: "username already taken"},
			want: "username already taken",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageFor(tt.err))
		})
	}
}
