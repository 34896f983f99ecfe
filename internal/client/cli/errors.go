package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ctibook/internal/client/api"
)

// messageFor converts an error from the api layer into the one user-facing
// line the shell prints. Views never retry; they present and move on.
func messageFor(err error) string {
	switch {
	case api.IsUnavailable(err):
		return "Cannot reach the server. Check your connection and try again."
	case api.IsNotFound(err):
		return "Record not found. It may have already been deleted."
	case api.IsUnauthorized(err):
		return "Your session has expired. Please log in again."
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// fail presents err and passes it through unchanged.
func (a *App) fail(err error) error {
	fmt.Fprintln(a.out, errorLine(messageFor(err)))
	return err
}
