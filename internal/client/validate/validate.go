// Package validate checks form input before it reaches the network.
// Each entity type gets a pure function returning a structured set of
// field errors; nothing here touches the UI or the backend.
package validate

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/ctibook/internal/models"
)

// FieldErrors maps field name to a user-facing message. A nil or empty map
// means the input is valid.
type FieldErrors map[string]string

// Error joins the field messages in field-name order.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(e))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

func required(errs FieldErrors, field, value, label string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = label + " is required"
	}
}

func date(errs FieldErrors, field, value, label string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = label + " is required"
		return
	}
	if _, err := time.Parse(models.DateLayout, value); err != nil {
		errs[field] = label + " must be a date in YYYY-MM-DD format"
	}
}

// ThreatActorDraft validates a threat actor form: every field required,
// both date fields must parse as calendar dates.
func ThreatActorDraft(d models.ThreatActorDraft) FieldErrors {
	errs := FieldErrors{}
	required(errs, "name", d.Name, "Name")
	required(errs, "type", d.Type, "Type")
	required(errs, "description", d.Description, "Description")
	required(errs, "originCountry", d.OriginCountry, "Origin Country")
	date(errs, "firstObserved", d.FirstObserved, "First Observed date")
	date(errs, "lastActivity", d.LastActivity, "Last Activity date")
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// IncidentLogDraft validates an incident log form.
func IncidentLogDraft(d models.IncidentLogDraft) FieldErrors {
	errs := FieldErrors{}
	required(errs, "title", d.Title, "Title")
	required(errs, "description", d.Description, "Description")
	date(errs, "date", d.Date, "Date")
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Registration validates a new-account form the way the original signup
// screen does: username and email required, the email must look like one,
// and the password must be at least 6 characters.
func Registration(r models.Registration) FieldErrors {
	errs := FieldErrors{}
	required(errs, "username", r.Username, "Username")
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "Email is required"
	} else if !strings.Contains(r.Email, "@") || strings.HasPrefix(r.Email, "@") || strings.HasSuffix(r.Email, "@") {
		errs["email"] = "Email is invalid"
	}
	if r.Password == "" {
		errs["password"] = "Password is required"
	} else if len(r.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Credentials validates a login form: both fields required.
func Credentials(c models.Credentials) FieldErrors {
	errs := FieldErrors{}
	required(errs, "username", c.Username, "Username")
	if c.Password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
