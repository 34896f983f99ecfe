package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dmitrijs2005/ctibook/internal/client/validate"
	"github.com/dmitrijs2005/ctibook/internal/models"
)

// cancelWord typed at any form prompt discards the form.
const cancelWord = "/cancel"

func printFieldErrors(w io.Writer, errs validate.FieldErrors) {
	for _, field := range []string{
		"name", "type", "description", "originCountry", "firstObserved", "lastActivity",
		"title", "date", "username", "email", "password",
	} {
		if msg, ok := errs[field]; ok {
			fmt.Fprintln(w, errorLine(msg))
		}
	}
}

// actorForm prompts for every threat actor field, seeded from 'seed' (zero
// for create mode, the fetched record for edit mode). It loops until the
// draft validates; entered values are re-offered on each round, so nothing
// the user typed is discarded. Returns ok=false when the user cancels.
func (a *App) actorForm(r *bufio.Reader, w io.Writer, seed models.ThreatActorDraft) (models.ThreatActorDraft, bool, error) {
	draft := seed
	for {
		fields := []struct {
			label string
			dst   *string
		}{
			{"Name", &draft.Name},
			{"Type", &draft.Type},
			{"Description", &draft.Description},
			{"Origin country", &draft.OriginCountry},
			{"First observed (YYYY-MM-DD)", &draft.FirstObserved},
			{"Last activity (YYYY-MM-DD)", &draft.LastActivity},
		}
		for _, f := range fields {
			value, err := GetField(r, f.label, *f.dst, w)
			if err != nil {
				return draft, false, err
			}
			if value == cancelWord {
				return draft, false, nil
			}
			*f.dst = value
		}

		errs := validate.ThreatActorDraft(draft)
		if errs == nil {
			return draft, true, nil
		}
		printFieldErrors(w, errs)
		fmt.Fprintln(w, mutedStyle.Render("Correct the fields above (Enter keeps the shown value, '"+cancelWord+"' discards the form)."))
	}
}

// incidentForm is the incident log counterpart of actorForm.
func (a *App) incidentForm(r *bufio.Reader, w io.Writer, seed models.IncidentLogDraft) (models.IncidentLogDraft, bool, error) {
	draft := seed
	for {
		fields := []struct {
			label string
			dst   *string
		}{
			{"Title", &draft.Title},
			{"Description", &draft.Description},
			{"Date (YYYY-MM-DD)", &draft.Date},
		}
		for _, f := range fields {
			value, err := GetField(r, f.label, *f.dst, w)
			if err != nil {
				return draft, false, err
			}
			if value == cancelWord {
				return draft, false, nil
			}
			*f.dst = value
		}

		errs := validate.IncidentLogDraft(draft)
		if errs == nil {
			return draft, true, nil
		}
		printFieldErrors(w, errs)
		fmt.Fprintln(w, mutedStyle.Render("Correct the fields above (Enter keeps the shown value, '"+cancelWord+"' discards the form)."))
	}
}
