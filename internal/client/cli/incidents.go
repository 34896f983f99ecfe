package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ctibook/internal/models"
)

func zeroActorDraft() models.ThreatActorDraft { return models.ThreatActorDraft{} }

func removeActorRow(rows []models.ThreatActor, id string) []models.ThreatActor {
	out := rows[:0]
	for _, r := range rows {
		if r.ActorID != id {
			out = append(out, r)
		}
	}
	return out
}

func removeIncidentRow(rows []models.IncidentLog, id string) []models.IncidentLog {
	out := rows[:0]
	for _, r := range rows {
		if r.LogID != id {
			out = append(out, r)
		}
	}
	return out
}

// ListIncidents fetches and renders the incident log collection.
func (a *App) ListIncidents(ctx context.Context) error {
	rows, err := a.incidents.List(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.incidentRows = rows
	fmt.Fprintln(a.out, renderIncidentTable(a.incidentRows))
	return nil
}

// ShowIncident renders a read-only projection of one incident log.
func (a *App) ShowIncident(ctx context.Context, id string) error {
	log, err := a.incidents.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, renderIncidentDetail(log))
	return nil
}

// AddIncident runs the create form and submits the draft.
func (a *App) AddIncident(ctx context.Context) error {
	draft, ok, err := a.incidentForm(a.reader, a.out, models.IncidentLogDraft{})
	if err != nil || !ok {
		return err
	}
	created, err := a.incidents.Create(ctx, draft)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, okLine("Created incident "+created.LogID))
	return nil
}

// EditIncident seeds the form from the stored record and submits the
// edited draft as a whole-record update.
func (a *App) EditIncident(ctx context.Context, id string) error {
	log, err := a.incidents.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	draft, ok, err := a.incidentForm(a.reader, a.out, log.Draft())
	if err != nil || !ok {
		return err
	}
	updated, err := a.incidents.Update(ctx, id, draft)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, okLine("Updated incident "+updated.LogID))
	return nil
}

// DeleteIncident mirrors DeleteActor: confirm, delete, drop the row from
// the local copy without a re-fetch.
func (a *App) DeleteIncident(ctx context.Context, id string) error {
	confirmed, err := getConfirm(a.reader, "Are you sure you want to delete incident "+id+"?", a.out)
	if err != nil || !confirmed {
		return err
	}

	if err := a.incidents.Delete(ctx, id); err != nil {
		return a.fail(err)
	}

	a.incidentRows = removeIncidentRow(a.incidentRows, id)
	fmt.Fprintln(a.out, okLine("Deleted incident "+id))
	fmt.Fprintln(a.out, renderIncidentTable(a.incidentRows))
	return nil
}
