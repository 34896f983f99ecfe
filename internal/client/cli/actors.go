package cli

import (
	"context"
	"fmt"
)

// getConfirm is an indirection for the destructive-action prompt, swapped
// out in tests.
var getConfirm = GetConfirm

// ListActors fetches and renders the threat actor collection, keeping a
// local copy of the rows for optimistic removal on delete.
func (a *App) ListActors(ctx context.Context) error {
	rows, err := a.actors.List(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.actorRows = rows
	fmt.Fprintln(a.out, renderActorTable(a.actorRows))
	return nil
}

// ShowActor renders a read-only projection of one threat actor.
func (a *App) ShowActor(ctx context.Context, id string) error {
	actor, err := a.actors.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, renderActorDetail(actor))
	return nil
}

// AddActor runs the create form and submits the draft. Only a draft that
// passed local validation reaches the network.
func (a *App) AddActor(ctx context.Context) error {
	draft, ok, err := a.actorForm(a.reader, a.out, zeroActorDraft())
	if err != nil || !ok {
		return err
	}
	created, err := a.actors.Create(ctx, draft)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, okLine("Created threat actor "+created.ActorID))
	return nil
}

// EditActor seeds the form from the stored record, then submits the edited
// draft as a whole-record update.
func (a *App) EditActor(ctx context.Context, id string) error {
	actor, err := a.actors.Get(ctx, id)
	if err != nil {
		return a.fail(err)
	}
	draft, ok, err := a.actorForm(a.reader, a.out, actor.Draft())
	if err != nil || !ok {
		return err
	}
	updated, err := a.actors.Update(ctx, id, draft)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, okLine("Updated threat actor "+updated.ActorID))
	return nil
}

// DeleteActor asks for confirmation, deletes, and on success drops the row
// from the locally kept list without re-fetching the collection. On
// failure the local rows are left as they were, so the listing still
// matches the server.
func (a *App) DeleteActor(ctx context.Context, id string) error {
	confirmed, err := getConfirm(a.reader, "Are you sure you want to delete threat actor "+id+"?", a.out)
	if err != nil || !confirmed {
		return err
	}

	if err := a.actors.Delete(ctx, id); err != nil {
		return a.fail(err)
	}

	a.actorRows = removeActorRow(a.actorRows, id)
	fmt.Fprintln(a.out, okLine("Deleted threat actor "+id))
	fmt.Fprintln(a.out, renderActorTable(a.actorRows))
	return nil
}
