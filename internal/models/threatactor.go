// Package models defines the wire-level record types shared by the client
// and the reference backend. Records are plain JSON documents; the server
// owns identifiers, everything else is user-supplied.
package models

// DateLayout is the calendar-date format used for all date fields
// (firstObserved, lastActivity, incident date).
const DateLayout = "2006-01-02"

// ThreatActor is a tracked adversary record. ActorID is assigned by the
// server on creation and never changes afterwards.
type ThreatActor struct {
	ActorID       string `json:"actorId"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Description   string `json:"description"`
	OriginCountry string `json:"originCountry"`
	FirstObserved string `json:"firstObserved"`
	LastActivity  string `json:"lastActivity"`
}

// ThreatActorDraft is the client-owned part of a ThreatActor: everything
// except the identifier. It is the body of both create (POST) and update
// (PUT) calls; a PUT replaces the whole record, so fields left empty here
// come back empty, not preserved.
type ThreatActorDraft struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Description   string `json:"description"`
	OriginCountry string `json:"originCountry"`
	FirstObserved string `json:"firstObserved"`
	LastActivity  string `json:"lastActivity"`
}

// Draft returns the mutable fields of the record, for seeding an edit form.
func (a ThreatActor) Draft() ThreatActorDraft {
	return ThreatActorDraft{
		Name:          a.Name,
		Type:          a.Type,
		Description:   a.Description,
		OriginCountry: a.OriginCountry,
		FirstObserved: a.FirstObserved,
		LastActivity:  a.LastActivity,
	}
}
