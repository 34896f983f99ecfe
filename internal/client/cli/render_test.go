package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/ctibook/internal/models"
)

func TestPad(t *testing.T) {
	assert.Equal(t, "abc   ", pad("abc", 6))
	assert.Equal(t, "abcde…", pad("abcdefgh", 6))
	assert.Equal(t, "abc", pad("abc", 3))
}

func TestRenderActorTable_OneRowPerActor(t *testing.T) {
	out := renderActorTable(sampleActors())
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4) // header + 3 rows
	assert.Contains(t, lines[0], "LAST ACTIVITY")
}

func TestRenderIncidentTable_Empty(t *testing.T) {
	assert.Contains(t, renderIncidentTable(nil), "No incidents recorded.")
}

func TestRenderIncidentDetail(t *testing.T) {
	out := renderIncidentDetail(models.IncidentLog{
		LogID: "i-1", Title: "Phishing wave", Date: "2025-06-01", Description: "spearphishing",
	})
	for _, want := range []string{"i-1", "Phishing wave", "2025-06-01", "spearphishing"} {
		assert.Contains(t, out, want)
	}
}
