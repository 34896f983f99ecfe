package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with value",
			args:    []string{"-a", "http://localhost:9090", "-x", "noise"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:9090"},
		},
		{
			name:    "keeps equals form",
			args:    []string{"-a=http://localhost:9090", "-x=other"},
			allowed: []string{"-a"},
			want:    []string{"-a=http://localhost:9090"},
		},
		{
			name:    "flag followed by another flag has no value",
			args:    []string{"-a", "-t", "30"},
			allowed: []string{"-a", "-t"},
			want:    []string{"-a", "-t", "30"},
		},
		{
			name:    "drops everything when nothing allowed",
			args:    []string{"-a", "x", "-b", "y"},
			allowed: nil,
			want:    []string{},
		},
		{
			name:    "multiple allowed flags",
			args:    []string{"-c", "cfg.json", "-a", "url", "-t", "5"},
			allowed: []string{"-a", "-t"},
			want:    []string{"-a", "url", "-t", "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJSONConfigPath(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"app"}
	assert.Equal(t, "", JSONConfigPath())

	os.Args = []string{"app", "-c", "/tmp/cfg.json", "-a", "http://x"}
	assert.Equal(t, "/tmp/cfg.json", JSONConfigPath())

	os.Args = []string{"app", "-config=/etc/ctibook.json"}
	assert.Equal(t, "/etc/ctibook.json", JSONConfigPath())
}
