package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-s", "secret", "-z", "x"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s", "secret"},
		},
		{
			name:         "equals form",
			args:         []string{"-config=alt.json", "-a", ":8000"},
			allowedFlags: []string{"-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-a", ":8000"},
			allowedFlags: []string{"-c", "-a"},
			want:         []string{"-c", "-a", ":8000"},
		},
		{
			name:         "repeated flag keeps order",
			args:         []string{"-o", "one", "-o", "two"},
			allowedFlags: []string{"-o"},
			want:         []string{"-o", "one", "-o", "two"},
		},
		{
			name:         "empty args",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "/etc/a.json", ConfigFile([]string{"-c", "/etc/a.json"}))
	assert.Equal(t, "/etc/b.json", ConfigFile([]string{"-config", "/etc/b.json", "-s", "x"}))
	assert.Equal(t, "/etc/2.json", ConfigFile([]string{"-c", "/etc/1.json", "-config=/etc/2.json"}))
	assert.Empty(t, ConfigFile([]string{"-x", "1"}))
}

func TestJsonConfigFlags_UsesOSArgs(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"testbin", "-c", "/path/short.json"}
	assert.Equal(t, "/path/short.json", JsonConfigFlags())
}
