package flagx

import (
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
			args:         []string{"-c", "diary.json", "-d", "diary.db"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "diary.json"},
		},
		{
			name:         "equals form",
			args:         []string{"-config=alt.json", "-d", "diary.db"},
			allowedFlags: []string{"-c", "-config"},
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
			name:         "next dash-starting token is not a value",
			args:         []string{"-s", "-d", "x.db"},
			allowedFlags: []string{"-s", "-d"},
			want:         []string{"-s", "-d", "x.db"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-l", "debug", "-l", "warn"},
			allowedFlags: []string{"-l"},
			want:         []string{"-l", "debug", "-l", "warn"},
		},
		{
			name:         "empty args",
			args:         []string{},
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

func TestStringFlag(t *testing.T) {
	t.Run("short alias", func(t *testing.T) {
		assert.Equal(t, "/tmp/a.json", StringFlag([]string{"-c", "/tmp/a.json"}, "c", "config"))
	})

	t.Run("long alias with equals", func(t *testing.T) {
		assert.Equal(t, "/tmp/b.json", StringFlag([]string{"-config=/tmp/b.json"}, "c", "config"))
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		args := []string{"-c", "/tmp/1.json", "--config", "/tmp/2.json"}
		assert.Equal(t, "/tmp/2.json", StringFlag(args, "c", "config"))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Empty(t, StringFlag([]string{"-d", "x.db"}, "c", "config"))
	})
}
