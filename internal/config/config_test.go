package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditor(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{name: "unset falls back to default", env: "", want: DefaultEditor},
		{name: "env wins", env: "nano", want: "nano"},
		{name: "path is kept verbatim", env: "/usr/local/bin/hx", want: "/usr/local/bin/hx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EditorEnvVar, tt.env)
			assert.Equal(t, tt.want, Editor())
		})
	}
}
