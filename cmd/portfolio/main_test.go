package main

import "testing"

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		command string
		restLen int
	}{
		{name: "no args defaults to serve", args: nil, command: "serve", restLen: 0},
		{name: "bare subcommand", args: []string{"migrate"}, command: "migrate", restLen: 0},
		{name: "flags after subcommand", args: []string{"serve", "-config", "x.yaml"}, command: "serve", restLen: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, rest := splitCommand(tt.args)
			if command != tt.command {
				t.Errorf("command = %q, want %q", command, tt.command)
			}
			if len(rest) != tt.restLen {
				t.Errorf("rest = %v, want %d args", rest, tt.restLen)
			}
		})
	}
}
