package invoker

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		req  FormatRequest
		want []string
	}{
		{
			name: "defaults format the current directory",
			req:  FormatRequest{},
			want: []string{"--emit=overwrite", "--dir-path=./"},
		},
		{
			name: "file target",
			req: FormatRequest{
				EmitMode: EmitOverwrite,
				Target:   FileTarget("sources/coin.move"),
			},
			want: []string{"--emit=overwrite", "--file-path=sources/coin.move"},
		},
		{
			name: "dir target",
			req: FormatRequest{
				EmitMode: EmitNewFile,
				Target:   DirTarget("sources"),
			},
			want: []string{"--emit=new_file", "--dir-path=sources"},
		},
		{
			name: "config path comes right after emit mode",
			req: FormatRequest{
				EmitMode:   EmitStdOut,
				ConfigPath: "conf/movefmt.toml",
			},
			want: []string{"--emit=stdout", "--config-path=conf/movefmt.toml", "--dir-path=./"},
		},
		{
			name: "verbose",
			req:  FormatRequest{Verbose: true},
			want: []string{"--emit=overwrite", "-v", "--dir-path=./"},
		},
		{
			name: "quiet",
			req:  FormatRequest{Quiet: true},
			want: []string{"--emit=overwrite", "-q", "--dir-path=./"},
		},
		{
			// Documented precedence: verbose silently wins over quiet.
			name: "verbose wins over simultaneous quiet",
			req:  FormatRequest{Verbose: true, Quiet: true},
			want: []string{"--emit=overwrite", "-v", "--dir-path=./"},
		},
		{
			name: "overrides are key-sorted and comma-joined",
			req: FormatRequest{
				Overrides: map[string]string{
					"max_width":   "100",
					"indent_size": "2",
				},
			},
			want: []string{"--emit=overwrite", "--config=indent_size=2,max_width=100", "--dir-path=./"},
		},
		{
			name: "empty overrides omit the config argument",
			req:  FormatRequest{Overrides: map[string]string{}},
			want: []string{"--emit=overwrite", "--dir-path=./"},
		},
		{
			name: "diff of a single file with an override",
			req: FormatRequest{
				EmitMode:  EmitDiff,
				Target:    FileTarget("a.move"),
				Overrides: map[string]string{"max_width": "100"},
			},
			want: []string{"--emit=diff", "--config=max_width=100", "--file-path=a.move"},
		},
		{
			name: "everything at once",
			req: FormatRequest{
				EmitMode:   EmitDiff,
				Target:     DirTarget("sources"),
				ConfigPath: "movefmt.toml",
				Overrides:  map[string]string{"max_width": "120"},
				Verbose:    true,
			},
			want: []string{
				"--emit=diff",
				"--config-path=movefmt.toml",
				"-v",
				"--config=max_width=120",
				"--dir-path=sources",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildArgs(tt.req)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildArgsEmitModeAlwaysFirst(t *testing.T) {
	modes := []EmitMode{EmitOverwrite, EmitNewFile, EmitStdOut, EmitDiff}
	encodings := []string{"overwrite", "new_file", "stdout", "diff"}

	for i, mode := range modes {
		args := BuildArgs(FormatRequest{EmitMode: mode, Verbose: true, ConfigPath: "x.toml"})

		if len(args) == 0 {
			t.Fatalf("mode %v: no arguments produced", mode)
		}
		if want := "--emit=" + encodings[i]; args[0] != want {
			t.Errorf("mode %v: first argument = %q, want %q", mode, args[0], want)
		}

		emitCount := 0
		for _, a := range args {
			if strings.HasPrefix(a, "--emit=") {
				emitCount++
			}
		}
		if emitCount != 1 {
			t.Errorf("mode %v: %d --emit arguments, want exactly 1", mode, emitCount)
		}
	}
}

func TestBuildArgsTargetExclusivity(t *testing.T) {
	fileArgs := BuildArgs(FormatRequest{Target: FileTarget("a.move")})
	for _, a := range fileArgs {
		if strings.HasPrefix(a, "--dir-path=") {
			t.Errorf("file target emitted %q", a)
		}
	}

	dirArgs := BuildArgs(FormatRequest{Target: DirTarget("sources")})
	for _, a := range dirArgs {
		if strings.HasPrefix(a, "--file-path=") {
			t.Errorf("dir target emitted %q", a)
		}
	}
}
