package invoker

import (
	"reflect"
	"testing"
)

func TestParseEmitMode(t *testing.T) {
	tests := []struct {
		input   string
		want    EmitMode
		wantErr bool
	}{
		{input: "overwrite", want: EmitOverwrite},
		{input: "new_file", want: EmitNewFile},
		{input: "stdout", want: EmitStdOut},
		{input: "diff", want: EmitDiff},
		{input: "", wantErr: true},
		{input: "Overwrite", wantErr: true},
		{input: "newfile", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEmitMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseEmitMode(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEmitMode(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseEmitMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewTarget(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		dirPath  string
		wantErr  bool
		wantFile string
		wantDir  string
	}{
		{name: "neither set defaults to current directory", wantDir: "./"},
		{name: "file only", filePath: "a.move", wantFile: "a.move"},
		{name: "dir only", dirPath: "sources", wantDir: "sources"},
		{name: "both set is rejected", filePath: "a.move", dirPath: "sources", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := NewTarget(tt.filePath, tt.dirPath)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewTarget succeeded, want mutual exclusion error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewTarget failed: %v", err)
			}

			path, isFile := target.IsFile()
			if tt.wantFile != "" {
				if !isFile || path != tt.wantFile {
					t.Errorf("target file = %q (isFile=%v), want %q", path, isFile, tt.wantFile)
				}
				return
			}
			if isFile {
				t.Fatalf("target unexpectedly a file: %q", path)
			}
			if got := target.Dir(); got != tt.wantDir {
				t.Errorf("target dir = %q, want %q", got, tt.wantDir)
			}
		})
	}
}

func TestParseOverrides(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    map[string]string
		wantErr bool
	}{
		{name: "empty", values: nil, want: map[string]string{}},
		{
			name:   "single pair",
			values: []string{"max_width=100"},
			want:   map[string]string{"max_width": "100"},
		},
		{
			name:   "repeated flag",
			values: []string{"max_width=100", "indent_size=2"},
			want:   map[string]string{"max_width": "100", "indent_size": "2"},
		},
		{
			name:   "comma-joined pairs in one value",
			values: []string{"max_width=100,indent_size=2"},
			want:   map[string]string{"max_width": "100", "indent_size": "2"},
		},
		{
			name:   "later occurrence of a key wins",
			values: []string{"max_width=100", "max_width=80"},
			want:   map[string]string{"max_width": "80"},
		},
		{
			name:   "empty value is kept",
			values: []string{"prefix="},
			want:   map[string]string{"prefix": ""},
		},
		{name: "missing equals", values: []string{"max_width"}, wantErr: true},
		{name: "empty key", values: []string{"=100"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOverrides(tt.values)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOverrides(%v) succeeded, want error", tt.values)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOverrides(%v) failed: %v", tt.values, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseOverrides(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
