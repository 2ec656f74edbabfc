package shader

import (
	"strings"
	"testing"
)

func TestSourceEmbedded(t *testing.T) {
	tests := []struct {
		name     string
		uniforms []string
	}{
		{"mesh", []string{"uViewProj", "uModel", "uNormalMatrix", "uEmissiveIntensity", "uDoubleSided", "uLightDir"}},
		{"line", []string{"uViewProj", "uModel", "uColor"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs, fs, err := Source(tt.name)
			if err != nil {
				t.Fatalf("Source: %v", err)
			}
			for _, src := range []string{vs, fs} {
				if !strings.HasPrefix(src, "#version 410 core") {
					t.Errorf("source does not start with the 4.1 core directive")
				}
			}
			both := vs + fs
			for _, u := range tt.uniforms {
				if !strings.Contains(both, "uniform") || !strings.Contains(both, u) {
					t.Errorf("uniform %s not declared", u)
				}
			}
		})
	}
}

func TestSourceMissing(t *testing.T) {
	if _, _, err := Source("terrain"); err == nil {
		t.Error("expected error for unknown shader")
	}
}
