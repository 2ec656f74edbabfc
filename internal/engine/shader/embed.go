package shader

import (
	"embed"
	"fmt"
)

//go:embed glsl/*.vert glsl/*.frag
var sources embed.FS

// Source returns the embedded vertex and fragment source for name.
func Source(name string) (vertex, fragment string, err error) {
	vs, err := sources.ReadFile("glsl/" + name + ".vert")
	if err != nil {
		return "", "", fmt.Errorf("shader %s: %w", name, err)
	}
	fs, err := sources.ReadFile("glsl/" + name + ".frag")
	if err != nil {
		return "", "", fmt.Errorf("shader %s: %w", name, err)
	}
	return string(vs), string(fs), nil
}
