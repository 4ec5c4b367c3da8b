package mechfile

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// tomlFile is the top-level schema of a .toml mechanism file.
type tomlFile struct {
	Ground     string          `toml:"ground"`
	Frames     []tomlFrame     `toml:"frame"`
	Components []tomlComponent `toml:"component"`
}

type tomlFrame struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

type tomlComponent struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Source string `toml:"source"`
	Target string `toml:"target"`
}

// ParseTOML decodes a TOML mechanism definition. Keys outside the schema are rejected.
func ParseTOML(src []byte, filename string) (*Definition, error) {
	var raw tomlFile
	md, err := toml.Decode(string(src), &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSyntax, filename, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return nil, fmt.Errorf("%w: %s: %s", ErrUnknownKey, filename, strings.Join(keys, ", "))
	}

	def := &Definition{Ground: raw.Ground, Filename: filename}
	for _, f := range raw.Frames {
		def.Frames = append(def.Frames, FrameSpec(f))
	}
	for _, c := range raw.Components {
		def.Components = append(def.Components, ComponentSpec(c))
	}

	return def, nil
}
