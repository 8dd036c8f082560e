package assets

import _ "embed"

// LevelPack is the built-in level pack in YAML form.
//
//go:embed levels.yaml
var LevelPack []byte
