package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/followball/config"
)

// SceneFile is the bundled scene, used when no -config flag is given.
const SceneFile = "main.config.yaml"

//go:embed main.config.yaml
var sceneFS embed.FS

// SceneFS exposes the embedded scene files.
func SceneFS() fs.FS {
	return sceneFS
}

// LoadDefaultScene parses the bundled scene.
func LoadDefaultScene() (*config.Scene, error) {
	return config.Load(sceneFS, SceneFile)
}
