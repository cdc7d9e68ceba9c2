package writer

import (
	"fmt"
	"strings"

	"github.com/Hexumicx/raytracing/scene"
)

// The Writer interface is implemented by all scene writers.
type Writer interface {
	// Write scene definition
	Write(*scene.Scene) error
}

// Write scene to a .json or a zipped .zip file.
func WriteScene(sc *scene.Scene, filename string) error {
	var writer Writer
	switch {
	case strings.HasSuffix(filename, ".json"):
		writer = newJSONSceneWriter(filename)
	case strings.HasSuffix(filename, ".zip"):
		writer = newZipSceneWriter(filename)
	default:
		return fmt.Errorf("writer: unsupported file format for %q", filename)
	}
	return writer.Write(sc)
}
