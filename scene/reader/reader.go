package reader

import (
	"fmt"
	"strings"

	"github.com/Hexumicx/raytracing/asset"
	"github.com/Hexumicx/raytracing/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read scene from a local file or an http(s) URL.
func ReadScene(pathToScene string) (*scene.Scene, error) {
	res, err := asset.NewResource(pathToScene, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	// Select reader based on file extension
	var reader Reader
	switch {
	case strings.HasSuffix(res.RemotePath(), ".json"):
		reader = newJSONSceneReader()
	case strings.HasSuffix(res.RemotePath(), ".zip"):
		reader = newZipSceneReader()
	default:
		return nil, fmt.Errorf("reader: unsupported file format for %q", pathToScene)
	}
	return reader.Read(res)
}
