package reader

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Hexumicx/raytracing/asset"
	"github.com/Hexumicx/raytracing/log"
	"github.com/Hexumicx/raytracing/scene"
)

type jsonSceneReader struct {
	logger log.Logger
}

// Create a new json scene reader.
func newJSONSceneReader() *jsonSceneReader {
	return &jsonSceneReader{
		logger: log.New("json reader"),
	}
}

// Read scene definition from a json resource.
func (p *jsonSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	p.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	sc, err := decodeScene(sceneRes.Path(), sceneRes)
	if err != nil {
		return nil, err
	}

	p.logger.Noticef("loaded scene with %d objects in %d ms", sc.World.Len(), time.Since(start).Milliseconds())
	return sc, nil
}

func decodeScene(name string, r io.Reader) (*scene.Scene, error) {
	var desc scene.Description
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("reader: failed to decode %s: %w", name, err)
	}

	sc, err := scene.FromDescription(&desc)
	if err != nil {
		return nil, fmt.Errorf("reader: %s: %w", name, err)
	}
	return sc, nil
}
