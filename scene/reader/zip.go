package reader

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/Hexumicx/raytracing/asset"
	"github.com/Hexumicx/raytracing/log"
	"github.com/Hexumicx/raytracing/scene"
)

// The scene entry inside a zipped scene archive.
const DataFile = "scene.json"

type zipSceneReader struct {
	logger log.Logger
}

// Create a new zip scene reader.
func newZipSceneReader() *zipSceneReader {
	return &zipSceneReader{
		logger: log.New("zip reader"),
	}
}

// Read scene definition from zip file.
func (p *zipSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	p.logger.Noticef(`parsing zipped scene from "%s"`, sceneRes.Path())
	start := time.Now()

	// zip package requires a reader implementing ReaderAt. To work around
	// this requirement we read the entire zip file into memory and create
	// a reader from the bytes package that implements ReaderAt
	data, err := io.ReadAll(sceneRes)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("reader: %s: %w", sceneRes.Path(), err)
	}

	var sc *scene.Scene
	for _, f := range zr.File {
		if f.Name != DataFile {
			p.logger.Warningf("unknown file %s in scene zip file; skipping", f.Name)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		sc, err = decodeScene(f.Name, rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
	}

	if sc == nil {
		return nil, fmt.Errorf("reader: %s does not contain %s", sceneRes.Path(), DataFile)
	}

	p.logger.Noticef("loaded scene in %d ms", time.Since(start).Milliseconds())
	return sc, nil
}
