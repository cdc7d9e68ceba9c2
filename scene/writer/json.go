package writer

import (
	"encoding/json"
	"io"
	"os"

	"github.com/Hexumicx/raytracing/log"
	"github.com/Hexumicx/raytracing/scene"
)

type jsonSceneWriter struct {
	logger    log.Logger
	sceneFile string
}

// Create a new json scene writer
func newJSONSceneWriter(sceneFile string) *jsonSceneWriter {
	return &jsonSceneWriter{
		logger:    log.New("json writer"),
		sceneFile: sceneFile,
	}
}

// Write scene definition to a json file.
func (w *jsonSceneWriter) Write(sc *scene.Scene) error {
	w.logger.Noticef("writing scene to %s", w.sceneFile)

	f, err := os.Create(w.sceneFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return encodeScene(f, sc)
}

func encodeScene(out io.Writer, sc *scene.Scene) error {
	desc, err := sc.Describe()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(desc)
}
