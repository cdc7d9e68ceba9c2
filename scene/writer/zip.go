package writer

import (
	"archive/zip"
	"os"
	"time"

	"github.com/Hexumicx/raytracing/log"
	"github.com/Hexumicx/raytracing/scene"
	"github.com/Hexumicx/raytracing/scene/reader"
)

type zipSceneWriter struct {
	logger    log.Logger
	sceneFile string
}

// Create a new zip scene writer
func newZipSceneWriter(sceneFile string) *zipSceneWriter {
	return &zipSceneWriter{
		logger:    log.New("zip writer"),
		sceneFile: sceneFile,
	}
}

// Write scene definition to zip file.
func (w *zipSceneWriter) Write(sc *scene.Scene) error {
	w.logger.Noticef("writing compressed scene to %s", w.sceneFile)
	start := time.Now()

	zipFile, err := os.Create(w.sceneFile)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	zw := zip.NewWriter(zipFile)
	cw, err := zw.Create(reader.DataFile)
	if err != nil {
		return err
	}
	if err = encodeScene(cw, sc); err != nil {
		return err
	}
	if err = zw.Close(); err != nil {
		return err
	}

	w.logger.Noticef("compressed scene in %d ms", time.Since(start).Milliseconds())
	return nil
}
