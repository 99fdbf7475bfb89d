// Package export writes a finished canvas to disk.
package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/kass/go-danger-map/pkg/render"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Fixed artifact names
const (
	HTMLFileName    = "index.html"
	GeoJSONFileName = "index.geojson"
)

// Exporter writes maps into Dir, overwriting previous output
type Exporter struct {
	Dir     string
	Title   string
	GeoJSON bool
}

// Paths lists the files written by one export
type Paths struct {
	HTML    string
	GeoJSON string
}

// Export renders the canvas and writes index.html (and index.geojson
// when enabled). All rendering happens before the first write.
func (e Exporter) Export(c *render.Canvas) (Paths, error) {
	var paths Paths

	var page bytes.Buffer
	if err := (render.HTMLRenderer{Title: e.Title}).Render(&page, c); err != nil {
		return paths, err
	}

	var features bytes.Buffer
	if e.GeoJSON {
		if err := (render.GeoJSONRenderer{}).Render(&features, c); err != nil {
			return paths, err
		}
	}

	paths.HTML = filepath.Join(e.Dir, HTMLFileName)
	if err := writeFile(paths.HTML, page.Bytes()); err != nil {
		return Paths{}, err
	}

	if e.GeoJSON {
		paths.GeoJSON = filepath.Join(e.Dir, GeoJSONFileName)
		if err := writeFile(paths.GeoJSON, features.Bytes()); err != nil {
			return Paths{}, err
		}
	}

	zap.L().Debug("map exported",
		zap.String("html", paths.HTML),
		zap.String("geojson", paths.GeoJSON),
		zap.Int("bytes", page.Len()),
	)

	return paths, nil
}

func writeFile(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}

// ScriptDir returns the directory containing the running executable.
// A binary under the system temp dir (as built by go run) has no
// lasting home, so the working directory is used instead.
func ScriptDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", eris.Wrap(err, "export: locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	tmp := os.TempDir()
	if resolved, err := filepath.EvalSymlinks(tmp); err == nil {
		tmp = resolved
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", eris.Wrap(err, "export: working directory")
	}

	return outputDir(filepath.Dir(exe), tmp, wd), nil
}

func outputDir(exeDir, tmpDir, workDir string) string {
	if within(exeDir, tmpDir) {
		zap.L().Debug("executable in temp dir, writing to working directory",
			zap.String("executable_dir", exeDir),
			zap.String("dir", workDir),
		)
		return workDir
	}
	return exeDir
}

func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
