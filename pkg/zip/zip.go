// Package zip builds in-memory archives for downloadable bundles.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Asset is one file inside an archive.
type Asset struct {
	Filename string
	MIME     string
	Data     []byte
}

// Archive writes the assets into a zip archive and returns its bytes. Assets
// with an empty filename or no data are skipped.
func Archive(assets []Asset) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, asset := range assets {
		if asset.Filename == "" || len(asset.Data) == 0 {
			continue
		}
		w, err := zw.Create(asset.Filename)
		if err != nil {
			return nil, fmt.Errorf("zip: create entry %s: %w", asset.Filename, err)
		}
		if _, err := w.Write(asset.Data); err != nil {
			return nil, fmt.Errorf("zip: write entry %s: %w", asset.Filename, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: close archive: %w", err)
	}
	return buf.Bytes(), nil
}
