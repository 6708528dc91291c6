package export

import (
	"fmt"

	"server/internal/domain"
	"server/pkg/zip"
)

// Bundle packs the full brand kit into one zip archive: JSON data, marketing
// copy, the PDF kit, and the logo image when one exists.
func Bundle(snap domain.Snapshot, logo *domain.Logo) ([]byte, error) {
	base := FileBase(snap)

	jsonData, err := JSON(snap)
	if err != nil {
		return nil, err
	}
	var logoPNG []byte
	if logo != nil && logo.MIME == "image/png" {
		logoPNG = logo.Data
	}
	pdfData, err := PDF(snap, logoPNG)
	if err != nil {
		return nil, err
	}

	assets := []zip.Asset{
		{Filename: base + "_data.json", MIME: "application/json", Data: jsonData},
		{Filename: base + "_copy.txt", MIME: "text/plain", Data: []byte(Text(snap))},
		{Filename: base + "_brandkit.pdf", MIME: pdfContentType, Data: pdfData},
	}
	if logo != nil && len(logo.Data) > 0 {
		ext, err := extensionFor(logo.MIME)
		if err == nil {
			assets = append(assets, zip.Asset{
				Filename: base + "_logo" + ext,
				MIME:     logo.MIME,
				Data:     logo.Data,
			})
		}
	}
	return zip.Archive(assets)
}

func extensionFor(mime string) (string, error) {
	switch mime {
	case "image/png":
		return ".png", nil
	case "image/jpeg":
		return ".jpg", nil
	case "image/webp":
		return ".webp", nil
	case "image/gif":
		return ".gif", nil
	}
	return "", fmt.Errorf("export: no extension for %s", mime)
}
