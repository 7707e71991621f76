// services/logo.go
package services

import (
	"io"
	"net/http"
	"time"

	"github.com/h2non/filetype"

	"swiftinvoice-backend/utils"
)

const logoFetchTimeout = 5 * time.Second

// Logos larger than this are ignored rather than embedded.
const maxLogoFetchBytes = 10 << 20

// FetchLogo retrieves the invoice's logo image with a single bounded-timeout
// GET. Every failure mode (transport error, bad status, oversized or
// non-image body) is non-fatal: it is logged and nil is returned, and the
// document is generated without the image.
func FetchLogo(url string) []byte {
	return fetchLogo(url, &http.Client{Timeout: logoFetchTimeout})
}

func fetchLogo(url string, client *http.Client) []byte {
	if url == "" {
		return nil
	}

	resp, err := client.Get(url)
	if err != nil {
		utils.Log.Warnw("logo fetch failed", "url", url, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.Log.Warnw("logo fetch returned non-OK status", "url", url, "status", resp.StatusCode)
		return nil
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoFetchBytes))
	if err != nil {
		utils.Log.Warnw("logo read failed", "url", url, "error", err)
		return nil
	}

	if !filetype.IsImage(data) {
		utils.Log.Warnw("logo is not an image, skipping", "url", url)
		return nil
	}

	return data
}
