package titanic

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// rawDatasetText fetches the complete manifest text from either a URL or a
// local file. The parser only ever sees the full text; how the bytes
// arrive is this file's concern alone.
func rawDatasetText(source string, isLocalFile bool) (string, error) {
	var b []byte
	var err error

	if isLocalFile {
		b, err = os.ReadFile(source)
		if err != nil {
			return "", fmt.Errorf("error reading local dataset file: %w", err)
		}
	} else {
		resp, err := http.Get(source)
		if err != nil {
			return "", fmt.Errorf("error downloading dataset: %w", err)
		}
		defer resp.Body.Close() // nolint

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("error downloading dataset: unexpected status %d", resp.StatusCode)
		}

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("error reading dataset response: %w", err)
		}
	}

	return string(b), nil
}
