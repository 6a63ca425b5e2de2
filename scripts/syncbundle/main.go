// SPDX-License-Identifier: EPL-2.0

// Command syncbundle downloads a pinned wavesurfer.js build into the
// render package, replacing the committed copy.  Run it via go generate
// in the render package after bumping the pinned version.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const urlTemplate = "https://unpkg.com/wavesurfer.js@%s/dist/wavesurfer.min.js"

func main() {
	version := flag.String("version", "7.8.6", "wavesurfer.js version to fetch")
	out := flag.String("out", ".", "directory to write wavesurfer.min.js into")
	flag.Parse()

	if err := run(*version, *out); err != nil {
		fmt.Fprintln(os.Stderr, "syncbundle:", err)
		os.Exit(1)
	}
}

func run(version, dir string) error {
	url := fmt.Sprintf(urlTemplate, version)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s: %w", url, err)
	}
	if len(body) == 0 {
		return fmt.Errorf("fetching %s: empty body", url)
	}

	path := filepath.Join(dir, "wavesurfer.min.js")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Printf("wrote %s (%d bytes, wavesurfer.js %s)\n", path, len(body), version)
	return nil
}
