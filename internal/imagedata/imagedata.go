// Package imagedata turns image files into data URLs that can be stored
// inline with an idea.
package imagedata

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/kidpreneur-hub/internal/state"
)

// ErrNotDataURL is returned by Describe for values that are not base64
// data URLs.
var ErrNotDataURL = errors.New("not a base64 data URL")

// Extensions lists the file extensions offered by the image picker.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".svg"}

// LoadedMsg carries the result of an asynchronous image read.
type LoadedMsg struct {
	Ticket  state.ImageTicket
	DataURL string
	Err     error
}

// LoadCmd reads the ticket's file off the UI loop and reports back with a
// LoadedMsg. There is no cancellation; stale results are filtered by the
// receiver using the ticket.
func LoadCmd(ticket state.ImageTicket) tea.Cmd {
	return func() tea.Msg {
		dataURL, err := Load(ticket.Path)
		return LoadedMsg{Ticket: ticket, DataURL: dataURL, Err: err}
	}
}

// Load reads the file at path and encodes it as a data URL.
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	return Encode(f, filepath.Base(path))
}

// Encode reads all of r and returns "data:<mime>;base64,<payload>".
// The MIME type is sniffed from the content and falls back to the type
// registered for name's extension.
func Encode(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading image %s: %w", name, err)
	}

	return "data:" + mimeType(data, name) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func mimeType(data []byte, name string) string {
	sniffed := http.DetectContentType(data)
	if strings.HasPrefix(sniffed, "image/") {
		return sniffed
	}

	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		// TypeByExtension may append parameters, e.g. "; charset=utf-8".
		if i := strings.IndexByte(byExt, ';'); i >= 0 {
			byExt = strings.TrimSpace(byExt[:i])
		}
		return byExt
	}
	return sniffed
}

// Info describes an encoded image.
type Info struct {
	MIME string
	Size int
}

// Describe parses a data URL produced by Encode.
func Describe(dataURL string) (Info, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return Info{}, ErrNotDataURL
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Info{}, ErrNotDataURL
	}
	mediaType, isBase64 := strings.CutSuffix(header, ";base64")
	if !isBase64 {
		return Info{}, ErrNotDataURL
	}

	size := base64.StdEncoding.DecodedLen(len(payload)) - bytes.Count([]byte(payload[max(0, len(payload)-2):]), []byte("="))
	return Info{MIME: mediaType, Size: size}, nil
}
