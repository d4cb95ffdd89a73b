package portal

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
)

// Picker selector de archivos: limita la cantidad y filtra por tipo de contenido.
type Picker struct {
	MaxFiles int
	Accept   string // prefijo del content type, p.ej. "image/"
}

// Selectores del portal.
var (
	ImagePicker = Picker{MaxFiles: 5, Accept: "image/"}
	LogoPicker  = Picker{MaxFiles: 1, Accept: "image/"}
)

// Rejection archivo descartado y el motivo.
type Rejection struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

const (
	reasonType     = "file-invalid-type"
	reasonTooMany  = "too-many-files"
	sniffMaxLength = 512
)

// Pick acepta en orden hasta MaxFiles archivos cuyo contenido detectado tenga el
// prefijo Accept. El content type aceptado es el detectado, no el declarado.
func (p Picker) Pick(files []dto.Attachment) (accepted []dto.Attachment, rejected []Rejection) {
	for _, f := range files {
		ct := sniff(f.Data)
		switch {
		case p.Accept != "" && !strings.HasPrefix(ct, p.Accept):
			rejected = append(rejected, Rejection{Filename: f.Filename, Reason: reasonType})
		case p.MaxFiles > 0 && len(accepted) >= p.MaxFiles:
			rejected = append(rejected, Rejection{Filename: f.Filename, Reason: reasonTooMany})
		default:
			f.ContentType = ct
			accepted = append(accepted, f)
		}
	}
	return accepted, rejected
}

func sniff(data []byte) string {
	if len(data) > sniffMaxLength {
		data = data[:sniffMaxLength]
	}
	return http.DetectContentType(data)
}

// LoadFile lee un archivo del disco como adjunto.
func LoadFile(path string) (dto.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dto.Attachment{}, fmt.Errorf("leer %s: %w", path, err)
	}
	return dto.Attachment{Filename: filepath.Base(path), ContentType: sniff(data), Data: data}, nil
}

// LoadFiles lee varios archivos; falla en el primero ilegible.
func LoadFiles(paths []string) ([]dto.Attachment, error) {
	out := make([]dto.Attachment, 0, len(paths))
	for _, p := range paths {
		a, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
