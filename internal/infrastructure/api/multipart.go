package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
)

// form acumula un cuerpo multipart/form-data. El primer error se conserva
// y lo devuelve finish, así los llamadores encadenan sin chequear cada paso.
type form struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func newForm() *form {
	f := &form{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

func (f *form) field(name, value string) {
	if f.err != nil {
		return
	}
	f.err = f.w.WriteField(name, value)
}

// jsonField serializa v como string JSON (objetos anidados del formulario).
func (f *form) jsonField(name string, v any) {
	if f.err != nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		f.err = fmt.Errorf("multipart: serializar %s: %w", name, err)
		return
	}
	f.field(name, string(b))
}

// rawJSONField agrega un json.RawMessage ya serializado; vacío = se omite.
func (f *form) rawJSONField(name string, raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	f.field(name, string(raw))
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// file agrega una parte binaria conservando el content type del archivo.
func (f *form) file(fieldName string, a dto.Attachment) {
	if f.err != nil {
		return
	}
	ct := a.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(fieldName), quoteEscaper.Replace(a.Filename)))
	h.Set("Content-Type", ct)
	part, err := f.w.CreatePart(h)
	if err != nil {
		f.err = err
		return
	}
	_, f.err = part.Write(a.Data)
}

// finish cierra el writer y devuelve cuerpo y content type con boundary.
func (f *form) finish() (io.Reader, string, error) {
	if f.err != nil {
		return nil, "", fmt.Errorf("multipart: %w", f.err)
	}
	if err := f.w.Close(); err != nil {
		return nil, "", fmt.Errorf("multipart: cerrar: %w", err)
	}
	return &f.buf, f.w.FormDataContentType(), nil
}
