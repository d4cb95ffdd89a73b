package docs

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"github.com/tidwall/gjson"
)

func TestReadDoc_Registrado(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(doc)))

	assert.Equal(t, "Vendor Portal BFF", gjson.Get(doc, "info.title").String())
	assert.Equal(t, "Iniciar sesión", gjson.Get(doc, `paths./login.post.summary`).String())
}

func TestSwaggerJSON_CoincideConElRegistro(t *testing.T) {
	raw, err := os.ReadFile("swagger.json")
	require.NoError(t, err)
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	file := gjson.ParseBytes(raw)
	registered := gjson.Parse(doc)
	file.Get("paths").ForEach(func(path, ops gjson.Result) bool {
		ops.ForEach(func(method, _ gjson.Result) bool {
			key := "paths." + gjson.Escape(path.String()) + "." + method.String() + ".summary"
			assert.Equal(t, file.Get(key).String(), registered.Get(key).String(), key)
			return true
		})
		return true
	})
	assert.Equal(t, len(file.Get("definitions").Map()), len(registered.Get("definitions").Map()))
}
