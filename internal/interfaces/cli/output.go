package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validFormat(f string) bool {
	return f == formatTable || f == formatJSON || f == formatYAML
}

// table filas ya formateadas para la salida tabular.
type table struct {
	header []string
	rows   [][]string
}

// render escribe v en el formato pedido. tbl se usa solo en formato tabla; si es
// nil, la tabla cae a YAML.
func (a *App) render(v any, tbl func() table) error {
	switch {
	case a.format == formatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case a.format == formatYAML || tbl == nil:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return writeTable(a.out, tbl())
}

func writeTable(w io.Writer, t table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(t.header) > 0 {
		fmt.Fprintln(tw, strings.Join(t.header, "\t"))
	}
	for _, r := range t.rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}

// keyValues tabla de dos columnas sin encabezado.
func keyValues(pairs ...string) table {
	t := table{}
	for i := 0; i+1 < len(pairs); i += 2 {
		t.rows = append(t.rows, []string{pairs[i] + ":", pairs[i+1]})
	}
	return t
}
