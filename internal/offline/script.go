package offline

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"text/template"
)

//go:embed sw.js.tmpl
var scriptSource string

var scriptTemplate = template.Must(template.New("sw.js").Funcs(template.FuncMap{
	"json": func(v any) (string, error) {
		data, err := json.Marshal(v)
		return string(data), err
	},
}).Parse(scriptSource))

// Script renders the service worker for cfg. Values are emitted as JSON literals.
func Script(cfg Config) ([]byte, error) {
	cfg = cfg.withDefaults()
	var buf bytes.Buffer
	if err := scriptTemplate.Execute(&buf, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
