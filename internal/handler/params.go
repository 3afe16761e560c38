package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

const maxBodyBytes = 1 << 20

var allMethods = []string{
	http.MethodConnect,
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	http.MethodPost,
	http.MethodPut,
	http.MethodTrace,
}

// bindFields decodes the body as a JSON object. Anything else, including a malformed
// body, yields an empty field set so that validation reports the first missing field.
func bindFields(c echo.Context) map[string]json.RawMessage {
	fields := map[string]json.RawMessage{}
	body := c.Request().Body
	if body == nil {
		return fields
	}
	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return fields
	}
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return map[string]json.RawMessage{}
	}
	return fields
}

// stringField returns the named field when it is a JSON string, nil otherwise.
func stringField(fields map[string]json.RawMessage, name string) *string {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

// singleQueryParam returns the value of a query parameter given exactly once.
func singleQueryParam(c echo.Context, name string) (string, bool) {
	values := c.QueryParams()[name]
	if len(values) != 1 {
		return "", false
	}
	return values[0], true
}

// rejectOtherMethods answers every method except allowed with 405 on path.
func rejectOtherMethods(g *echo.Group, path string, allowed string) {
	others := make([]string, 0, len(allMethods)-1)
	for _, m := range allMethods {
		if m != allowed {
			others = append(others, m)
		}
	}
	g.Match(others, path, func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderAllow, allowed)
		return Error(c, http.StatusMethodNotAllowed, "Method not allowed")
	})
}
