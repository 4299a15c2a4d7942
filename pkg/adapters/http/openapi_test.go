package http

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The embedded document is the API's public contract; keep it valid.
func TestOpenAPISpecIsValid(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openAPISpec)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	assert.Equal(t, "automat API", doc.Info.Title)
	for _, path := range []string{"/machines", "/machines/{name}", "/machines/{name}/process", "/healthz"} {
		assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
	}
}
