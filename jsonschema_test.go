package featstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	featstore "github.com/reoring/featstore"
	js "github.com/reoring/featstore/jsonschema"
)

func TestSchema_JSONSchema(t *testing.T) {
	s := featstore.NewSchema("Test.JS").
		Format(2).
		Int("n", 4).
		Float32("f", 1).
		Float64("d", .5).
		Bool("b", true).
		MustBuild()
	out, err := s.JSONSchema()
	require.NoError(t, err)
	require.Equal(t, js.Draft, out.SchemaURI)
	require.Equal(t, "object", out.Type)
	require.Equal(t, false, out.AdditionalProperties)
	require.Len(t, out.Properties, 6)

	require.Equal(t, "Test.JS", out.Properties["name"].Const)
	require.Equal(t, 2.0, *out.Properties["format"].Maximum)
	require.Equal(t, "int32", out.Properties["n"].Format)
	require.Equal(t, int64(4), out.Properties["n"].Default)
	require.Equal(t, "float", out.Properties["f"].Format)
	require.Equal(t, "double", out.Properties["d"].Format)
	require.Equal(t, 1, out.Properties["b"].Default)

	b, err := js.Marshal(out)
	require.NoError(t, err)
	require.Contains(t, string(b), `"additionalProperties": false`)
	require.Contains(t, string(b), `"const": "Test.JS"`)
}
