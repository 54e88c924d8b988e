package binding_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	featstore "github.com/reoring/featstore"
	"github.com/reoring/featstore/binding"
	"github.com/reoring/featstore/codec"
)

var testSchema = featstore.NewSchema("Test.Binding").
	Int("count", 4).
	Float32("scale", 1.25).
	Float64("sigma", 2).
	Bool("upright", false).
	Text("label", "plain").
	MustBuild()

func TestCreate_DefaultsAndOverrides(t *testing.T) {
	b, err := binding.Create(testSchema,
		binding.WithParam("count", featstore.Int(7)),
		binding.WithParam("scale", featstore.Float(0.1)),
	)
	require.NoError(t, err)
	require.Equal(t, "Test.Binding", b.Name())
	require.EqualValues(t, 7, b.Int("count"))
	require.Equal(t, float32(0.1), b.Float32("scale"))
	require.Equal(t, 2.0, b.Float("sigma"))
	require.False(t, b.Bool("upright"))
	require.Equal(t, "plain", b.Text("label"))
}

func TestCreate_Rejects(t *testing.T) {
	_, err := binding.Create(testSchema, binding.WithParam("cnt", featstore.Int(1)))
	require.ErrorIs(t, err, featstore.ErrUnknownField)

	_, err = binding.Create(testSchema, binding.WithParam("count", featstore.Text("1")))
	require.ErrorIs(t, err, featstore.ErrTypeMismatch)

	_, err = binding.Create(nil)
	require.Error(t, err)
	require.Panics(t, func() { binding.MustCreate(nil) })
}

func TestGetters_PanicOnProgrammingErrors(t *testing.T) {
	b := binding.MustCreate(testSchema)
	require.Panics(t, func() { b.Int("missing") })
	require.Panics(t, func() { b.Int("scale") })
	require.Panics(t, func() { b.MustSet("count", featstore.Bool(true)) })
}

func TestSetAndReset(t *testing.T) {
	b := binding.MustCreate(testSchema)
	snap := b.Snapshot()
	require.NoError(t, b.Set("count", featstore.Int(9)))
	require.EqualValues(t, 9, b.Int("count"))

	v, _ := snap.Get("count")
	require.EqualValues(t, 4, v.Int())

	b.Reset()
	require.True(t, b.Snapshot().Equal(testSchema.Defaults()))
}

func TestWriteRead_EveryExtension(t *testing.T) {
	dir := t.TempDir()
	src := binding.MustCreate(testSchema,
		binding.WithParam("count", featstore.Int(-3)),
		binding.WithParam("upright", featstore.Bool(true)),
		binding.WithParam("label", featstore.Text("two words")),
	)
	for _, name := range []string{"p.xml", "p.yml", "p.yaml", "p.json", "p.xml.gz", "p.yml.gz"} {
		path := filepath.Join(dir, name)
		require.NoError(t, src.Write(path), name)

		dst := binding.MustCreate(testSchema)
		require.NoError(t, dst.Read(path), name)
		require.True(t, src.Snapshot().Equal(dst.Snapshot()), name)
	}
}

func TestRead_MissingFieldsKeepPriorValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	require.NoError(t, os.WriteFile(path, []byte("%YAML:1.0\n---\nname: \"Test.Binding\"\nsigma: 3.\n"), 0o644))

	b := binding.MustCreate(testSchema)
	b.MustSet("count", featstore.Int(11))
	require.NoError(t, b.Read(path))
	require.Equal(t, 3.0, b.Float("sigma"))
	require.EqualValues(t, 11, b.Int("count"))
}

func TestRead_FailureLeavesStateUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("%YAML:1.0\n---\nsigma: 3.\ncount: many\n"), 0o644))

	b := binding.MustCreate(testSchema)
	before := b.Snapshot()
	err := b.Read(path)
	require.ErrorIs(t, err, featstore.ErrTypeMismatch)
	require.True(t, before.Equal(b.Snapshot()))
}

func TestRead_FileSystemErrorsPassThrough(t *testing.T) {
	b := binding.MustCreate(testSchema)
	err := b.Read(filepath.Join(t.TempDir(), "absent.xml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	err = b.Read("params.ini")
	require.ErrorIs(t, err, codec.ErrUnsupportedExtension)

	err = b.Write(filepath.Join(t.TempDir(), "no", "such", "dir.xml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStreams(t *testing.T) {
	src := binding.MustCreate(testSchema, binding.WithEncodeOpt(featstore.EncodeOpt{FloatStyle: featstore.FloatCompact}))
	var buf bytes.Buffer
	require.NoError(t, src.WriteStream(&buf, codec.XML()))
	require.Contains(t, buf.String(), "<scale>1.25</scale>\n")
	require.Contains(t, buf.String(), "<label>plain</label>\n")

	dst := binding.MustCreate(testSchema, binding.WithParam("count", featstore.Int(0)))
	require.NoError(t, dst.ReadStream(&buf, codec.XML()))
	require.EqualValues(t, 4, dst.Int("count"))
}

func TestReadStream_MaxBytes(t *testing.T) {
	b := binding.MustCreate(testSchema, binding.WithParseOpt(featstore.ParseOpt{MaxBytes: 8}))
	err := b.ReadStream(bytes.NewBufferString("%YAML:1.0\n---\ncount: 1\n"), codec.YAML())
	iss, ok := featstore.AsIssues(err)
	require.True(t, ok)
	require.True(t, iss.HasCode(featstore.CodeTooBig))
}

func TestLogging(t *testing.T) {
	var logs bytes.Buffer
	b := binding.MustCreate(testSchema,
		binding.WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel)),
		binding.WithParseOpt(featstore.ParseOpt{Unknown: featstore.UnknownStrip}),
	)
	require.NoError(t, b.ReadStream(bytes.NewBufferString("%YAML:1.0\ncount: 2\nextra: 1\n"), codec.YAML()))

	out := logs.String()
	require.Contains(t, out, `"component":"binding"`)
	require.Contains(t, out, `"variant":"Test.Binding"`)
	require.Contains(t, out, `"fields":["count"]`)
	require.Contains(t, out, `"code":"unknown_field"`)
}
