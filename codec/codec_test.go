package codec_test

import (
	"math"
	"strings"
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/require"

	featstore "github.com/reoring/featstore"
	"github.com/reoring/featstore/codec"
	"github.com/reoring/featstore/features2d"
)

var strict = featstore.DefaultParseOpt()

func decode(t *testing.T, c featstore.Codec, s *featstore.Schema, in string) featstore.Decoded[featstore.Document] {
	t.Helper()
	dec, err := c.Decode([]byte(in), s, strict)
	require.NoError(t, err)
	return dec
}

func get(t *testing.T, d featstore.Document, name string) featstore.Value {
	t.Helper()
	v, ok := d.Get(name)
	require.True(t, ok, name)
	return v
}

func TestEncode_BRISKDefaults(t *testing.T) {
	doc := features2d.BRISKSchema.Defaults()

	b, err := codec.XML().Encode(doc, featstore.EncodeOpt{})
	require.NoError(t, err)
	autogold.Expect("<?xml version=\"1.0\"?>\n<opencv_storage>\n<name>Feature2D.BRISK</name>\n<threshold>30</threshold>\n<octaves>3</octaves>\n<patternScale>1.</patternScale>\n</opencv_storage>\n").Equal(t, string(b))

	b, err = codec.YAML().Encode(doc, featstore.EncodeOpt{})
	require.NoError(t, err)
	autogold.Expect("%YAML:1.0\n---\nname: \"Feature2D.BRISK\"\nthreshold: 30\noctaves: 3\npatternScale: 1.\n").Equal(t, string(b))

	b, err = codec.JSON().Encode(doc, featstore.EncodeOpt{})
	require.NoError(t, err)
	autogold.Expect("{\n    \"name\": \"Feature2D.BRISK\",\n    \"threshold\": 30,\n    \"octaves\": 3,\n    \"patternScale\": 1.0\n}\n").Equal(t, string(b))
}

func TestEncode_FormatVersionPrecedesName(t *testing.T) {
	b, err := codec.YAML().Encode(features2d.AKAZESchema.Defaults(), featstore.EncodeOpt{})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(b), "%YAML:1.0\n---\nformat: 3\nname: \"Feature2D.AKAZE\"\n"))
}

func TestEncode_CompactFloats(t *testing.T) {
	doc := features2d.MSERSchema.Defaults()
	b, err := codec.YAML().Encode(doc, featstore.EncodeOpt{FloatStyle: featstore.FloatCompact})
	require.NoError(t, err)
	require.Contains(t, string(b), "maxVariation: 0.25\n")
	require.Contains(t, string(b), "minMargin: 0.003\n")

	akaze := features2d.AKAZESchema.Defaults()
	b, err = codec.XML().Encode(akaze, featstore.EncodeOpt{FloatStyle: featstore.FloatCompact})
	require.NoError(t, err)
	require.Contains(t, string(b), "<threshold>0.001</threshold>\n")
}

func TestEncode_NonFinite(t *testing.T) {
	doc, err := features2d.LATCHSchema.Defaults().Set("sigma", featstore.Float(math.Inf(-1)))
	require.NoError(t, err)

	b, err := codec.YAML().Encode(doc, featstore.EncodeOpt{})
	require.NoError(t, err)
	require.Contains(t, string(b), "sigma: -.Inf\n")

	back := decode(t, codec.YAML(), features2d.LATCHSchema, string(b))
	require.True(t, math.IsInf(get(t, back.Value, "sigma").Float(), -1))

	_, err = codec.JSON().Encode(doc, featstore.EncodeOpt{})
	require.Error(t, err)
}

func TestEncode_ZeroDocument(t *testing.T) {
	_, err := codec.XML().Encode(featstore.Document{}, featstore.EncodeOpt{})
	require.Error(t, err)
}

func TestDecode_AKAZEMarkup(t *testing.T) {
	in := "<?xml version=\"1.0\"?>\n<opencv_storage>\n<format>3</format>\n<name>Feature2D.AKAZE</name>\n<descriptor>4</descriptor>\n<descriptor_channels>2</descriptor_channels>\n<descriptor_size>32</descriptor_size>\n<threshold>0.002</threshold>\n<octaves>3</octaves>\n<sublevels>5</sublevels>\n<diffusivity>2</diffusivity>\n</opencv_storage>\n"
	dec := decode(t, codec.XML(), features2d.AKAZESchema, in)
	d := dec.Value
	require.EqualValues(t, 4, get(t, d, "descriptor").Int())
	require.EqualValues(t, 2, get(t, d, "descriptor_channels").Int())
	require.EqualValues(t, 32, get(t, d, "descriptor_size").Int())
	require.Equal(t, float32(0.002), get(t, d, "threshold").Float32())
	require.EqualValues(t, 3, get(t, d, "octaves").Int())
	require.EqualValues(t, 5, get(t, d, "sublevels").Int())
	require.EqualValues(t, 2, get(t, d, "diffusivity").Int())
	require.Len(t, dec.Presence.SeenFields(), 7)
	require.Empty(t, dec.Warnings)
}

func TestDecode_MSERBlockForms(t *testing.T) {
	in := "%YAML:1.0\n---\nname: \"Feature2D.MSER\"\ndelta: 6\nminArea: 62\nmaxArea: 14402\nmaxVariation: .26\nminDiversity: .3\nmaxEvolution: 201\nareaThreshold: 1.02\nminMargin: 3.0e-3\nedgeBlurSize: 3\npass2Only: 1\n"
	d := decode(t, codec.YAML(), features2d.MSERSchema, in).Value
	require.Equal(t, .26, get(t, d, "maxVariation").Float())
	require.Equal(t, .3, get(t, d, "minDiversity").Float())
	require.Equal(t, 1.02, get(t, d, "areaThreshold").Float())
	require.Equal(t, 0.003, get(t, d, "minMargin").Float())
	require.True(t, get(t, d, "pass2Only").Bool())
}

func TestDecode_MissingFieldsAreDefaultApplied(t *testing.T) {
	dec := decode(t, codec.YAML(), features2d.BEBLIDSchema, "%YAML:1.0\n---\nname: \"Feature2D.BEBLID\"\nscale_factor: 1.\n")
	require.True(t, dec.Presence.Seen("/scale_factor"))
	require.Equal(t, featstore.PresenceDefaultApplied, dec.Presence["/n_bits"])
	require.EqualValues(t, 100, get(t, dec.Value, "n_bits").Int())
}

func TestDecode_NameIsOptional(t *testing.T) {
	dec := decode(t, codec.XML(), features2d.BRISKSchema, "<opencv_storage>\n<threshold>31</threshold>\n</opencv_storage>\n")
	require.EqualValues(t, 31, get(t, dec.Value, "threshold").Int())
}

func TestDecode_UnknownField(t *testing.T) {
	in := "%YAML:1.0\n---\nname: \"Feature2D.BRISK\"\nthreshold: 31\nthresh: 2\n"
	_, err := codec.YAML().Decode([]byte(in), features2d.BRISKSchema, strict)
	require.ErrorIs(t, err, featstore.ErrUnknownField)
	iss, _ := featstore.AsIssues(err)
	require.Equal(t, "/thresh", iss[0].Path)
	require.Equal(t, 5, iss[0].Line)

	lenient := strict
	lenient.Unknown = featstore.UnknownStrip
	dec, err := codec.YAML().Decode([]byte(in), features2d.BRISKSchema, lenient)
	require.NoError(t, err)
	require.Len(t, dec.Warnings, 1)
	require.Equal(t, featstore.CodeUnknownField, dec.Warnings[0].Code)
	require.EqualValues(t, 31, get(t, dec.Value, "threshold").Int())
}

func TestDecode_FormatKeyOnSchemaWithoutVersion(t *testing.T) {
	_, err := codec.YAML().Decode([]byte("%YAML:1.0\nformat: 1\n"), features2d.BRISKSchema, strict)
	require.ErrorIs(t, err, featstore.ErrUnknownField)
}

func TestDecode_TypeMismatches(t *testing.T) {
	cases := map[string]string{
		"fraction in int": "threshold: 5.",
		"quoted number":   "threshold: \"5\"",
		"word in float":   "patternScale: big",
		"hex float":       "patternScale: 0x1p-2",
		"empty int":       "octaves: ",
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := codec.YAML().Decode([]byte("%YAML:1.0\n---\n"+line+"\n"), features2d.BRISKSchema, strict)
			require.ErrorIs(t, err, featstore.ErrTypeMismatch)
		})
	}
}

func TestDecode_Overflow(t *testing.T) {
	_, err := codec.XML().Decode([]byte("<opencv_storage>\n<maxArea>2147483648</maxArea>\n</opencv_storage>\n"), features2d.MSERSchema, strict)
	iss, ok := featstore.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, featstore.CodeOverflow, iss[0].Code)
	require.Equal(t, "2147483648", iss[0].Raw)
	require.ErrorIs(t, err, featstore.ErrTypeMismatch)
}

func TestDecode_NameMismatch(t *testing.T) {
	_, err := codec.YAML().Decode([]byte("%YAML:1.0\n---\nname: \"Feature2D.BRIEF\"\n"), features2d.BRISKSchema, strict)
	iss, ok := featstore.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, featstore.CodeNameMismatch, iss[0].Code)
	require.Equal(t, "document type Feature2D.BRIEF does not match Feature2D.BRISK", iss[0].Message)
}

func TestDecode_FormatVersion(t *testing.T) {
	older := "%YAML:1.0\n---\nformat: 2\nname: \"Feature2D.AKAZE\"\n"
	decode(t, codec.YAML(), features2d.AKAZESchema, older)

	newer := "%YAML:1.0\n---\nformat: 4\nname: \"Feature2D.AKAZE\"\n"
	_, err := codec.YAML().Decode([]byte(newer), features2d.AKAZESchema, strict)
	iss, _ := featstore.AsIssues(err)
	require.True(t, iss.HasCode(featstore.CodeUnsupportedFormat))

	_, err = codec.YAML().Decode([]byte("%YAML:1.0\nformat: three\n"), features2d.AKAZESchema, strict)
	require.ErrorIs(t, err, featstore.ErrTypeMismatch)
}

func TestDecode_Duplicates(t *testing.T) {
	in := "%YAML:1.0\n---\nthreshold: 31\nthreshold: 32\n"

	_, err := codec.YAML().Decode([]byte(in), features2d.BRISKSchema, strict)
	iss, ok := featstore.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, featstore.CodeDuplicateField, iss[0].Code)
	require.Equal(t, 4, iss[0].Line)

	warn := strict
	warn.OnDuplicate = featstore.Warn
	dec, err := codec.YAML().Decode([]byte(in), features2d.BRISKSchema, warn)
	require.NoError(t, err)
	require.Len(t, dec.Warnings, 1)
	require.EqualValues(t, 32, get(t, dec.Value, "threshold").Int())

	dec, err = codec.YAML().Decode([]byte(in), features2d.BRISKSchema, featstore.ParseOpt{})
	require.NoError(t, err)
	require.Empty(t, dec.Warnings)
	require.EqualValues(t, 32, get(t, dec.Value, "threshold").Int())
}

func TestDecode_CollectsAllIssuesUnlessFailFast(t *testing.T) {
	in := "%YAML:1.0\n---\nthreshold: x\noctaves: y\nbogus: 1\n"
	_, err := codec.YAML().Decode([]byte(in), features2d.BRISKSchema, strict)
	iss, _ := featstore.AsIssues(err)
	require.Len(t, iss, 3)

	ff := strict
	ff.FailFast = true
	_, err = codec.YAML().Decode([]byte(in), features2d.BRISKSchema, ff)
	iss, _ = featstore.AsIssues(err)
	require.Len(t, iss, 1)
	require.Equal(t, "/threshold", iss[0].Path)
}

func TestDecode_MaxBytes(t *testing.T) {
	opt := strict
	opt.MaxBytes = 10
	_, err := codec.YAML().Decode([]byte("%YAML:1.0\n---\nthreshold: 31\n"), features2d.BRISKSchema, opt)
	iss, _ := featstore.AsIssues(err)
	require.True(t, iss.HasCode(featstore.CodeTooBig))
}

func TestDecode_ParseErrors(t *testing.T) {
	for _, c := range []struct {
		codec featstore.Codec
		in    string
	}{
		{codec.XML(), "<opencv_storage>\n<threshold>31</threshold>\n"},
		{codec.XML(), "<opencv_storage>\n</opencv_storage>\n<x>1</x>\n"},
		{codec.YAML(), "---\nthreshold: 31\n"},
		{codec.YAML(), "%YAML:1.0\nthreshold 31\n"},
		{codec.JSON(), `{"threshold": [31]}`},
		{codec.JSON(), `{"name": "Feature2D.BRISK", "threshold": 31} {"bogus": 1}`},
	} {
		_, err := c.codec.Decode([]byte(c.in), features2d.BRISKSchema, strict)
		require.ErrorIs(t, err, featstore.ErrMalformed, c.in)
	}
}

func TestDecode_JSONBooleans(t *testing.T) {
	in := `{"name": "Feature2D.FREAK", "orientationNormalized": false, "scaleNormalized": 0, "patternScale": 23, "nOctaves": 5}`
	d := decode(t, codec.JSON(), features2d.FREAKSchema, in).Value
	require.False(t, get(t, d, "orientationNormalized").Bool())
	require.False(t, get(t, d, "scaleNormalized").Bool())
	require.Equal(t, float32(23), get(t, d, "patternScale").Float32())

	_, err := codec.JSON().Decode([]byte(`{"nOctaves": true}`), features2d.FREAKSchema, strict)
	require.ErrorIs(t, err, featstore.ErrTypeMismatch)
}

func TestRoundTrip_EveryVariantEveryCodec(t *testing.T) {
	for _, s := range []*featstore.Schema{
		features2d.AKAZESchema, features2d.BEBLIDSchema, features2d.BRIEFSchema,
		features2d.BRISKSchema, features2d.FREAKSchema, features2d.HarrisLaplaceSchema,
		features2d.LATCHSchema, features2d.MSDSchema, features2d.MSERSchema,
	} {
		for _, c := range []featstore.Codec{codec.XML(), codec.YAML(), codec.JSON()} {
			for _, style := range []featstore.FloatStyle{featstore.FloatCanonical, featstore.FloatCompact} {
				doc := s.Defaults()
				b, err := c.Encode(doc, featstore.EncodeOpt{FloatStyle: style})
				require.NoError(t, err)
				back, err := c.Decode(b, s, strict)
				require.NoError(t, err, "%s/%s", s.Name(), c.Name())
				require.True(t, doc.Equal(back.Value), "%s/%s: %v", s.Name(), c.Name(), doc.Diff(back.Value))

				again, err := c.Encode(back.Value, featstore.EncodeOpt{FloatStyle: style})
				require.NoError(t, err)
				require.Equal(t, string(b), string(again))
			}
		}
	}
}

func TestCrossCodecEquivalence(t *testing.T) {
	doc := features2d.MSERSchema.Defaults()
	doc, _ = doc.Set("maxVariation", featstore.Float(.26))
	doc, _ = doc.Set("pass2Only", featstore.Bool(true))

	var decoded []featstore.Document
	for _, c := range []featstore.Codec{codec.XML(), codec.YAML(), codec.JSON()} {
		b, err := c.Encode(doc, featstore.EncodeOpt{})
		require.NoError(t, err)
		dec, err := c.Decode(b, features2d.MSERSchema, strict)
		require.NoError(t, err)
		decoded = append(decoded, dec.Value)
	}
	require.True(t, decoded[0].Equal(decoded[1]))
	require.True(t, decoded[1].Equal(decoded[2]))
}

func TestDecode_YAMLTrailingComment(t *testing.T) {
	d := decode(t, codec.YAML(), features2d.BEBLIDSchema, "%YAML:1.0\n---\nname: \"Feature2D.BEBLID\"\nn_bits: 101 # tuned\n").Value
	require.Equal(t, int64(101), get(t, d, "n_bits").Int())
}

func TestRoundTrip_NegativeZero(t *testing.T) {
	doc, err := features2d.MSERSchema.Defaults().Set("minMargin", featstore.Float(math.Copysign(0, -1)))
	require.NoError(t, err)
	for _, c := range []featstore.Codec{codec.XML(), codec.YAML(), codec.JSON()} {
		for _, style := range []featstore.FloatStyle{featstore.FloatCanonical, featstore.FloatCompact} {
			b, err := c.Encode(doc, featstore.EncodeOpt{FloatStyle: style})
			require.NoError(t, err)
			back, err := c.Decode(b, features2d.MSERSchema, strict)
			require.NoError(t, err, c.Name())
			require.True(t, math.Signbit(get(t, back.Value, "minMargin").Float()), "%s: %s", c.Name(), b)
		}
	}
}

func TestSniff(t *testing.T) {
	tag, err := codec.XML().Sniff([]byte("<opencv_storage>\n<name>Feature2D.MSD</name>\n</opencv_storage>\n"))
	require.NoError(t, err)
	require.Equal(t, "Feature2D.MSD", tag)

	_, err = codec.YAML().Sniff([]byte("%YAML:1.0\ndelta: 5\n"))
	require.ErrorIs(t, err, featstore.ErrMalformed)
}
