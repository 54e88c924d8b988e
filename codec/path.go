package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	featstore "github.com/reoring/featstore"
)

// ErrUnsupportedExtension is returned by ForPath for file names it cannot map
// to a codec.
var ErrUnsupportedExtension = errors.New("codec: unsupported file extension")

// ErrUnknownVariant is returned by DecodeAny when the type tag of a document
// is not registered.
var ErrUnknownVariant = errors.New("codec: unknown variant")

const gzipExt = ".gz"

// ForPath selects a codec from the file extension (case-insensitive): .xml,
// .yml, .yaml or .json, optionally followed by .gz for gzip framing.
func ForPath(path string) (featstore.Codec, error) {
	lower := strings.ToLower(path)
	gz := strings.HasSuffix(lower, gzipExt)
	if gz {
		lower = strings.TrimSuffix(lower, gzipExt)
	}
	c, err := ByName(strings.TrimPrefix(filepath.Ext(lower), "."))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExtension, path)
	}
	if gz {
		return Gzip(c), nil
	}
	return c, nil
}

// ByName returns the codec with the given short name ("xml", "yml", "yaml",
// "json").
func ByName(name string) (featstore.Codec, error) {
	switch strings.ToLower(name) {
	case "xml":
		return XML(), nil
	case "yml", "yaml":
		return YAML(), nil
	case "json":
		return JSON(), nil
	}
	return nil, fmt.Errorf("codec: unknown codec %q", name)
}

// Detect guesses the codec of an unframed document from its first significant
// byte: '<' for markup, '%' for block scalars and '{' for JSON.
func Detect(data []byte) (featstore.Codec, bool) {
	t := bytes.TrimLeft(data, " \t\r\n")
	if len(t) == 0 {
		return nil, false
	}
	switch t[0] {
	case '<':
		return XML(), true
	case '%':
		return YAML(), true
	case '{':
		return JSON(), true
	}
	return nil, false
}

// Sniff returns the type tag of data encoded with c.
func Sniff(c featstore.Codec, data []byte) (string, error) { return c.Sniff(data) }

// DecodeAny decodes a document whose variant is not known in advance: the
// type tag is read first and the registered schema of that name is used.
func DecodeAny(c featstore.Codec, data []byte, opt featstore.ParseOpt) (featstore.Decoded[featstore.Document], error) {
	tag, err := c.Sniff(data)
	if err != nil {
		return featstore.Decoded[featstore.Document]{}, err
	}
	s, ok := featstore.Lookup(tag)
	if !ok {
		return featstore.Decoded[featstore.Document]{}, fmt.Errorf("%w: %q", ErrUnknownVariant, tag)
	}
	return c.Decode(data, s, opt)
}

type gzipCodec struct{ inner featstore.Codec }

// Gzip wraps c so that documents are gzip-compressed on encode and
// decompressed on decode.
func Gzip(c featstore.Codec) featstore.Codec { return &gzipCodec{inner: c} }

func (c *gzipCodec) Name() string { return c.inner.Name() + "+gzip" }

func (c *gzipCodec) Encode(doc featstore.Document, opt featstore.EncodeOpt) ([]byte, error) {
	plain, err := c.inner.Encode(doc, opt)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(plain); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *gzipCodec) Decode(data []byte, s *featstore.Schema, opt featstore.ParseOpt) (featstore.Decoded[featstore.Document], error) {
	plain, err := gunzip(data, opt)
	if err != nil {
		return featstore.Decoded[featstore.Document]{}, err
	}
	return c.inner.Decode(plain, s, opt)
}

func (c *gzipCodec) Sniff(data []byte) (string, error) {
	plain, err := gunzip(data, featstore.ParseOpt{})
	if err != nil {
		return "", err
	}
	return c.inner.Sniff(plain)
}

// gunzip inflates data, enforcing opt.MaxBytes on the decompressed size.
func gunzip(data []byte, opt featstore.ParseOpt) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, parseIssue(err)
	}
	defer zr.Close()
	var r io.Reader = zr
	if opt.MaxBytes > 0 {
		r = io.LimitReader(zr, opt.MaxBytes+1)
	}
	plain, err := io.ReadAll(r)
	if err != nil {
		return nil, parseIssue(err)
	}
	if err := checkSize(len(plain), opt); err != nil {
		return nil, err
	}
	return plain, nil
}
