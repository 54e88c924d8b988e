package featstore

// Codec encodes and decodes parameter documents in one textual encoding.
type Codec interface {
	// Name returns a short identifier such as "xml" or "yaml".
	Name() string
	// Encode renders doc. It fails only for values the encoding cannot represent.
	Encode(doc Document, opt EncodeOpt) ([]byte, error)
	// Decode parses data against s. Fields absent from data hold the schema
	// default and are not marked seen in the returned presence map. Any
	// structural, unknown-field or type problem fails the whole decode.
	Decode(data []byte, s *Schema, opt ParseOpt) (Decoded[Document], error)
	// Sniff returns the type tag stored in data without decoding its fields.
	Sniff(data []byte) (string, error)
}
