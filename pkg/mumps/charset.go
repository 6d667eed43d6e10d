package mumps

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// NoValue stands in for a value none of which could be converted.
const NoValue = "__NOVALUE__"

// Transcoder converts strings between UTF-8 and the database charset
// named by XNODEM_ENCODING.
type Transcoder struct {
	name string
	enc  encoding.Encoding
}

// NewTranscoder resolves a charset label such as "cp1251" or "koi8-r".
func NewTranscoder(name string) (*Transcoder, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return &Transcoder{name: name, enc: enc}, nil
}

// Name returns the label the transcoder was created with.
func (t *Transcoder) Name() string {
	return t.name
}

// Encode converts UTF-8 to the database charset.
func (t *Transcoder) Encode(s string) string {
	return convert(t.enc.NewEncoder(), s)
}

// Decode converts from the database charset to UTF-8.
func (t *Transcoder) Decode(s string) string {
	return convert(t.enc.NewDecoder(), s)
}

// convert keeps whatever was converted before the first failure and drops
// the rest, so "a\xffb" encodes to "a". Nothing converted yields NoValue.
func convert(tr transform.Transformer, s string) string {
	out, _, err := transform.String(tr, s)
	if err != nil && out == "" && s != "" {
		return NoValue
	}
	return out
}
