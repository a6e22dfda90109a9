package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// CodecName is the Connect codec name for application/json.
const CodecName = "json"

// Codec encodes the plain Go messages of this package as JSON. Numbers are
// decoded as json.Number so money amounts never pass through float64.
type Codec struct {
	name string
}

var _ connect.Codec = Codec{}

// NewCodec returns the codec registered as "json".
func NewCodec() Codec {
	return Codec{name: CodecName}
}

// Name implements connect.Codec.
func (c Codec) Name() string {
	if c.name == "" {
		return CodecName
	}
	return c.name
}

// Marshal implements connect.Codec.
func (c Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal implements connect.Codec. An empty payload leaves msg untouched.
func (c Codec) Unmarshal(data []byte, msg any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(msg); err != nil {
		return fmt.Errorf("invalid JSON message: %w", err)
	}
	return nil
}

// HandlerCodecs registers the codec for both JSON content types Connect
// clients send.
func HandlerCodecs() connect.HandlerOption {
	return connect.WithHandlerOptions(
		connect.WithCodec(NewCodec()),
		connect.WithCodec(Codec{name: CodecName + "; charset=utf-8"}),
	)
}

// ClientCodec selects the codec on a client.
func ClientCodec() connect.ClientOption {
	return connect.WithCodec(NewCodec())
}
