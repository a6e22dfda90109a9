package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"
)

// NewErrorDetail packs a domain error code and its details into a
// google.protobuf.Struct error detail of the form {code, details}.
func NewErrorDetail(code string, details map[string]any) (*connect.ErrorDetail, error) {
	fields := map[string]any{"code": code}
	if len(details) > 0 {
		// Round-trip through JSON so typed slices and structs become the
		// generic values structpb accepts.
		raw, err := json.Marshal(details)
		if err != nil {
			return nil, fmt.Errorf("failed to encode error details: %w", err)
		}
		var generic map[string]any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return nil, fmt.Errorf("failed to decode error details: %w", err)
		}
		fields["details"] = generic
	}

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build error detail: %w", err)
	}
	return connect.NewErrorDetail(st)
}

// ErrorInfo extracts the domain code and details from a Connect error built
// with NewErrorDetail. ok is false when err carries no such detail.
func ErrorInfo(err error) (code string, details map[string]any, ok bool) {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return "", nil, false
	}
	for _, d := range connectErr.Details() {
		msg, err := d.Value()
		if err != nil {
			continue
		}
		st, isStruct := msg.(*structpb.Struct)
		if !isStruct {
			continue
		}
		m := st.AsMap()
		code, _ = m["code"].(string)
		details, _ = m["details"].(map[string]any)
		return code, details, code != ""
	}
	return "", nil, false
}
