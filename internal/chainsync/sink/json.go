package sink

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var (
	compactJSON = protojson.MarshalOptions{}
	prettyJSON  = protojson.MarshalOptions{Multiline: true, Indent: "  "}
)

// marshalPayload renders a record payload; a missing payload becomes null.
func marshalPayload(opts protojson.MarshalOptions, payload proto.Message) ([]byte, error) {
	if payload == nil {
		return []byte("null"), nil
	}
	data, err := opts.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return data, nil
}
