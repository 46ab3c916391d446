package commerce

import jsoniter "github.com/json-iterator/go"

// jsonCodec is a 'grpc/encoding.Codec' that marshals RPC payloads as JSON via 'json-iterator' rather than
// protobuf wire format. The commerce-service client has no generated protobuf stubs available to it (transport
// codegen is out of scope for this module, see DESIGN.md), so calls are forced onto this codec with
// 'grpc.ForceCodec' instead of requiring every request/response type to implement 'proto.Message'.
type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, v)
}
