package grpcapi

import jsoniter "github.com/json-iterator/go"

// jsonCodec mirrors 'commerce.jsonCodec': since 'mediapb' types are plain Go structs rather than generated
// 'proto.Message' implementations, the server is forced onto a JSON wire codec via 'grpc.ForceServerCodec' instead
// of the protobuf codec 'grpc.NewServer' would otherwise require.
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
