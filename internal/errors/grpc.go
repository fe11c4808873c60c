package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Keys used inside the structpb details attached to gRPC statuses
const (
	detailCodeKey    = "code"
	detailMessageKey = "message"
	detailMetaKey    = "meta"
)

// ToGRPCError converts err to a gRPC status error. Metadata rides along as a
// structpb.Struct detail; if it cannot be encoded the status goes out bare.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var e *Error
	if !As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	if len(e.Meta) == 0 {
		return st.Err()
	}
	details, derr := toDetails(e)
	if derr != nil {
		return st.Err()
	}
	if withDetails, derr := st.WithDetails(details); derr == nil {
		st = withDetails
	}
	return st.Err()
}

// FromGRPCError rebuilds an *Error from a status error, restoring metadata
// from the first structpb detail. Non-status errors pass through.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	e := &Error{Code: grpcCodeToCode(st.Code()), Message: st.Message()}
	for _, detail := range st.Details() {
		if details, ok := detail.(*structpb.Struct); ok {
			e.Meta = fromDetails(details)
			break
		}
	}
	return e
}

// grpcCodes pairs each Code with its gRPC status code
var grpcCodes = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeAborted:            codes.Aborted,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
}

// GRPCCode returns the gRPC status code for c
func (c Code) GRPCCode() codes.Code {
	if gc, ok := grpcCodes[c]; ok {
		return gc
	}
	return codes.Unknown
}

// grpcCodeToCode maps an incoming status code back. Codes this service never
// sends collapse to Internal, except ResourceExhausted which a proxy may
// return for throttling and is treated as Unavailable.
func grpcCodeToCode(gc codes.Code) Code {
	for c, mapped := range grpcCodes {
		if mapped == gc {
			return c
		}
	}
	if gc == codes.ResourceExhausted {
		return CodeUnavailable
	}
	return CodeInternal
}

// toDetails packs the error code, message and metadata into a Struct.
// Metadata values must be JSON compatible; anything else fails the conversion
// and the status is sent without details.
func toDetails(e *Error) (*structpb.Struct, error) {
	meta := make(map[string]any, len(e.Meta))
	for k, v := range e.Meta {
		meta[k] = normalizeDetailValue(v)
	}
	return structpb.NewStruct(map[string]any{
		detailCodeKey:    string(e.Code),
		detailMessageKey: e.Message,
		detailMetaKey:    meta,
	})
}

// fromDetails extracts the metadata map from a details Struct
func fromDetails(details *structpb.Struct) map[string]any {
	meta, ok := details.AsMap()[detailMetaKey].(map[string]any)
	if !ok {
		return nil
	}
	return meta
}

// normalizeDetailValue converts metadata shapes structpb cannot take as-is,
// such as the field map produced by ValidationBuilder.
func normalizeDetailValue(v any) any {
	switch typed := v.(type) {
	case map[string][]string:
		out := make(map[string]any, len(typed))
		for field, msgs := range typed {
			list := make([]any, len(msgs))
			for i, msg := range msgs {
				list[i] = msg
			}
			out[field] = list
		}
		return out
	case []string:
		list := make([]any, len(typed))
		for i, s := range typed {
			list[i] = s
		}
		return list
	default:
		return v
	}
}
