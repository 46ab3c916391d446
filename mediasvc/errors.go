// Package mediasvc is the orchestrator tying the object store, relational store, and authorization layer together
// into the create/get/list/update/delete/offer-association/multipart-upload operations of the media service.
package mediasvc

import "errors"

// Sentinel errors wrapped by every domain failure this package returns; 'transport/grpcapi' maps each to a
// 'codes.Code' via 'errors.Is', following the teacher's 'errors.As'-based typed-error classification style applied
// to a small fixed set of sentinels instead of per-case structs, since these carry no extra fields.
var (
	ErrInvalidArgument    = errors.New("mediasvc: invalid argument")
	ErrAlreadyExists      = errors.New("mediasvc: already exists")
	ErrFailedPrecondition = errors.New("mediasvc: failed precondition")
	ErrInternal           = errors.New("mediasvc: internal error")
)
