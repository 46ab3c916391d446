package grpcapi

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/peoplesmarkets/media/auth"
	"github.com/peoplesmarkets/media/log"
	"github.com/peoplesmarkets/media/mediapb"
	"github.com/peoplesmarkets/media/mediasvc"
	"github.com/peoplesmarkets/media/subscription"
)

// Server binds 'mediasvc'/'subscription' to the wire shapes in 'mediapb' and registers them against a
// '*grpc.Server', matching spec §6's RPC surface.
type Server struct {
	media    *mediasvc.Service
	subs     *subscription.Projector
	verifier *auth.Verifier
	log      log.WrappedLogger
}

// NewServer builds a 'Server' from its collaborators.
func NewServer(
	media *mediasvc.Service, subs *subscription.Projector, verifier *auth.Verifier, logger log.Logger,
) *Server {
	return &Server{media: media, subs: subs, verifier: verifier, log: log.NewWrappedLogger(logger)}
}

// Register attaches both RPC services (MediaService, MediaSubscriptionService) to 'grpcServer'.
func (s *Server) Register(grpcServer *grpc.Server) {
	grpcServer.RegisterService(&mediaServiceDesc, s)
	grpcServer.RegisterService(&mediaSubscriptionServiceDesc, s)
}

// NewGRPCServer builds a '*grpc.Server' forced onto the JSON codec 'mediapb' needs in the absence of generated
// protobuf stubs, and registers 's' against it.
func (s *Server) NewGRPCServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{grpc.ForceServerCodec(jsonCodec{})}, opts...)
	grpcServer := grpc.NewServer(opts...)
	s.Register(grpcServer)

	return grpcServer
}

func (s *Server) authenticate(ctx context.Context) (string, error) {
	userID, err := s.verifier.Authenticate(ctx)
	if err != nil {
		return "", toStatus(s.log, err)
	}

	return userID, nil
}

var mediaServiceDesc = grpc.ServiceDesc{
	ServiceName: "peoplesmarkets.media.v1.MediaService",
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateMedia", Handler: createMediaHandler},
		{MethodName: "GetMedia", Handler: getMediaHandler},
		{MethodName: "ListMedia", Handler: listMediaHandler},
		{MethodName: "ListAccessibleMedia", Handler: listAccessibleMediaHandler},
		{MethodName: "UpdateMedia", Handler: updateMediaHandler},
		{MethodName: "DeleteMedia", Handler: deleteMediaHandler},
		{MethodName: "InitiateMultipartUpload", Handler: initiateMultipartUploadHandler},
		{MethodName: "PutMultipartChunk", Handler: putMultipartChunkHandler},
		{MethodName: "CompleteMultipartUpload", Handler: completeMultipartUploadHandler},
		{MethodName: "AddMediaToOffer", Handler: addMediaToOfferHandler},
		{MethodName: "RemoveMediaFromOffer", Handler: removeMediaFromOfferHandler},
	},
}

var mediaSubscriptionServiceDesc = grpc.ServiceDesc{
	ServiceName: "peoplesmarkets.media.v1.MediaSubscriptionService",
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PutMediaSubscription", Handler: putMediaSubscriptionHandler},
	},
}

func createMediaHandler(
	srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor,
) (any, error) {
	s := srv.(*Server)

	var req mediapb.CreateMediaRequest
	if err := dec(&req); err != nil {
		return nil, err
	}

	userID, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	media, err := s.media.Create(ctx, userID, req.MarketBoothID, req.Name, req.File)
	if err != nil {
		return nil, toStatus(s.log, err)
	}

	return &mediapb.CreateMediaResponse{Media: media}, nil
}

func getMediaHandler(
	srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor,
) (any, error) {
	s := srv.(*Server)

	var req mediapb.GetMediaRequest
	if err := dec(&req); err != nil {
		return nil, err
	}

	userID, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	media, err := s.media.Get(ctx, userID, req.MediaID)
	if err != nil {
		return nil, toStatus(s.log, err)
	}

	return &mediapb.GetMediaResponse{Media: media}, nil
}

func listMediaHandler(
	srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor,
) (any, error) {
	s := srv.(*Server)

	var req mediapb.ListMediaRequest
	if err := dec(&req); err != nil {
		return nil, err
	}

	userID, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	medias, page, err := s.media.List(ctx, userID, req.MarketBoothID, req.Pagination, req.OrderBy, req.Filter)
	if err != nil {
		return nil, toStatus(s.log, err)
	}

	return &mediapb.ListMediaResponse{Medias: medias, Pagination: page}, nil
}

func listAccessibleMediaHandler(
	srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor,
) (any, error) {
	s := srv.(*Server)

	var req mediapb.ListAccessibleMediaRequest
	if err := dec(&req); err != nil {
		return nil, err
	}

	userID, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	medias, page, err := s.media.ListAccessible(ctx, userID, req.Pagination, req.OrderBy, req.Filter)
	if err != nil {
		return nil, toStatus(s.log, err)
	}

	return &mediapb.ListAccessibleMediaResponse{Medias: medias, Pagination: page}, nil
}

func updateMediaHandler(
	srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor,
) (any, error) {
	s := srv.(*Server)

	var req mediapb.UpdateMediaRequest
	if err := dec(&req); err != nil {
		return nil, err
	}

	userID, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	media, err := s.media.Update(ctx, userID, req.MediaID, req.Name, req.File)
	if err != nil {
		return nil, toStatus(s.log, err)
	}

	return &mediapb.UpdateMediaResponse{Media: media}, nil
}

func deleteMediaHandler(
	srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor,
) (any, error) {
	s := srv.(*Server)

	var req mediapb.DeleteMediaRequest
	if err := dec(&req); err != nil {
		return nil, err
	}

	userID, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.media.Delete(ctx, userID, req.MediaID); err != nil {
		return nil, toStatus(s.log, err)
	}

	return &mediapb.DeleteMediaResponse{}, nil
}

func initiateMultipartUploadHandler(
	srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor,
) (any, error) {
	s := srv.(*Server)

	var req mediapb.InitiateMultipartUploadRequest
	if err := dec(&req); err != nil {
		return nil, err
	}

	userID, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	key, uploadID, err := s.media.InitiateMultipartUpload(ctx, userID, req.MediaID, req.ContentType)
	if err != nil {
		return nil, toStatus(s.log, err)
	}

	return &mediapb.InitiateMultipartUploadResponse{Key: key, UploadID: uploadID}, nil
}

func putMultipartChunkHandler(
	srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor,
) (any, error) {
	s := srv.(*Server)

	var req mediapb.PutMultipartChunkRequest
	if err := dec(&req); err != nil {
		return nil, err
	}

	userID, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	part, err := s.media.PutMultipartChunk(ctx, userID, req.MediaID, req.UploadID, req.PartNumber, req.Chunk)
	if err != nil {
		return nil, toStatus(s.log, err)
	}

	return &mediapb.PutMultipartChunkResponse{Part: part}, nil
}

func completeMultipartUploadHandler(
	srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor,
) (any, error) {
	s := srv.(*Server)

	var req mediapb.CompleteMultipartUploadRequest
	if err := dec(&req); err != nil {
		return nil, err
	}

	userID, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.media.CompleteMultipartUpload(ctx, userID, req.MediaID, req.UploadID, req.Parts); err != nil {
		return nil, toStatus(s.log, err)
	}

	return &mediapb.CompleteMultipartUploadResponse{}, nil
}

func addMediaToOfferHandler(
	srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor,
) (any, error) {
	s := srv.(*Server)

	var req mediapb.AddMediaToOfferRequest
	if err := dec(&req); err != nil {
		return nil, err
	}

	userID, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.media.AddMediaToOffer(ctx, userID, req.MediaID, req.OfferID); err != nil {
		return nil, toStatus(s.log, err)
	}

	return &mediapb.AddMediaToOfferResponse{}, nil
}

func removeMediaFromOfferHandler(
	srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor,
) (any, error) {
	s := srv.(*Server)

	var req mediapb.RemoveMediaFromOfferRequest
	if err := dec(&req); err != nil {
		return nil, err
	}

	userID, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.media.RemoveMediaFromOffer(ctx, userID, req.MediaID, req.OfferID); err != nil {
		return nil, toStatus(s.log, err)
	}

	return &mediapb.RemoveMediaFromOfferResponse{}, nil
}

// putMediaSubscriptionHandler has no caller-authentication check beyond whatever service-to-service token the
// transport layer already required to route the call here (§4.7 "assumed trusted infrastructure path").
func putMediaSubscriptionHandler(
	srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor,
) (any, error) {
	s := srv.(*Server)

	var req mediapb.PutMediaSubscriptionRequest
	if err := dec(&req); err != nil {
		return nil, err
	}

	record := subscription.Record{
		MediaSubscriptionID: req.MediaSubscriptionID,
		BuyerUserID:         req.BuyerUserID,
		OfferID:             req.OfferID,
		CurrentPeriodStart:  time.Unix(int64(req.CurrentPeriodStart), 0).UTC(),
		CurrentPeriodEnd:    time.Unix(int64(req.CurrentPeriodEnd), 0).UTC(),
		SubscriptionStatus:  req.SubscriptionStatus,
		PayedAt:             time.Unix(int64(req.PayedAt), 0).UTC(),
		PayedUntil:          time.Unix(int64(req.PayedUntil), 0).UTC(),
	}

	if err := s.subs.PutMediaSubscription(ctx, record); err != nil {
		return nil, toStatus(s.log, err)
	}

	return &mediapb.PutMediaSubscriptionResponse{}, nil
}
