package grpc

import (
	"context"
	"errors"

	pb "github.com/stackmoxie/looksy-cog/api/cogpb"
	"github.com/stackmoxie/looksy-cog/internal/auth"
	"github.com/stackmoxie/looksy-cog/internal/cog"
	"github.com/stackmoxie/looksy-cog/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type CogServer struct {
	pb.UnimplementedCogServiceServer
	cog *cog.Cog
}

func NewCogServer(c *cog.Cog) *CogServer {
	return &CogServer{cog: c}
}

func (s *CogServer) GetManifest(ctx context.Context, req *pb.ManifestRequest) (*pb.CogManifest, error) {
	return manifestToPB(s.cog.Manifest()), nil
}

func (s *CogServer) RunStep(ctx context.Context, req *pb.RunStepRequest) (*pb.RunStepResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	resp, err := s.cog.RunStep(ctx, md, stepFromPB(req.Step))
	if err != nil {
		return nil, toStatus(err)
	}
	return responseToPB(resp), nil
}

func (s *CogServer) RunSteps(stream pb.CogService_RunStepsServer) error {
	md, _ := metadata.FromIncomingContext(stream.Context())
	return toStatus(s.cog.RunSteps(md, &stepStream{stream: stream}))
}

type stepStream struct {
	stream pb.CogService_RunStepsServer
}

func (s *stepStream) Context() context.Context {
	return s.stream.Context()
}

func (s *stepStream) Recv() (*domain.StepMessage, error) {
	req, err := s.stream.Recv()
	if err != nil {
		return nil, err
	}
	return stepFromPB(req.Step), nil
}

func (s *stepStream) Send(resp *domain.Response) error {
	return s.stream.Send(responseToPB(resp))
}

func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	var authErr *auth.AuthenticationError
	if errors.As(err, &authErr) {
		return status.Error(codes.Unauthenticated, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
