package server

import (
	"chat-feed/domain"
	"chat-feed/errors"
	pb "chat-feed/proto/feedchat"
	"chat-feed/services"
	"chat-feed/sink"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	broker               services.IBrokerService
	log                  *slog.Logger
	connectionBufferSize int
	deliveryTimeout      time.Duration
}

func NewChatServer(log *slog.Logger, broker services.IBrokerService,
	connectionBufferSize int, deliveryTimeout time.Duration) *ChatServer {
	return &ChatServer{
		broker:               broker,
		log:                  log,
		connectionBufferSize: connectionBufferSize,
		deliveryTimeout:      deliveryTimeout,
	}
}

// SignIn never fails at the RPC level: the already-connected collision is a
// payload the client is expected to treat as fatal.
func (s *ChatServer) SignIn(_ context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {
	return &pb.SignInResponse{Text: s.broker.SignIn(req.GetUsername())}, nil
}

func (s *ChatServer) List(_ context.Context, req *pb.ListRequest) (*pb.ListResponse, error) {
	all, following, err := s.broker.List(req.GetUsername())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListResponse{AllUsers: all, Following: following}, nil
}

func (s *ChatServer) Join(_ context.Context, req *pb.FollowRequest) (*pb.FollowResponse, error) {
	text, err := s.broker.Join(req.GetUsername(), req.GetTarget())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.FollowResponse{Text: text}, nil
}

func (s *ChatServer) Leave(_ context.Context, req *pb.FollowRequest) (*pb.FollowResponse, error) {
	text, err := s.broker.Leave(req.GetUsername(), req.GetTarget())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.FollowResponse{Text: text}, nil
}

// Chat drives one stream session through its three states: the sentinel
// handshake, the replay of recent inbox history, then the live loop that
// persists and fans out every inbound message. The inbound Recv loop is the
// session's lifeline; when it ends, the session closes and the user is
// marked disconnected.
func (s *ChatServer) Chat(stream pb.ChatService_ChatServer) error {
	first, err := stream.Recv()
	if err != nil {
		return err
	}
	if !fromChatMessage(first).IsSentinel() {
		// A safe close beats processing a stream with no established owner.
		return status.Error(codes.InvalidArgument, "chat stream must open with the start sentinel")
	}

	username := first.GetUsername()
	sessionID := uuid.NewString()
	log := s.log.With("user", username, "session_id", sessionID)

	sk := sink.NewGrpcSink(log, s.connectionBufferSize, s.deliveryTimeout)
	replay, err := s.broker.OpenSession(username, sk)
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	defer s.broker.CloseSession(username, sk)

	// Replay: raw log lines travel in the text field, never re-parsed.
	for _, line := range replay {
		if err := stream.Send(&pb.ChatMessage{Text: line}); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	// Writer: drains this session's sink onto the wire. A send failure means
	// the client side is gone; the Recv loop below will observe the broken
	// stream and close the session.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m := <-sk.Messages():
				if err := stream.Send(toChatMessage(m)); err != nil {
					log.Warn("live write to stream failed", "error", err)
					return
				}
			}
		}
	}()

	for {
		in, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			log.Info("chat stream ended", "error", err)
			return nil
		}
		m := fromChatMessage(in)
		if m.IsSentinel() {
			// A repeated sentinel is not a deliverable message.
			continue
		}
		s.broker.Publish(ctx, m)
	}
}

func toChatMessage(m domain.Message) *pb.ChatMessage {
	return &pb.ChatMessage{
		Username:  m.Sender,
		Text:      m.Text,
		Timestamp: timestamppb.New(m.SentAt),
	}
}

func fromChatMessage(in *pb.ChatMessage) domain.Message {
	return domain.Message{
		Sender: in.GetUsername(),
		Text:   in.GetText(),
		SentAt: in.GetTimestamp().AsTime(),
	}
}
