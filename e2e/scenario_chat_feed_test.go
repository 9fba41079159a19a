package e2e

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"chat-feed/domain"
	"chat-feed/infrastructure/grpc/server"
	pb "chat-feed/proto/feedchat"
	"chat-feed/runtime"
	"chat-feed/services"
	"chat-feed/storage"
)

type testChatFeedSuite struct {
	BaseGrpcSuite
	grpcServer *grpc.Server
}

func TestChatFeedSuite(t *testing.T) {
	suite.Run(t, &testChatFeedSuite{})
}

// SetupSuite starts a full broker on a random local port so the scenario runs
// against the real wire, not in-process calls.
func (s *testChatFeedSuite) SetupSuite() {
	s.BaseGrpcSuite.SetupSuite()

	logger := logs.GetLoggerFromString("ERROR")
	store, err := storage.NewLogStore(s.T().TempDir(), logger)
	s.Require().NoError(err)

	registry := runtime.NewRegistry()
	broker := services.NewBrokerService(logger, registry, store, nil)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)

	s.grpcServer = grpc.NewServer()
	pb.RegisterChatServiceServer(s.grpcServer, server.NewChatServer(logger, broker, 64, 2*time.Second))
	go func() { _ = s.grpcServer.Serve(listener) }()

	s.Config.BrokerAddr = listener.Addr().String()
}

func (s *testChatFeedSuite) TearDownSuite() {
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
}

func (s *testChatFeedSuite) TestPublishSubscribeFlow() {
	s.Run("Step 1: Sign-in semantics", func() {
		s.WithBroker("Sign in alice and bob", func(ctx context.Context, client pb.ChatServiceClient) {
			resp, err := client.SignIn(ctx, &pb.SignInRequest{Username: "alice"})
			s.Require().NoError(err)
			s.Require().Equal("Signed in to server..!", resp.GetText())

			resp, err = client.SignIn(ctx, &pb.SignInRequest{Username: "bob"})
			s.Require().NoError(err)
			s.Require().Equal("Signed in to server..!", resp.GetText())

			// Same username again while connected: refused in the payload.
			resp, err = client.SignIn(ctx, &pb.SignInRequest{Username: "alice"})
			s.Require().NoError(err)
			s.Require().Equal("Error: Somebody is already logged in with this username", resp.GetText())
		})
	})

	s.Run("Step 2: Follow graph and listing", func() {
		s.WithBroker("bob joins alice", func(ctx context.Context, client pb.ChatServiceClient) {
			resp, err := client.Join(ctx, &pb.FollowRequest{Username: "bob", Target: "alice"})
			s.Require().NoError(err)
			s.Require().Equal("Successfully joined alice", resp.GetText())

			resp, err = client.Join(ctx, &pb.FollowRequest{Username: "bob", Target: "alice"})
			s.Require().NoError(err)
			s.Require().Equal("You are already following user alice", resp.GetText())

			resp, err = client.Join(ctx, &pb.FollowRequest{Username: "bob", Target: "nobody"})
			s.Require().NoError(err)
			s.Require().Equal("FAILURE: requested username does not exist", resp.GetText())

			resp, err = client.Join(ctx, &pb.FollowRequest{Username: "bob", Target: "bob"})
			s.Require().NoError(err)
			s.Require().Equal("You are already the owner of this room. No need to join externally", resp.GetText())

			list, err := client.List(ctx, &pb.ListRequest{Username: "bob"})
			s.Require().NoError(err)
			s.Require().ElementsMatch([]string{"alice", "bob"}, list.GetAllUsers())
			s.Require().Equal([]string{"alice"}, list.GetFollowing())

			_, err = client.List(ctx, &pb.ListRequest{Username: "nobody"})
			s.Require().Equal(codes.NotFound, status.Code(err))
		})
	})

	s.Run("Step 3: Live delivery to an attached follower", func() {
		s.WithBroker("alice publishes while bob streams", func(ctx context.Context, client pb.ChatServiceClient) {
			aliceStream := s.openChat(ctx, client, "alice")
			bobStream := s.openChat(ctx, client, "bob")

			s.send(aliceStream, "alice", "hi")

			in, err := bobStream.Recv()
			s.Require().NoError(err)
			s.Require().Equal("alice", in.GetUsername())
			s.Require().Equal("hi", in.GetText())

			// bob goes offline; draining until the stream ends guarantees the
			// server has closed his session before the next step signs him in.
			s.Require().NoError(bobStream.CloseSend())
			for {
				if _, err := bobStream.Recv(); err != nil {
					break
				}
			}

			// Same on alice's side: the end of her stream proves the broker has
			// consumed and persisted everything she sent.
			s.send(aliceStream, "alice", "offline msg")
			s.Require().NoError(aliceStream.CloseSend())
			for {
				if _, err := aliceStream.Recv(); err != nil {
					break
				}
			}
		})
	})

	s.Run("Step 4: Reconnect replays the inbox history", func() {
		s.WithBroker("bob reconnects and catches up", func(ctx context.Context, client pb.ChatServiceClient) {
			resp, err := client.SignIn(ctx, &pb.SignInRequest{Username: "bob"})
			s.Require().NoError(err)
			s.Require().Equal("Existing User. Signed in to server..!", resp.GetText())

			stream := s.openChat(ctx, client, "bob")

			// Both messages must surface: either as raw replay lines or, for a
			// message still in flight at attach time, as a live push.
			got := s.collectTexts(stream, 2, 10*time.Second)
			s.Require().Len(got, 2)
			s.Require().True(strings.HasPrefix(got[0], "alice<>hi<>"), "unexpected first line: %s", got[0])
			s.Require().Contains(got[1], "offline msg")
		})
	})

	s.Run("Step 5: Protocol violation closes the stream", func() {
		s.WithBroker("first message without the sentinel", func(ctx context.Context, client pb.ChatServiceClient) {
			stream, err := client.Chat(ctx)
			s.Require().NoError(err)
			s.Require().NoError(stream.Send(&pb.ChatMessage{Username: "alice", Text: "not the sentinel"}))

			_, err = stream.Recv()
			s.Require().Equal(codes.InvalidArgument, status.Code(err))
		})
	})
}

// openChat opens the bidirectional stream and performs the sentinel handshake.
func (s *testChatFeedSuite) openChat(ctx context.Context, client pb.ChatServiceClient, username string) pb.ChatService_ChatClient {
	stream, err := client.Chat(ctx)
	s.Require().NoError(err)
	s.Require().NoError(stream.Send(&pb.ChatMessage{
		Username:  username,
		Text:      domain.SentinelText,
		Timestamp: timestamppb.Now(),
	}))
	return stream
}

func (s *testChatFeedSuite) send(stream pb.ChatService_ChatClient, username, text string) {
	s.Require().NoError(stream.Send(&pb.ChatMessage{
		Username:  username,
		Text:      text,
		Timestamp: timestamppb.Now(),
	}))
}

// collectTexts reads up to want messages off the stream, normalizing live
// pushes to their log-line shape so replay and live arrivals compare alike.
func (s *testChatFeedSuite) collectTexts(stream pb.ChatService_ChatClient, want int, timeout time.Duration) []string {
	type result struct {
		line string
		err  error
	}
	results := make(chan result, want)
	go func() {
		for i := 0; i < want; i++ {
			in, err := stream.Recv()
			if err != nil {
				results <- result{err: err}
				return
			}
			line := in.GetText()
			if in.GetUsername() != "" {
				line = domain.Message{
					Sender: in.GetUsername(),
					Text:   in.GetText(),
					SentAt: in.GetTimestamp().AsTime(),
				}.LogLine()
			}
			results <- result{line: line}
		}
	}()

	var got []string
	deadline := time.After(timeout)
	for len(got) < want {
		select {
		case r := <-results:
			s.Require().NoError(r.err)
			got = append(got, r.line)
		case <-deadline:
			s.FailNowf("timed out collecting messages", "got %d of %d", len(got), want)
		}
	}
	return got
}
