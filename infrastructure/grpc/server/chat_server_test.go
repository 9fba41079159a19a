package server

import (
	"chat-feed/contract"
	"chat-feed/domain"
	"chat-feed/errors"
	pb "chat-feed/proto/feedchat"
	"context"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// fakeBroker records every call the server makes, and hands the attached sink
// back to the test so it can inject live deliveries.
type fakeBroker struct {
	mu        sync.Mutex
	replay    []string
	openErr   error
	published []domain.Message
	sink      contract.EventSink
	closed    int
}

func (f *fakeBroker) SignIn(username string) string { return "Signed in to server..!" }

func (f *fakeBroker) List(username string) ([]string, []string, error) {
	if username == "ghost" {
		return nil, nil, errors.ErrUnknownUser
	}
	return []string{"alice", username}, []string{"alice"}, nil
}

func (f *fakeBroker) Join(username, target string) (string, error) { return "joined", nil }

func (f *fakeBroker) Leave(username, target string) (string, error) { return "left", nil }

func (f *fakeBroker) OpenSession(username string, s contract.EventSink) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.openErr != nil {
		return nil, f.openErr
	}
	f.sink = s
	return f.replay, nil
}

func (f *fakeBroker) Publish(_ context.Context, m domain.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, m)
}

func (f *fakeBroker) CloseSession(username string, _ contract.EventSink) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
}

func (f *fakeBroker) publishedTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	texts := make([]string, 0, len(f.published))
	for _, m := range f.published {
		texts = append(texts, m.Text)
	}
	return texts
}

func (f *fakeBroker) closedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeBroker) attachedSink() contract.EventSink {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sink
}

// startServer runs a ChatServer on an in-memory listener and returns a client.
func startServer(t *testing.T, broker *fakeBroker) pb.ChatServiceClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	pb.RegisterChatServiceServer(s, NewChatServer(slog.Default(), broker, 8, time.Second))
	go func() { _ = s.Serve(listener) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewChatServiceClient(conn)
}

func openStream(t *testing.T, client pb.ChatServiceClient, username string) pb.ChatService_ChatClient {
	t.Helper()
	stream, err := client.Chat(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&pb.ChatMessage{
		Username:  username,
		Text:      domain.SentinelText,
		Timestamp: timestamppb.Now(),
	}))
	return stream
}

func TestChatServer_List(t *testing.T) {
	t.Run("returns the snapshot", func(t *testing.T) {
		req := require.New(t)
		client := startServer(t, &fakeBroker{})

		resp, err := client.List(context.Background(), &pb.ListRequest{Username: "bob"})
		req.NoError(err)
		req.Equal([]string{"alice", "bob"}, resp.GetAllUsers())
		req.Equal([]string{"alice"}, resp.GetFollowing())
	})

	t.Run("maps an unknown user to NotFound", func(t *testing.T) {
		req := require.New(t)
		client := startServer(t, &fakeBroker{})

		_, err := client.List(context.Background(), &pb.ListRequest{Username: "ghost"})
		req.Equal(codes.NotFound, status.Code(err))
	})
}

func TestChatServer_Chat(t *testing.T) {
	t.Run("rejects a stream that skips the sentinel", func(t *testing.T) {
		req := require.New(t)
		client := startServer(t, &fakeBroker{})

		stream, err := client.Chat(context.Background())
		req.NoError(err)
		req.NoError(stream.Send(&pb.ChatMessage{Username: "alice", Text: "no handshake"}))

		_, err = stream.Recv()
		req.Equal(codes.InvalidArgument, status.Code(err))
	})

	t.Run("replays history lines in the text field", func(t *testing.T) {
		req := require.New(t)
		broker := &fakeBroker{replay: []string{
			"alice<>one<>2026-01-01T00:00:00Z",
			"alice<>two<>2026-01-01T00:00:01Z",
		}}
		client := startServer(t, broker)

		stream := openStream(t, client, "bob")

		for _, expected := range broker.replay {
			in, err := stream.Recv()
			req.NoError(err)
			req.Empty(in.GetUsername())
			req.Equal(expected, in.GetText())
		}
	})

	t.Run("maps a failed session open onto the stream status", func(t *testing.T) {
		req := require.New(t)
		client := startServer(t, &fakeBroker{openErr: errors.ErrUnknownUser})

		stream := openStream(t, client, "ghost")

		_, err := stream.Recv()
		req.Equal(codes.NotFound, status.Code(err))
	})

	t.Run("publishes inbound messages and ignores repeated sentinels", func(t *testing.T) {
		req := require.New(t)
		broker := &fakeBroker{}
		client := startServer(t, broker)

		stream := openStream(t, client, "alice")
		req.NoError(stream.Send(&pb.ChatMessage{Username: "alice", Text: "hello", Timestamp: timestamppb.Now()}))
		req.NoError(stream.Send(&pb.ChatMessage{Username: "alice", Text: domain.SentinelText, Timestamp: timestamppb.Now()}))
		req.NoError(stream.Send(&pb.ChatMessage{Username: "alice", Text: "world", Timestamp: timestamppb.Now()}))
		req.NoError(stream.CloseSend())

		req.Eventually(func() bool {
			return broker.closedCount() == 1
		}, time.Second, 10*time.Millisecond)
		req.Equal([]string{"hello", "world"}, broker.publishedTexts())
	})

	t.Run("forwards sink deliveries to the stream", func(t *testing.T) {
		req := require.New(t)
		broker := &fakeBroker{}
		client := startServer(t, broker)

		stream := openStream(t, client, "bob")
		req.Eventually(func() bool {
			return broker.attachedSink() != nil
		}, time.Second, 10*time.Millisecond)

		sentAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		err := broker.attachedSink().Deliver(context.Background(), domain.Message{
			Sender: "alice",
			Text:   "live one",
			SentAt: sentAt,
		})
		req.NoError(err)

		in, err := stream.Recv()
		req.NoError(err)
		req.Equal("alice", in.GetUsername())
		req.Equal("live one", in.GetText())
		req.Equal(sentAt, in.GetTimestamp().AsTime())
	})
}
