package main

import (
	"bufio"
	"chat-feed/domain"
	pb "chat-feed/proto/feedchat"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// refusedText is the sign-in payload meaning the username is taken by a live
// connection. It arrives on an OK status, so the client matches the text.
const refusedText = "Error: Somebody is already logged in with this username"

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string        `env:"CHAT_SERVER_ADDR,default=localhost:10001"`
	Username      string        `env:"CHAT_USERNAME,required=true"`
	LogLevel      string        `env:"LOG_LEVEL,default=INFO"`
	AutoCount     int           `env:"CHAT_AUTO_COUNT,default=0"`
	AutoDelay     time.Duration `env:"CHAT_AUTO_DELAY,default=100ms"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run handles the gRPC client lifecycle: sign-in, the command loop, and the
// bidirectional chat stream.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Establish connection to the broker.
	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	client := pb.NewChatServiceClient(conn)

	// 4. Sign in. A refused sign-in is reported in the payload, not the status.
	signIn, err := client.SignIn(ctx, &pb.SignInRequest{Username: config.Username})
	if err != nil {
		return exitRuntime, fmt.Errorf("sign-in failed: %w", err)
	}
	if signIn.GetText() == refusedText {
		color.Red.Println(signIn.GetText())
		return exitRuntime, nil
	}
	color.Green.Println(signIn.GetText())

	// 5. Unattended mode: publish a burst of messages and exit.
	if config.AutoCount > 0 {
		return autoChat(ctx, client, config)
	}

	return commandLoop(ctx, client, config)
}

// commandLoop reads commands from stdin until CHAT switches to stream mode
// or the input ends.
func commandLoop(ctx context.Context, client pb.ChatServiceClient, config Config) (int, error) {
	fmt.Println("Commands: LIST | JOIN <user> | LEAVE <user> | CHAT | QUIT")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("%s> ", config.Username)
		if !scanner.Scan() {
			return exitOK, scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToUpper(fields[0]) {
		case "LIST":
			resp, err := client.List(ctx, &pb.ListRequest{Username: config.Username})
			if err != nil {
				color.Red.Println(err)
				continue
			}
			printUserTable(resp)

		case "JOIN", "LEAVE":
			if len(fields) < 2 {
				color.Yellow.Printf("Usage: %s <user>\n", fields[0])
				continue
			}
			req := &pb.FollowRequest{Username: config.Username, Target: fields[1]}
			var resp *pb.FollowResponse
			var err error
			if strings.ToUpper(fields[0]) == "JOIN" {
				resp, err = client.Join(ctx, req)
			} else {
				resp, err = client.Leave(ctx, req)
			}
			if err != nil {
				color.Red.Println(err)
				continue
			}
			fmt.Println(resp.GetText())

		case "CHAT":
			return chat(ctx, client, config, scanner)

		case "QUIT", "EXIT":
			return exitOK, nil

		default:
			color.Yellow.Printf("Unknown command: %s\n", fields[0])
		}
	}
}

// printUserTable renders the LIST response: every known user, with a marker
// on the ones this client follows.
func printUserTable(resp *pb.ListResponse) {
	following := resp.GetFollowing()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"User", "Following"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, user := range resp.GetAllUsers() {
		marker := ""
		if lo.Contains(following, user) {
			marker = "yes"
		}
		table.Append([]string{user, marker})
	}
	table.Render()
}

// chat opens the bidirectional stream, triggers the catch-up replay with the
// start sentinel, then forwards stdin lines until EOF or Ctrl+C.
func chat(ctx context.Context, client pb.ChatServiceClient, config Config, scanner *bufio.Scanner) (int, error) {
	stream, err := client.Chat(ctx)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open chat stream: %w", err)
	}
	if err := sendSentinel(stream, config.Username); err != nil {
		return exitRuntime, err
	}

	go receiveLoop(stream)

	color.Green.Println("Chat mode. Type messages, Ctrl+C to quit.")
	for scanner.Scan() {
		text := scanner.Text()
		if text == "" {
			continue
		}
		msg := &pb.ChatMessage{
			Username:  config.Username,
			Text:      text,
			Timestamp: timestamppb.Now(),
		}
		if err := stream.Send(msg); err != nil {
			return exitRuntime, fmt.Errorf("send failed: %w", err)
		}
	}
	_ = stream.CloseSend()
	return exitOK, scanner.Err()
}

// autoChat opens the stream and publishes numbered messages on a timer.
// Useful for load checks and demos.
func autoChat(ctx context.Context, client pb.ChatServiceClient, config Config) (int, error) {
	stream, err := client.Chat(ctx)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open chat stream: %w", err)
	}
	if err := sendSentinel(stream, config.Username); err != nil {
		return exitRuntime, err
	}

	go receiveLoop(stream)

	for i := 0; i < config.AutoCount; i++ {
		msg := &pb.ChatMessage{
			Username:  config.Username,
			Text:      fmt.Sprintf("hello%d", i),
			Timestamp: timestamppb.Now(),
		}
		if err := stream.Send(msg); err != nil {
			return exitRuntime, fmt.Errorf("send failed: %w", err)
		}
		select {
		case <-ctx.Done():
			return exitOK, nil
		case <-time.After(config.AutoDelay):
		}
	}
	_ = stream.CloseSend()
	return exitOK, nil
}

func sendSentinel(stream pb.ChatService_ChatClient, username string) error {
	return stream.Send(&pb.ChatMessage{
		Username:  username,
		Text:      domain.SentinelText,
		Timestamp: timestamppb.Now(),
	})
}

// receiveLoop prints everything the server pushes: replay lines arrive raw in
// the text field, live messages carry the sender.
func receiveLoop(stream pb.ChatService_ChatClient) {
	for {
		in, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			return
		}
		if in.GetUsername() == "" {
			color.Gray.Println(in.GetText())
			continue
		}
		color.Cyan.Printf("%s --> %s\n", in.GetUsername(), in.GetText())
	}
}
