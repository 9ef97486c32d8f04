// Package main provides the control CLI entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"

	apiconnect "github.com/osa030/podcastr/internal/api/connect"
	"github.com/osa030/podcastr/internal/domain/episode"
	podcastrv1 "github.com/osa030/podcastr/internal/gen/podcastr/v1"
	"github.com/osa030/podcastr/internal/gen/podcastr/v1/podcastrv1connect"
)

var (
	app    = kingpin.New("podcastr-cli", "podcastr player control client")
	server = app.Flag("server", "Server address").Default("http://localhost:8080").String()
	token  = app.Flag("token", "Control token").Envar("PODCASTR_TOKEN").String()

	statusCmd = app.Command("status", "Show the player status")
	listCmd   = app.Command("list", "List catalog episodes")

	playCmd   = app.Command("play", "Play a single catalog episode")
	playIndex = playCmd.Arg("index", "Catalog index").Required().Int()

	playCatalogCmd   = app.Command("play-catalog", "Play the catalog starting at an episode")
	playCatalogIndex = playCatalogCmd.Arg("index", "Catalog index").Default("0").Int()

	nextCmd    = app.Command("next", "Play the next episode")
	prevCmd    = app.Command("prev", "Play the previous episode")
	toggleCmd  = app.Command("toggle", "Toggle play/pause")
	loopCmd    = app.Command("loop", "Toggle looping of the current episode")
	shuffleCmd = app.Command("shuffle", "Toggle shuffle")

	seekCmd     = app.Command("seek", "Seek within the current episode")
	seekSeconds = seekCmd.Arg("seconds", "Position in seconds").Required().Float64()

	subscribeCmd = app.Command("subscribe", "Subscribe to notifications")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	var opts []connect.ClientOption
	if *token != "" {
		opts = append(opts, apiconnect.WithControlToken(*token))
	}
	client := podcastrv1connect.NewPlayerServiceClient(http.DefaultClient, *server, opts...)

	ctx := context.Background()
	empty := connect.NewRequest(&podcastrv1.ControlRequest{})

	switch command {
	case statusCmd.FullCommand():
		status(ctx, client)
	case listCmd.FullCommand():
		list(ctx, client)
	case playCmd.FullCommand():
		control(client.PlayEpisode(ctx, connect.NewRequest(&podcastrv1.PlayEpisodeRequest{Index: int32(*playIndex)})))
	case playCatalogCmd.FullCommand():
		control(client.PlayCatalog(ctx, connect.NewRequest(&podcastrv1.PlayCatalogRequest{Index: int32(*playCatalogIndex)})))
	case nextCmd.FullCommand():
		control(client.Next(ctx, empty))
	case prevCmd.FullCommand():
		control(client.Previous(ctx, empty))
	case toggleCmd.FullCommand():
		control(client.TogglePlay(ctx, empty))
	case loopCmd.FullCommand():
		control(client.ToggleLoop(ctx, empty))
	case shuffleCmd.FullCommand():
		control(client.ToggleShuffle(ctx, empty))
	case seekCmd.FullCommand():
		control(client.Seek(ctx, connect.NewRequest(&podcastrv1.SeekRequest{Seconds: *seekSeconds})))
	case subscribeCmd.FullCommand():
		subscribe(ctx, client)
	}
}

func fail(err error) {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		fmt.Printf("Error [%s]: %s\n", connectErr.Code(), connectErr.Message())
	} else {
		fmt.Printf("Error: %v\n", err)
	}
	os.Exit(1)
}

func status(ctx context.Context, client podcastrv1connect.PlayerServiceClient) {
	resp, err := client.GetStatus(ctx, connect.NewRequest(&podcastrv1.GetStatusRequest{}))
	if err != nil {
		fail(err)
	}

	fmt.Printf("Session ID: %s\n", resp.Msg.SessionId)
	fmt.Printf("Catalog: %s (%d episodes)\n", resp.Msg.CatalogName, resp.Msg.CatalogSize)
	fmt.Printf("Subscribers: %d\n", resp.Msg.SubscriberCount)
	printState(resp.Msg.State)
}

func list(ctx context.Context, client podcastrv1connect.PlayerServiceClient) {
	resp, err := client.ListEpisodes(ctx, connect.NewRequest(&podcastrv1.ListEpisodesRequest{}))
	if err != nil {
		fail(err)
	}

	fmt.Printf("%s (%s)\n", resp.Msg.CatalogName, resp.Msg.Source)
	for i, ep := range resp.Msg.Episodes {
		fmt.Printf("  %3d  %s  %s", i, episode.FormatDuration(int(ep.Duration)), ep.Title)
		if ep.Members != "" {
			fmt.Printf(" - %s", ep.Members)
		}
		fmt.Println()
	}
}

func control(resp *connect.Response[podcastrv1.ControlResponse], err error) {
	if err != nil {
		fail(err)
	}
	fmt.Println(resp.Msg.Message)
	printState(resp.Msg.State)
}

func subscribe(ctx context.Context, client podcastrv1connect.PlayerServiceClient) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stream, err := client.Subscribe(ctx, connect.NewRequest(&podcastrv1.SubscribeRequest{}))
	if err != nil {
		fail(err)
	}
	defer stream.Close()

	fmt.Println("Subscribed to notifications. Press Ctrl+C to exit.")

	for stream.Receive() {
		n := stream.Msg()
		if n.Type == podcastrv1.NotificationType_NOTIFICATION_TYPE_PROGRESS {
			if n.State != nil {
				fmt.Printf("\r[%d] %s / %s", n.SequenceNo,
					episode.FormatDuration(int(n.State.Progress)), episode.FormatDuration(int(n.State.Duration)))
			}
			continue
		}
		fmt.Printf("\n[%d] === %s ===\n", n.SequenceNo, strings.TrimPrefix(n.Type.String(), "NOTIFICATION_TYPE_"))
		printState(n.State)
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		fmt.Printf("Stream error: %v\n", err)
	}
}

func printState(s *podcastrv1.PlayerState) {
	if s == nil {
		return
	}
	fmt.Printf("  Status: %s\n", s.Status)
	if s.Current != nil {
		fmt.Printf("  Episode: %s (%d/%d)\n", s.Current.Title, s.CurrentIndex+1, len(s.Queue))
		fmt.Printf("  Position: %s / %s\n", episode.FormatDuration(int(s.Progress)), episode.FormatDuration(int(s.Duration)))
	}
	fmt.Printf("  Loop: %v  Shuffle: %v\n", s.IsLooping, s.IsShuffling)
}
