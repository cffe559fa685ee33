// Command auctionctl drives a running scheduler over HTTP.
//
//	auctionctl token -subject ops
//	auctionctl init -master <id> [-date YYYY-MM-DD]
//	auctionctl progress|reset|reconcile|list [-date YYYY-MM-DD]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-scheduler/internal/client"
	"auction-scheduler/internal/pkg/jwt"

	"github.com/joho/godotenv"
)

const defaultURL = "http://localhost:8080"

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "token":
		err = runToken(rest, stdout)
	case "init":
		err = runInit(ctx, rest, stdout)
	case "progress":
		err = runProgress(ctx, rest, stdout)
	case "reset":
		err = runReset(ctx, rest, stdout)
	case "reconcile":
		err = runReconcile(ctx, rest, stdout)
	case "list":
		err = runList(ctx, rest, stdout)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		usage(stderr)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 2
	default:
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: auctionctl <token|init|progress|reset|reconcile|list> [flags]")
	fmt.Fprintln(w, "  AUCTIONCTL_URL   scheduler base url (default "+defaultURL+")")
	fmt.Fprintln(w, "  AUCTIONCTL_TOKEN operator bearer token")
	fmt.Fprintln(w, "  JWT_SECRET       signing secret for the token command")
}

type commonFlags struct {
	url   string
	token string
	date  string
}

func newFlagSet(name string, c *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&c.url, "url", envOr("AUCTIONCTL_URL", defaultURL), "scheduler base url")
	fs.StringVar(&c.token, "token", os.Getenv("AUCTIONCTL_TOKEN"), "operator bearer token")
	fs.StringVar(&c.date, "date", "", "target date YYYY-MM-DD (default: server today)")
	return fs
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runToken(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := fs.String("subject", "auctionctl", "operator the token is issued to")
	secret := fs.String("secret", os.Getenv("JWT_SECRET"), "signing secret")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *secret == "" {
		return errors.New("JWT_SECRET or -secret is required")
	}

	token, err := jwt.NewService(*secret, *ttl).GenerateToken(*subject)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, token)
	return nil
}

func runInit(ctx context.Context, args []string, stdout io.Writer) error {
	var c commonFlags
	fs := newFlagSet("init", &c)
	master := fs.String("master", "", "auction master id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := client.New(c.url, c.token).InitializeDay(ctx, c.date, *master)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "initialized %s\n", res.Date)
	return renderSlots(stdout, res.Slots)
}

func runProgress(ctx context.Context, args []string, stdout io.Writer) error {
	var c commonFlags
	if err := newFlagSet("progress", &c).Parse(args); err != nil {
		return err
	}

	res, err := client.New(c.url, c.token).ProgressRound(ctx, c.date)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "progressed %s\n", res.Date)
	return renderSlots(stdout, nonNil(res.Completed, res.Live, res.NewUpcoming))
}

func runReset(ctx context.Context, args []string, stdout io.Writer) error {
	var c commonFlags
	if err := newFlagSet("reset", &c).Parse(args); err != nil {
		return err
	}

	res, err := client.New(c.url, c.token).ResetDay(ctx, c.date)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "reset %s: %d stale completed, %d deleted\n", res.Date, res.UpdatedCount, res.DeletedCount)
	return nil
}

func runReconcile(ctx context.Context, args []string, stdout io.Writer) error {
	var c commonFlags
	if err := newFlagSet("reconcile", &c).Parse(args); err != nil {
		return err
	}

	res, err := client.New(c.url, c.token).ReconcileDay(ctx, c.date)
	if err != nil {
		return err
	}
	if !res.Changed {
		fmt.Fprintf(stdout, "reconciled %s: nothing to repair\n", res.Date)
		return nil
	}
	fmt.Fprintf(stdout, "reconciled %s\n", res.Date)
	return renderSlots(stdout, append(res.Completed, nonNil(res.Promoted, res.Appended)...))
}

func runList(ctx context.Context, args []string, stdout io.Writer) error {
	var c commonFlags
	if err := newFlagSet("list", &c).Parse(args); err != nil {
		return err
	}

	res, err := client.New(c.url, c.token).CurrentAuctions(ctx, c.date)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %d auctions\n", res.Date, res.Count)
	return renderSlots(stdout, res.Auctions)
}
