package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/gymtrack/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override gymtrack config path (optional)")
	envFile := flag.String("env", "", "dotenv file with GYMTRACK_* overrides (optional, defaults to ./.env)")
	apiURL := flag.String("api", "", "API base URL, overrides config and environment (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	list := flag.Bool("list", false, "print members, or the workouts of -member, and exit")
	member := flag.String("member", "", "member id for -list")
	demo := flag.Bool("demo", false, "run against an in-memory backend with sample data")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		EnvFile:    *envFile,
		PrefsPath:  *prefsPath,
		APIURL:     *apiURL,
		List:       *list,
		MemberID:   *member,
		Demo:       *demo,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "gymtrack: %v\n", err)
		return 1
	}
	return 0
}
