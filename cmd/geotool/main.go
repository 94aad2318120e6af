package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - distance: Great-circle distance between two points
// - decide:   Verification outcome for a distance and accuracy
// - geocode:  Resolve an address through the configured geocoder
// - panorama: Find Street View coverage near a point

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := runSubcommand(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, name string, args []string) error {
	switch name {
	case "distance":
		return handleDistance(args)
	case "decide":
		return handleDecide(args)
	case "geocode":
		return handleGeocode(ctx, args)
	case "panorama":
		return handlePanorama(ctx, args)
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", name)
	}
}

func handleDistance(args []string) error {
	cmd := flag.NewFlagSet("distance", flag.ContinueOnError)
	from := cmd.String("from", "", "First point as lat,lng")
	to := cmd.String("to", "", "Second point as lat,lng")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse distance flags")
	}

	return runDistance(os.Stdout, *from, *to)
}

func handleDecide(args []string) error {
	cmd := flag.NewFlagSet("decide", flag.ContinueOnError)
	distance := cmd.Float64("distance", -1, "Distance between address and device in meters")
	accuracy := cmd.Float64("accuracy", -1, "Device accuracy in meters; negative means not reported")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse decide flags")
	}

	return runDecide(os.Stdout, *distance, *accuracy)
}

func handleGeocode(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("geocode", flag.ContinueOnError)
	address := cmd.String("address", "", "Address to resolve")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse geocode flags")
	}

	return runGeocode(ctx, os.Stdout, *address)
}

func handlePanorama(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("panorama", flag.ContinueOnError)
	at := cmd.String("at", "", "Point as lat,lng")
	radius := cmd.Float64("radius", 0, "Search radius in meters; 0 uses the configured default")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse panorama flags")
	}

	return runPanorama(ctx, os.Stdout, *at, *radius)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: geotool <command> [flags]

Commands:
  distance  -from lat,lng -to lat,lng
  decide    -distance meters [-accuracy meters]
  geocode   -address "12 Allen Avenue, Ikeja, Lagos"
  panorama  -at lat,lng [-radius meters]

geocode and panorama read config/config.yaml and its environment overrides.`)
}
