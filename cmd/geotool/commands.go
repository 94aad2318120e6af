package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"trustscore/config"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/policy"
	"trustscore/internal/domain/service"
	"trustscore/internal/infra/google/maps"

	"github.com/pkg/errors"
)

func runDistance(w io.Writer, from, to string) error {
	a, err := parsePoint(from)
	if err != nil {
		return errors.Wrap(err, "-from")
	}
	b, err := parsePoint(to)
	if err != nil {
		return errors.Wrap(err, "-to")
	}

	return writeJSON(w, map[string]any{
		"from":            a,
		"to":              b,
		"distance_meters": geo.Distance(a, b),
		"bearing":         geo.Bearing(a, b),
	})
}

func runDecide(w io.Writer, distance, accuracy float64) error {
	if distance < 0 {
		return errors.New("-distance is required")
	}

	var acc *float64
	if accuracy >= 0 {
		acc = &accuracy
	}

	return writeJSON(w, map[string]any{
		"distance_meters": distance,
		"device_accuracy": acc,
		"outcome":         policy.Decide(distance, acc),
	})
}

func runGeocode(ctx context.Context, w io.Writer, address string) error {
	if strings.TrimSpace(address) == "" {
		return errors.New("-address is required")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	point, err := maps.NewGeocoder(cfg, &http.Client{}, cliLogger()).Geocode(ctx, address)
	if err != nil {
		return err
	}

	return writeJSON(w, map[string]any{"address": address, "point": point})
}

func runPanorama(ctx context.Context, w io.Writer, at string, radius float64) error {
	point, err := parsePoint(at)
	if err != nil {
		return errors.Wrap(err, "-at")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	locator := maps.NewPanoramaLocator(cfg, &http.Client{}, cliLogger())
	pano, found, err := locator.Locate(ctx, service.PanoramaQuery{Near: point, RadiusMeters: radius})
	if err != nil {
		return err
	}

	return writeJSON(w, map[string]any{"found": found, "panorama": pano})
}

// parsePoint reads "lat,lng"
func parsePoint(s string) (geo.Point, error) {
	latRaw, lngRaw, ok := strings.Cut(s, ",")
	if !ok {
		return geo.Point{}, errors.Errorf("%q is not lat,lng", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return geo.Point{}, errors.Wrap(err, "latitude")
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil {
		return geo.Point{}, errors.Wrap(err, "longitude")
	}

	point := geo.NewPoint(lat, lng)
	if !point.Valid() {
		return geo.Point{}, errors.Errorf("%q is out of range", s)
	}

	return point, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}

func cliLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}
