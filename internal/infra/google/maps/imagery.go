package maps

import (
	"net/url"
	"strconv"
	"strings"

	"trustscore/config"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/service"
)

type imageryURLBuilder struct {
	apiKey     string
	imageSize  string
	staticBase string
	embedBase  string
}

// NewImageryURLBuilder creates the Street View URL builder. It performs no I/O.
func NewImageryURLBuilder(cfg *config.Config) service.ImageryURLBuilder {
	return &imageryURLBuilder{
		apiKey:     cfg.Google.APIKey,
		imageSize:  cfg.Google.ImageSize,
		staticBase: orDefault(cfg.Google.StreetViewBaseURL, DefaultStreetViewBaseURL),
		embedBase:  orDefault(cfg.Google.EmbedBaseURL, DefaultEmbedBaseURL),
	}
}

type queryParam struct{ key, value string }

// StaticImageURL leaves the key out; records, events and the archive keep this form.
func (b *imageryURLBuilder) StaticImageURL(point geo.Point, params service.ImageParams) string {
	values := append([]queryParam{{"size", b.imageSize}}, cameraParams(point, params)...)

	return b.staticBase + "?" + encodeQuery(values)
}

func (b *imageryURLBuilder) EmbedURL(point geo.Point, params service.ImageParams) string {
	values := append([]queryParam{{"key", b.apiKey}}, cameraParams(point, params)...)

	return b.embedBase + "?" + encodeQuery(values)
}

func (b *imageryURLBuilder) WithAPIKey(rawURL string) string {
	if rawURL == "" || b.apiKey == "" {
		return rawURL
	}

	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}

	return rawURL + sep + encodeQuery([]queryParam{{"key", b.apiKey}})
}

func cameraParams(point geo.Point, params service.ImageParams) []queryParam {
	return []queryParam{
		{"location", point.String()},
		{"heading", formatFloat(params.Heading)},
		{"pitch", formatFloat(params.Pitch)},
		{"fov", formatFloat(params.FieldOfView)},
	}
}

// encodeQuery keeps parameter order fixed so the same inputs always yield the same URL.
func encodeQuery(values []queryParam) string {
	out := make([]byte, 0, 160)
	for i, kv := range values {
		if i > 0 {
			out = append(out, '&')
		}
		out = append(out, url.QueryEscape(kv.key)...)
		out = append(out, '=')
		out = append(out, url.QueryEscape(kv.value)...)
	}

	return string(out)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
