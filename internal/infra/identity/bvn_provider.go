// Package identity looks up BVN holders through a Dojah-compatible KYC API.
package identity

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trustscore/config"
	"trustscore/internal/domain/entity"
	"trustscore/internal/domain/errors"
	"trustscore/internal/domain/service"
)

const bvnLookupPath = "/api/v1/kyc/bvn/full"

type bvnResponse struct {
	Entity *struct {
		BVN          string `json:"bvn"`
		FirstName    string `json:"first_name"`
		MiddleName   string `json:"middle_name"`
		LastName     string `json:"last_name"`
		DateOfBirth  string `json:"date_of_birth"`
		PhoneNumber1 string `json:"phone_number1"`
		Gender       string `json:"gender"`
		Image        string `json:"image"`
	} `json:"entity"`
	Error string `json:"error,omitempty"`
}

type bvnProvider struct {
	baseURL    string
	appID      string
	secretKey  string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewBVNProvider creates an IdentityProvider from the identity configuration.
func NewBVNProvider(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) service.IdentityProvider {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &bvnProvider{
		baseURL:    strings.TrimRight(cfg.Identity.BaseURL, "/"),
		appID:      cfg.Identity.AppID,
		secretKey:  cfg.Identity.SecretKey,
		timeout:    cfg.Identity.Timeout,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (p *bvnProvider) LookupBVN(ctx context.Context, bvn string) (*entity.IdentityProfile, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	reqURL := p.baseURL + bvnLookupPath + "?" + url.Values{"bvn": {bvn}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.ErrIdentityLookupFailed.Wrap(err, "build bvn request")
	}
	req.Header.Set("AppId", p.appID)
	req.Header.Set("Authorization", p.secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.ErrIdentityLookupFailed.Wrap(err, "bvn request")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.ErrIdentityNotFound
	case resp.StatusCode != http.StatusOK:
		p.logger.Warn("Identity provider returned non-success status", slog.Int("status", resp.StatusCode))

		return nil, errors.ErrIdentityLookupFailed.WithDetails(http.StatusText(resp.StatusCode))
	}

	var body bvnResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.ErrIdentityLookupFailed.Wrap(err, "decode bvn response")
	}

	if body.Entity == nil {
		return nil, errors.ErrIdentityNotFound
	}

	return &entity.IdentityProfile{
		BVN:         body.Entity.BVN,
		FirstName:   body.Entity.FirstName,
		MiddleName:  body.Entity.MiddleName,
		LastName:    body.Entity.LastName,
		DateOfBirth: body.Entity.DateOfBirth,
		PhoneNumber: body.Entity.PhoneNumber1,
		Gender:      body.Entity.Gender,
		PhotoBase64: body.Entity.Image,
	}, nil
}
