package router

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trustscore/config"
	"trustscore/internal/delivery/http/middleware"
	"trustscore/internal/delivery/http/router/handler"
	"trustscore/internal/delivery/http/validator"
	"trustscore/internal/domain/entity"
	domainerrors "trustscore/internal/domain/errors"
	"trustscore/internal/domain/geo"
	"trustscore/internal/domain/policy"
	"trustscore/internal/domain/service"
	mockService "trustscore/internal/mocks/service"
	mockUsecase "trustscore/internal/mocks/usecase"
	"trustscore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const maxUpload = 64

type fixture struct {
	e            *echo.Echo
	identity     *mockUsecase.MockIdentityUsecase
	location     *mockUsecase.MockLocationUsecase
	verification *mockUsecase.MockVerificationUsecase
	document     *mockUsecase.MockDocumentUsecase
	sessions     *mockService.MockSessionService
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		e:            echo.New(),
		identity:     mockUsecase.NewMockIdentityUsecase(t),
		location:     mockUsecase.NewMockLocationUsecase(t),
		verification: mockUsecase.NewMockVerificationUsecase(t),
		document:     mockUsecase.NewMockDocumentUsecase(t),
		sessions:     mockService.NewMockSessionService(t),
	}

	cfg := &config.Config{Upload: &config.UploadConfig{MaxSizeBytes: maxUpload}}
	logger := slog.Default()

	f.e.Validator = validator.New()
	f.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		IdentityHandler:     handler.NewIdentityHandler(handler.IdentityHandlerParams{IdentityUC: f.identity, Logger: logger}),
		LocationHandler:     handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: f.location, Logger: logger}),
		VerificationHandler: handler.NewVerificationHandler(handler.VerificationHandlerParams{VerificationUC: f.verification, Logger: logger}),
		DocumentHandler:     handler.NewDocumentHandler(handler.DocumentHandlerParams{DocumentUC: f.document, Config: cfg, Logger: logger}),
		SessionMiddleware:   middleware.NewSessionMiddleware(f.sessions),
	}).RegisterRoutes(f.e)

	return f
}

func (f *fixture) do(t *testing.T, method, path, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (f *fixture) withSession(subjectID string) {
	f.sessions.EXPECT().Validate("token").Return(&service.SessionClaims{SubjectID: subjectID}, nil)
}

func sampleRecord() *entity.VerificationRecord {
	accuracy := 30.0

	return &entity.VerificationRecord{
		ID:             uuid.MustParse("0b8a3c2e-8f0e-4c61-9f3a-5d2b7e0c1a11"),
		SubjectID:      "22222222222",
		InputAddress:   "12 Allen Avenue, Ikeja, Lagos",
		AddressPoint:   geo.NewPoint(6.5244, 3.3792),
		DevicePoint:    geo.NewPoint(6.5248, 3.3795),
		DeviceAccuracy: &accuracy,
		PanoramaPoint:  geo.NewPoint(6.5245, 3.3793),
		PanoramaFound:  true,
		DistanceMeters: 55.1,
		Outcome:        policy.OutcomePending,
		CreatedAt:      time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec, env := f.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestVerifyKYC(t *testing.T) {
	t.Run("missing bvn never reaches the provider", func(t *testing.T) {
		f := newFixture(t)

		rec, env := f.do(t, http.MethodPost, "/verifykyc", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "bvn")
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.identity.EXPECT().VerifyBVN(mock.Anything, "22222222222").Return(&usecase.IdentityVerification{
			Profile:      &entity.IdentityProfile{BVN: "22222222222", FirstName: "Ada"},
			SessionToken: "signed",
		}, nil)

		rec, env := f.do(t, http.MethodPost, "/verifykyc", `{"bvn":"22222222222"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var data usecase.IdentityVerification
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "signed", data.SessionToken)
		assert.Equal(t, "Ada", data.Profile.FirstName)
	})

	t.Run("unknown bvn", func(t *testing.T) {
		f := newFixture(t)
		f.identity.EXPECT().VerifyBVN(mock.Anything, "22222222222").
			Return(nil, domainerrors.ErrIdentityNotFound.WrapMessage("lookup"))

		rec, env := f.do(t, http.MethodPost, "/verifykyc", `{"bvn":"22222222222"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "IDENTITY_NOT_FOUND", env.Error.Code)
	})
}

func TestGeocode(t *testing.T) {
	t.Run("empty address", func(t *testing.T) {
		f := newFixture(t)

		rec, env := f.do(t, http.MethodPost, "/geocode", `{"street":"  "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("structured claim", func(t *testing.T) {
		f := newFixture(t)
		f.location.EXPECT().GeocodeAddress(mock.Anything, mock.MatchedBy(func(in *usecase.GeocodeInput) bool {
			return in.Address == "" && in.Claim.Flatten() == "12 Allen Avenue, Ikeja, Lagos"
		})).Return(&usecase.GeocodeResult{Address: "12 Allen Ave", Point: geo.NewPoint(6.5244, 3.3792)}, nil)

		rec, env := f.do(t, http.MethodPost, "/geocode",
			`{"house_number":"12","street":"Allen Avenue","city":"Ikeja","state":"Lagos"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var data usecase.GeocodeResult
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, geo.NewPoint(6.5244, 3.3792), data.Point)
	})

	t.Run("provider failure", func(t *testing.T) {
		f := newFixture(t)
		f.location.EXPECT().GeocodeAddress(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrResolutionFailed.WrapMessage("geocode"))

		rec, env := f.do(t, http.MethodPost, "/geocode", `{"address":"nowhere"}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "RESOLUTION_FAILED", env.Error.Code)
	})
}

func TestSearchLocation(t *testing.T) {
	t.Run("missing lng", func(t *testing.T) {
		f := newFixture(t)

		rec, env := f.do(t, http.MethodPost, "/search-location", `{"lat":6.5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, env.Error.Details, "lng")
	})

	t.Run("zero coordinates are present, not missing", func(t *testing.T) {
		f := newFixture(t)
		f.location.EXPECT().SearchPanorama(mock.Anything, mock.MatchedBy(func(in *usecase.PanoramaSearchInput) bool {
			return in.Point == geo.NewPoint(0, 0) && in.Heading == nil
		})).Return(&usecase.PanoramaSearchResult{Location: geo.NewPoint(0, 0)}, nil)

		rec, _ := f.do(t, http.MethodPost, "/search-location", `{"lat":0,"lng":0}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("camera fields pass through", func(t *testing.T) {
		f := newFixture(t)
		f.location.EXPECT().SearchPanorama(mock.Anything, mock.MatchedBy(func(in *usecase.PanoramaSearchInput) bool {
			return in.Heading != nil && *in.Heading == 90 &&
				in.Pitch != nil && *in.Pitch == 5 &&
				in.FieldOfView != nil && *in.FieldOfView == 80 &&
				in.RadiusMeters == 100
		})).Return(&usecase.PanoramaSearchResult{
			PanoramaFound: true,
			Location:      geo.NewPoint(6.5245, 3.3793),
			Heading:       90,
			EmbedURL:      "https://embed",
		}, nil)

		rec, env := f.do(t, http.MethodPost, "/search-location",
			`{"lat":6.5244,"lng":3.3792,"heading":90,"pitch":5,"fov":80,"radius":100}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var data usecase.PanoramaSearchResult
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.True(t, data.PanoramaFound)
		assert.Equal(t, "https://embed", data.EmbedURL)
	})
}

func TestConfirmCapture(t *testing.T) {
	f := newFixture(t)
	f.location.EXPECT().ConfirmCapture(mock.Anything, geo.NewPoint(6.5245, 3.3793), 0.0).Return(&usecase.CaptureResult{
		PanoramaPoint: geo.NewPoint(6.5245, 3.3793),
		ImageURL:      "https://static",
	}, nil)

	rec, env := f.do(t, http.MethodPost, "/confirm-capture", `{"pano_lat":6.5245,"pano_lng":3.3793}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var data handler.CaptureResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, handler.CaptureResponse{PanoLat: 6.5245, PanoLng: 3.3793, ImageURL: "https://static"}, data)
}

func TestVerifyAddress(t *testing.T) {
	const body = `{"input_address":"12 Allen Avenue","device_lat":6.5248,"device_lng":3.3795,"device_accuracy":30}`

	t.Run("requires a session", func(t *testing.T) {
		f := newFixture(t)

		rec, env := f.do(t, http.MethodPost, "/verify-address", body)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "SESSION_INVALID", env.Error.Code)
	})

	t.Run("subject comes from the session", func(t *testing.T) {
		f := newFixture(t)
		f.withSession("22222222222")
		f.verification.EXPECT().VerifyAddress(mock.Anything, mock.MatchedBy(func(in *usecase.VerifyAddressInput) bool {
			return in.SubjectID == "22222222222" &&
				in.DevicePoint == geo.NewPoint(6.5248, 3.3795) &&
				in.DeviceAccuracy != nil && *in.DeviceAccuracy == 30 &&
				in.PanoramaPoint == nil
		})).Return(sampleRecord(), nil)

		rec, env := f.do(t, http.MethodPost, "/verify-address", body, echo.HeaderAuthorization, "Bearer token")

		assert.Equal(t, http.StatusCreated, rec.Code)
		var data entity.VerificationRecord
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, policy.OutcomePending, data.Outcome)
	})

	t.Run("panorama point must be complete", func(t *testing.T) {
		f := newFixture(t)
		f.withSession("22222222222")

		rec, env := f.do(t, http.MethodPost, "/verify-address",
			`{"input_address":"x","device_lat":1,"device_lng":1,"pano_lat":1}`,
			echo.HeaderAuthorization, "Bearer token")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("negative accuracy", func(t *testing.T) {
		f := newFixture(t)
		f.withSession("22222222222")

		rec, _ := f.do(t, http.MethodPost, "/verify-address",
			`{"input_address":"x","device_lat":1,"device_lng":1,"device_accuracy":-1}`,
			echo.HeaderAuthorization, "Bearer token")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVerifications(t *testing.T) {
	record := sampleRecord()

	t.Run("get by id", func(t *testing.T) {
		f := newFixture(t)
		f.withSession("22222222222")
		f.verification.EXPECT().GetVerification(mock.Anything, record.ID, "22222222222").Return(record, nil)

		rec, _ := f.do(t, http.MethodGet, "/verifications/"+record.ID.String(), "", echo.HeaderAuthorization, "Bearer token")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("get by id requires a session", func(t *testing.T) {
		f := newFixture(t)

		rec, env := f.do(t, http.MethodGet, "/verifications/"+record.ID.String(), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "SESSION_INVALID", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), record.SubjectID)
		assert.NotContains(t, rec.Body.String(), record.InputAddress)
	})

	t.Run("another subject's record is not found", func(t *testing.T) {
		f := newFixture(t)
		f.withSession("33333333333")
		f.verification.EXPECT().GetVerification(mock.Anything, record.ID, "33333333333").
			Return(nil, domainerrors.ErrVerificationNotFound)

		rec, env := f.do(t, http.MethodGet, "/verifications/"+record.ID.String(), "", echo.HeaderAuthorization, "Bearer token")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "VERIFICATION_NOT_FOUND", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), record.SubjectID)
	})

	t.Run("invalid id", func(t *testing.T) {
		f := newFixture(t)
		f.withSession("22222222222")

		rec, env := f.do(t, http.MethodGet, "/verifications/not-a-uuid", "", echo.HeaderAuthorization, "Bearer token")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("list for session subject", func(t *testing.T) {
		f := newFixture(t)
		f.withSession("22222222222")
		f.verification.EXPECT().ListSubjectVerifications(mock.Anything, "22222222222", 10).
			Return([]*entity.VerificationRecord{record}, nil)

		rec, env := f.do(t, http.MethodGet, "/verifications?limit=10", "", echo.HeaderAuthorization, "Bearer token")

		assert.Equal(t, http.StatusOK, rec.Code)
		var data []entity.VerificationRecord
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Len(t, data, 1)
	})

	t.Run("list rejects bad limit", func(t *testing.T) {
		f := newFixture(t)
		f.withSession("22222222222")

		rec, _ := f.do(t, http.MethodGet, "/verifications?limit=0", "", echo.HeaderAuthorization, "Bearer token")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReceipts(t *testing.T) {
	record := sampleRecord()

	t.Run("png", func(t *testing.T) {
		f := newFixture(t)
		f.withSession("22222222222")
		f.verification.EXPECT().GenerateReceipt(mock.Anything, record.ID, "22222222222").Return([]byte("\x89PNG"), nil)

		rec, _ := f.do(t, http.MethodGet, "/verifications/"+record.ID.String()+"/receipt", "",
			echo.HeaderAuthorization, "Bearer token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "\x89PNG", rec.Body.String())
	})

	t.Run("png requires a session", func(t *testing.T) {
		f := newFixture(t)

		rec, _ := f.do(t, http.MethodGet, "/verifications/"+record.ID.String()+"/receipt", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("verify payload", func(t *testing.T) {
		f := newFixture(t)
		f.verification.EXPECT().VerifyReceipt(mock.Anything, `{"type":"verification_receipt"}`).Return(&usecase.ReceiptCheck{
			VerificationID: record.ID,
			Outcome:        record.Outcome,
			RecordedAt:     record.CreatedAt,
			Matches:        true,
		}, nil)

		rec, env := f.do(t, http.MethodPost, "/receipts/verify", `{"payload":"{\"type\":\"verification_receipt\"}"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var data usecase.ReceiptCheck
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.True(t, data.Matches)
		assert.NotContains(t, rec.Body.String(), "subject_id")
		assert.NotContains(t, rec.Body.String(), "device_point")
	})

	t.Run("invalid payload", func(t *testing.T) {
		f := newFixture(t)
		f.verification.EXPECT().VerifyReceipt(mock.Anything, "junk").Return(nil, domainerrors.ErrReceiptInvalid)

		rec, env := f.do(t, http.MethodPost, "/receipts/verify", `{"payload":"junk"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "RECEIPT_INVALID", env.Error.Code)
	})
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestUpload(t *testing.T) {
	for _, path := range []string{"/upload", "/upload-utility-bill"} {
		t.Run(path, func(t *testing.T) {
			f := newFixture(t)
			f.document.EXPECT().ExtractText(mock.Anything, "bill.png", []byte("image")).
				Return([]string{"NEPA BILL\n12 Allen Avenue", "NEPA", "BILL"}, nil)

			body, contentType := multipartBody(t, "file", "bill.png", []byte("image"))
			req := httptest.NewRequest(http.MethodPost, path, body)
			req.Header.Set(echo.HeaderContentType, contentType)
			rec := httptest.NewRecorder()
			f.e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			var env envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			var data handler.ExtractTextResponse
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, "NEPA", data.Text[1])
		})
	}

	t.Run("missing file", func(t *testing.T) {
		f := newFixture(t)

		body, contentType := multipartBody(t, "", "", nil)
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		f.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("too large", func(t *testing.T) {
		f := newFixture(t)

		body, contentType := multipartBody(t, "file", "bill.png", bytes.Repeat([]byte("x"), maxUpload+1))
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		f.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
