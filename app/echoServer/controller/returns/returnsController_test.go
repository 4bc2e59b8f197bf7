package returns_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movierental/app/echoServer/controller/returns"
	"movierental/model"
	rs "movierental/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type svcMock struct {
	returnFn func(ctx context.Context, customerID, movieID string) (*model.Rental, []string, error)
}

var _ rs.Service = (*svcMock)(nil)

func (m *svcMock) Issue(ctx context.Context, customerID, movieID string) (*model.Rental, error) {
	return nil, nil
}

func (m *svcMock) Return(ctx context.Context, customerID, movieID string) (*model.Rental, []string, error) {
	return m.returnFn(ctx, customerID, movieID)
}

func (m *svcMock) List(ctx context.Context) ([]model.Rental, error) { return nil, nil }

// coded test error matching the service's error-code contract
type codeErr rs.ErrCode

func (e codeErr) Error() string    { return string(e) }
func (e codeErr) Code() rs.ErrCode { return rs.ErrCode(e) }

const (
	custID = "5f8a6c2e-0b5d-4a55-9f10-1f2a3b4c5d6e"
	movID  = "9d2f1c3a-7e88-4f01-b6c2-0a1b2c3d4e5f"
)

func post(t *testing.T, svc rs.Service, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := &returns.Controller{
		Svc: svc,
		V:   validator.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/returns", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Create(e.NewContext(req, rec)))
	return rec
}

func closedRental() *model.Rental {
	returned := time.Date(2018, 5, 21, 0, 0, 0, 0, time.UTC)
	fee := 12.0
	return &model.Rental{
		ID: "r-1",
		Customer: model.CustomerSnapshot{
			ID: custID, Name: "Moishe", Phone: "12345",
		},
		Movie: model.MovieSnapshot{
			ID: movID, Title: "Terminator", DailyRentalRate: 2,
		},
		DateOut:      time.Date(2018, 5, 15, 0, 0, 0, 0, time.UTC),
		DateReturned: &returned,
		RentalFee:    &fee,
	}
}

func TestCreate_MissingCustomerID(t *testing.T) {
	rec := post(t, &svcMock{}, `{"movieId":"`+movID+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreate_MissingMovieID(t *testing.T) {
	rec := post(t, &svcMock{}, `{"customerId":"`+custID+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreate_MalformedIDs(t *testing.T) {
	rec := post(t, &svcMock{}, `{"customerId":"not-a-uuid","movieId":"also-not"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreate_NoRentalFound(t *testing.T) {
	m := &svcMock{
		returnFn: func(ctx context.Context, customerID, movieID string) (*model.Rental, []string, error) {
			return nil, nil, codeErr(rs.ErrNotFound)
		},
	}
	rec := post(t, m, `{"customerId":"`+custID+`","movieId":"`+movID+`"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreate_AlreadyProcessed(t *testing.T) {
	m := &svcMock{
		returnFn: func(ctx context.Context, customerID, movieID string) (*model.Rental, []string, error) {
			return nil, nil, codeErr(rs.ErrAlreadyReturned)
		},
	}
	rec := post(t, m, `{"customerId":"`+custID+`","movieId":"`+movID+`"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreate_RepositoryFailure(t *testing.T) {
	m := &svcMock{
		returnFn: func(ctx context.Context, customerID, movieID string) (*model.Rental, []string, error) {
			return nil, nil, codeErr("") // uncoded: internal
		},
	}
	rec := post(t, m, `{"customerId":"`+custID+`","movieId":"`+movID+`"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "internal error", body["message"], "internal detail must never leak")
}

func TestCreate_Success_ExactKeys(t *testing.T) {
	m := &svcMock{
		returnFn: func(ctx context.Context, customerID, movieID string) (*model.Rental, []string, error) {
			require.Equal(t, custID, customerID)
			require.Equal(t, movID, movieID)
			return closedRental(), nil, nil
		},
	}
	rec := post(t, m, `{"customerId":"`+custID+`","movieId":"`+movID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.ElementsMatch(t,
		[]string{"customer", "movie", "dateOut", "dateReturned", "rentalFee"},
		keys(body))
	require.Equal(t, 12.0, body["rentalFee"])
}

func TestCreate_DegradedSuccess_CarriesWarning(t *testing.T) {
	m := &svcMock{
		returnFn: func(ctx context.Context, customerID, movieID string) (*model.Rental, []string, error) {
			return closedRental(), []string{rs.WarnRestockFailed}, nil
		},
	}
	rec := post(t, m, `{"customerId":"`+custID+`","movieId":"`+movID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, keys(body), "warnings")
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
