package server_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"gift_bot/internal/domain"
	"gift_bot/internal/domain/entity"
	"gift_bot/internal/domain/service/matcher"
	"gift_bot/internal/domain/value"
	"gift_bot/internal/server"
	"gift_bot/pkg/errcodes"
	"gift_bot/pkg/middlewarex"
	"gift_bot/pkg/rest"
	"gift_bot/pkg/tests"
)

const token = "secret"

type catalogStub struct {
	gifts map[int64]entity.Gift
	stats entity.CatalogStats
	err   error
}

func (c catalogStub) Get(_ context.Context, id int64) (*entity.Gift, error) {
	if c.err != nil {
		return nil, c.err
	}
	g, ok := c.gifts[id]
	if !ok {
		return nil, domain.NewError(errcodes.GiftNotFound, "gift not found")
	}
	return &g, nil
}

func (c catalogStub) Stats(context.Context) (entity.CatalogStats, error) {
	return c.stats, c.err
}

type importerStub struct {
	outcome entity.ImportOutcome
	err     error
	name    string
	body    string
}

func (i *importerStub) Submit(_ context.Context, filename string, r io.Reader) (entity.ImportOutcome, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return entity.ImportOutcome{}, err
	}
	i.name, i.body = filename, string(data)
	return i.outcome, i.err
}

type selectionsStub struct {
	byUser  map[int64][]entity.Selection
	groups  entity.CategorizedGifts
	matched *value.Criteria
}

func (s selectionsStub) ListByUser(_ context.Context, userID int64) ([]entity.Selection, error) {
	return s.byUser[userID], nil
}

func (s selectionsStub) Match(_ context.Context, criteria value.Criteria) (entity.CategorizedGifts, error) {
	if s.matched != nil {
		*s.matched = criteria
	}
	return s.groups, nil
}

// newAPI клиент без токена, authorized добавляет токен администратора.
func newAPI(t *testing.T, catalog catalogStub, importer *importerStub, selections selectionsStub) tests.APIClient {
	t.Helper()

	srv := server.NewServer(
		server.NewCatalogServer(catalog, importer),
		server.NewSelectionServer(selections, selections),
		token,
	)

	r := chi.NewRouter()
	r.Use(middlewarex.TraceID)
	srv.RegisterRoutes(r)

	httpServer := httptest.NewServer(r)
	t.Cleanup(httpServer.Close)

	return tests.NewAPIClient(httpServer.URL, httpServer.Client())
}

func authorized(api tests.APIClient) tests.APIClient {
	return api.WithBearerToken(token)
}

func TestAuth(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		headers http.Header
		status  int
	}{
		{name: "no header", headers: http.Header{}, status: http.StatusUnauthorized},
		{name: "wrong token", headers: http.Header{"Authorization": []string{"Bearer nope"}}, status: http.StatusUnauthorized},
		{name: "not bearer", headers: http.Header{"Authorization": []string{"Basic " + token}}, status: http.StatusUnauthorized},
		{name: "valid token", headers: http.Header{"Authorization": []string{"Bearer " + token}}, status: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			api := newAPI(t, catalogStub{}, &importerStub{}, selectionsStub{})

			var errResp rest.Error
			resp, err := api.Get(context.Background(), "/v1/catalog/stats", tc.headers, nil, &errResp)
			rq.NoError(err)
			rq.Equal(tc.status, resp.StatusCode)

			if tc.status == http.StatusUnauthorized {
				rq.Equal(rest.ErrorCode(errcodes.Unauthorized), errResp.Code)
			}
		})
	}
}

func TestGetGift(t *testing.T) {
	t.Parallel()

	catalog := catalogStub{gifts: map[int64]entity.Gift{
		7: {
			ID:         7,
			Name:       "Кружка",
			Category:   "Дом",
			Price:      990,
			TrendScore: 5,
			Recipients: value.RecipientFlags{value.RecipientMother: true, value.RecipientFriend: true},
		},
	}}

	testCases := []struct {
		name   string
		path   string
		status int
		code   failure.ErrorCode
	}{
		{name: "found", path: "/v1/gifts/7", status: http.StatusOK},
		{name: "missing", path: "/v1/gifts/8", status: http.StatusNotFound, code: errcodes.GiftNotFound},
		{name: "not a number", path: "/v1/gifts/abc", status: http.StatusBadRequest, code: errcodes.InvalidGiftID},
		{name: "zero", path: "/v1/gifts/0", status: http.StatusBadRequest, code: errcodes.InvalidGiftID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			api := authorized(newAPI(t, catalog, &importerStub{}, selectionsStub{}))

			var (
				gift    rest.Gift
				errResp rest.Error
			)
			resp, err := api.Get(context.Background(), tc.path, nil, &gift, &errResp)
			rq.NoError(err)
			rq.Equal(tc.status, resp.StatusCode)

			if tc.status != http.StatusOK {
				rq.Equal(rest.ErrorCode(tc.code), errResp.Code)
				return
			}

			rq.Equal(int64(7), gift.ID)
			rq.Equal("Кружка", gift.Name)
			rq.Equal([]string{"friend", "mother"}, gift.Recipients)
		})
	}
}

func TestGetGiftInternalError(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	api := authorized(newAPI(t, catalogStub{err: errors.New("db down")}, &importerStub{}, selectionsStub{}))

	var errResp rest.Error
	resp, err := api.Get(context.Background(), "/v1/gifts/1", nil, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusInternalServerError, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.InternalServerError), errResp.Code)
}

func TestGetCatalogStats(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	catalog := catalogStub{stats: entity.CatalogStats{
		TotalUsers:        3,
		TotalSelections:   5,
		TotalGifts:        40,
		TotalCategories:   6,
		PopularCategories: []entity.CategoryUsage{{Category: "Дом", Count: 4}},
		PriceDistribution: []entity.PriceBucket{
			{Label: "до 1000₽", Max: 1000, Count: 10},
			{Label: "от 5000₽", Min: 5000, Count: 2},
		},
		DailyActivity: []entity.DayCount{{Day: "2024-03-08", Count: 2}},
	}}

	api := authorized(newAPI(t, catalog, &importerStub{}, selectionsStub{}))

	var stats rest.CatalogStats
	resp, err := api.Get(context.Background(), "/v1/catalog/stats", nil, &stats, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Equal(int64(40), stats.TotalGifts)
	rq.Equal([]rest.CategoryUsage{{Category: "Дом", Count: 4}}, stats.PopularCategories)
	rq.Equal(map[string]int64{"до 1000₽": 10, "от 5000₽": 2}, stats.PriceDistribution)
	rq.Equal([]rest.DayCount{{Day: "2024-03-08", Count: 2}}, stats.DailyActivity)
}

func multipartBody(t *testing.T, field, filename, content string) (io.Reader, http.Header) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	headers := http.Header{}
	headers.Set("Content-Type", mw.FormDataContentType())

	return &buf, headers
}

func TestPostCatalogImport(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		field    string
		filename string
		importer *importerStub
		status   int
		code     failure.ErrorCode
		expected rest.ImportResult
	}{
		{
			name:     "inline import",
			field:    "file",
			filename: "gifts.xlsx",
			importer: &importerStub{outcome: entity.ImportOutcome{Report: entity.ImportReport{Imported: 10, Skipped: 2}}},
			status:   http.StatusOK,
			expected: rest.ImportResult{Imported: 10, Skipped: 2},
		},
		{
			name:     "queued import",
			field:    "file",
			filename: "gifts.xlsx",
			importer: &importerStub{outcome: entity.ImportOutcome{Queued: true, TaskID: "t-1"}},
			status:   http.StatusAccepted,
			expected: rest.ImportResult{Queued: true, TaskID: "t-1"},
		},
		{
			name:     "wrong field",
			field:    "document",
			filename: "gifts.xlsx",
			importer: &importerStub{},
			status:   http.StatusBadRequest,
			code:     errcodes.ValidationError,
		},
		{
			name:     "wrong extension",
			field:    "file",
			filename: "gifts.csv",
			importer: &importerStub{},
			status:   http.StatusBadRequest,
			code:     errcodes.InvalidSpreadsheet,
		},
		{
			name:     "empty catalog",
			field:    "file",
			filename: "gifts.xlsx",
			importer: &importerStub{err: domain.NewError(errcodes.EmptyCatalogFile, "no gifts in file")},
			status:   http.StatusBadRequest,
			code:     errcodes.EmptyCatalogFile,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			api := authorized(newAPI(t, catalogStub{}, tc.importer, selectionsStub{}))
			body, headers := multipartBody(t, tc.field, tc.filename, "xlsx-bytes")

			var (
				result  rest.ImportResult
				errResp rest.Error
			)
			resp, err := api.MultiForm(context.Background(), "/v1/catalog/import", headers, body, &result, &errResp)
			rq.NoError(err)
			rq.Equal(tc.status, resp.StatusCode)

			if tc.code != "" {
				rq.Equal(rest.ErrorCode(tc.code), errResp.Code)
				return
			}

			rq.Equal(tc.expected, result)
			rq.Equal("gifts.xlsx", tc.importer.name)
			rq.Equal("xlsx-bytes", tc.importer.body)
		})
	}
}

func TestGetUserSelections(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	created := time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC)
	selections := selectionsStub{byUser: map[int64][]entity.Selection{
		42: {{
			ID:     1,
			UserID: 42,
			Criteria: value.Criteria{
				Age:        30,
				Recipient:  value.RecipientMother,
				Budget:     3000,
				TrendScore: 7,
			},
			CreatedAt: created,
		}},
	}}

	api := authorized(newAPI(t, catalogStub{}, &importerStub{}, selections))

	var got []rest.Selection
	resp, err := api.Get(context.Background(), "/v1/users/42/selections", nil, &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal([]rest.Selection{{
		ID:         1,
		UserID:     42,
		Recipient:  "mother",
		Age:        30,
		Budget:     3000,
		TrendScore: 7,
		CreatedAt:  created,
	}}, got)

	var errResp rest.Error
	resp, err = api.Get(context.Background(), "/v1/users/x/selections", nil, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.InvalidUserID), errResp.Code)
}

func TestPostMatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		request  any
		status   int
		code     failure.ErrorCode
		expected value.Criteria
	}{
		{
			name:    "ok",
			request: rest.MatchRequest{Age: 30, Recipient: "mother", Budget: 5000, Marketplace: true, TrendScore: 7},
			status:  http.StatusOK,
			expected: value.Criteria{
				Age:         30,
				Recipient:   value.RecipientMother,
				Budget:      5000,
				Marketplace: true,
				TrendScore:  7,
			},
		},
		{
			name:     "unknown recipient matches without recipient filter",
			request:  rest.MatchRequest{Age: 30, Recipient: "cat", TrendScore: 7},
			status:   http.StatusOK,
			expected: value.Criteria{Age: 30, Recipient: "cat", TrendScore: 7},
		},
		{
			name:    "trend out of range",
			request: rest.MatchRequest{Age: 30, Recipient: "mother", TrendScore: 11},
			status:  http.StatusBadRequest,
			code:    errcodes.ValidationError,
		},
		{
			name:    "unknown field",
			request: map[string]any{"age": 30, "recipient": "mother", "trendScore": 7, "city": "Казань"},
			status:  http.StatusBadRequest,
			code:    errcodes.ValidationError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			var matched value.Criteria
			selections := selectionsStub{
				groups: entity.CategorizedGifts{{
					Category: "Дом",
					Gifts:    []entity.Gift{{ID: 5, Name: "Плед", Category: "Дом", Price: 2500}},
				}},
				matched: &matched,
			}

			api := authorized(newAPI(t, catalogStub{}, &importerStub{}, selections))

			var (
				got     []rest.MatchCategory
				errResp rest.Error
			)
			resp, err := api.Post(context.Background(), "/v1/match", nil, tc.request, &got, &errResp)
			rq.NoError(err)
			rq.Equal(tc.status, resp.StatusCode)

			if tc.status != http.StatusOK {
				rq.Equal(rest.ErrorCode(tc.code), errResp.Code)
				rq.Zero(matched)
				return
			}

			rq.Equal(tc.expected, matched)
			rq.Equal(tc.expected.Recipient.Known(), matcher.BuildFilter(context.Background(), matched).Recipient != "")
			rq.Len(got, 1)
			rq.Equal("Дом", got[0].Category)
			rq.Len(got[0].Gifts, 1)
			rq.Equal(int64(5), got[0].Gifts[0].ID)
		})
	}
}
