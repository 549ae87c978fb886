package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/diazeddy/dataset-api/internal/domain"
	"github.com/diazeddy/dataset-api/internal/infrastructure"
	"github.com/diazeddy/dataset-api/internal/usecase"
)

const testSecret = "handler-test-secret"

type fakeUserRepo struct {
	users map[string]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]string)}
}

func (f *fakeUserRepo) Exists(ctx context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	hash, ok := f.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &domain.User{Email: email, Password: hash}, nil
}

func (f *fakeUserRepo) Insert(ctx context.Context, email, passwordHash string) error {
	f.users[email] = passwordHash
	return nil
}

type insertedDataset struct {
	filename string
	size     int64
	content  string
}

type fakeDatasetRepo struct {
	inserted []insertedDataset
	metas    []domain.DatasetMeta
	content  string
	findErr  error
	deleted  []string
}

func (f *fakeDatasetRepo) Insert(ctx context.Context, filename string, size int64, content string) error {
	f.inserted = append(f.inserted, insertedDataset{filename: filename, size: size, content: content})
	return nil
}

func (f *fakeDatasetRepo) FindAll(ctx context.Context) ([]domain.DatasetMeta, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.metas, nil
}

func (f *fakeDatasetRepo) FindByID(ctx context.Context, id string) (string, error) {
	if f.findErr != nil {
		return "", f.findErr
	}
	return f.content, nil
}

func (f *fakeDatasetRepo) DeleteByID(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newTestTokens() *infrastructure.JWTService {
	return infrastructure.NewJWTService(testSecret, 30*time.Minute)
}

func newTestServer(userRepo usecase.UserRepository, datasetRepo usecase.DatasetRepository) *echo.Echo {
	tokens := newTestTokens()
	e := echo.New()
	RegisterRoutes(e,
		NewAuthHandler(usecase.NewAuthUsecase(userRepo, tokens)),
		NewDatasetHandler(usecase.NewDatasetUsecase(datasetRepo)),
		tokens,
	)
	return e
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := newTestTokens().GenerateToken("user@example.com")
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) MessageResponse {
	t.Helper()
	var msg MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	return msg
}

// multipartFile builds a multipart body with a single "file" part carrying
// the given content type.
func multipartFile(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func uploadRequest(t *testing.T, e *echo.Echo, auth, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	body, formContentType := multipartFile(t, filename, contentType, data)
	req := httptest.NewRequest(http.MethodPost, "/datasets/upload", body)
	req.Header.Set(echo.HeaderContentType, formContentType)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
