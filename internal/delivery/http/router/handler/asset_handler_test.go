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

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craftapp/config"
	domainerrors "craftapp/internal/domain/errors"
	"craftapp/internal/usecase"
)

type fakeAssetUsecase struct {
	getOut    *usecase.AssetOutput
	getErr    error
	getPaths  []string
	uploadOut *usecase.UploadOutput
	uploadIn  *usecase.UploadInput
	healthOut *usecase.HealthOutput
}

func (f *fakeAssetUsecase) GetAsset(_ context.Context, path string) (*usecase.AssetOutput, error) {
	f.getPaths = append(f.getPaths, path)

	return f.getOut, f.getErr
}

func (f *fakeAssetUsecase) UploadAsset(_ context.Context, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	f.uploadIn = input

	return f.uploadOut, nil
}

func (f *fakeAssetUsecase) Health(_ context.Context) *usecase.HealthOutput {
	return f.healthOut
}

func assetConfig() *config.Config {
	return &config.Config{
		Assets: &config.AssetsConfig{
			DefaultLogoKey:    "default/logo.svg",
			DefaultFaviconKey: "default/favicon.ico",
		},
	}
}

func TestAssetHandler_GetAsset(t *testing.T) {
	uc := &fakeAssetUsecase{getOut: &usecase.AssetOutput{
		Content:            []byte("<svg/>"),
		ContentType:        "image/svg+xml",
		CacheControl:       "public, max-age=31536000",
		ContentDisposition: "inline; filename=logo.svg",
	}}
	h := NewAssetHandler(uc, assetConfig(), discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/assets/default/logo.svg", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("*")
	c.SetParamValues("default/logo.svg")

	require.NoError(t, h.GetAsset(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"default/logo.svg"}, uc.getPaths)
	assert.Equal(t, "<svg/>", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "image/svg+xml")
	assert.Equal(t, "public, max-age=31536000", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "inline; filename=logo.svg", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAssetHandler_GetAsset_PropagatesError(t *testing.T) {
	uc := &fakeAssetUsecase{getErr: domainerrors.ErrInvalidAssetPath.WrapMessage("asset fetch rejected")}
	h := NewAssetHandler(uc, assetConfig(), discardLogger())

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/assets/../x", nil), httptest.NewRecorder())
	c.SetParamNames("*")
	c.SetParamValues("../x")

	err := h.GetAsset(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAssetPath)
}

func TestAssetHandler_DefaultAliases(t *testing.T) {
	uc := &fakeAssetUsecase{getOut: &usecase.AssetOutput{Content: []byte("x"), ContentType: "image/x-icon"}}
	h := NewAssetHandler(uc, assetConfig(), discardLogger())
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/assets/default/logo", nil), httptest.NewRecorder())
	require.NoError(t, h.DefaultLogo(c))

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/assets/default/favicon", nil), httptest.NewRecorder())
	require.NoError(t, h.DefaultFavicon(c))

	assert.Equal(t, []string{"default/logo.svg", "default/favicon.ico"}, uc.getPaths)
}

func multipartUpload(t *testing.T, target, fieldFilename, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fieldFilename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestAssetHandler_Upload(t *testing.T) {
	uc := &fakeAssetUsecase{uploadOut: &usecase.UploadOutput{
		Success: true,
		Message: "File uploaded successfully",
		Folder:  "branding",
	}}
	h := NewAssetHandler(uc, assetConfig(), discardLogger())

	e := echo.New()
	req := multipartUpload(t, "/assets/upload?folder=branding", "logo.png", "image/png", []byte("png-bytes"))
	rec := httptest.NewRecorder()
	require.NoError(t, h.Upload(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.uploadIn)
	assert.Equal(t, "logo.png", uc.uploadIn.Filename)
	assert.Equal(t, "image/png", uc.uploadIn.ContentType)
	assert.Equal(t, []byte("png-bytes"), uc.uploadIn.Content)
	assert.Equal(t, "branding", uc.uploadIn.Folder)

	var out usecase.UploadOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
}

func TestAssetHandler_Upload_RequiresFolder(t *testing.T) {
	uc := &fakeAssetUsecase{}
	h := NewAssetHandler(uc, assetConfig(), discardLogger())

	e := echo.New()
	req := multipartUpload(t, "/assets/upload", "logo.png", "image/png", []byte("png-bytes"))
	rec := httptest.NewRecorder()
	require.NoError(t, h.Upload(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.uploadIn)
}

func TestAssetHandler_Upload_RequiresFilePart(t *testing.T) {
	h := NewAssetHandler(&fakeAssetUsecase{}, assetConfig(), discardLogger())

	e := echo.New()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, "/assets/upload?folder=misc", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	require.NoError(t, h.Upload(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssetHandler_Health(t *testing.T) {
	uc := &fakeAssetUsecase{healthOut: &usecase.HealthOutput{
		Status:  "healthy",
		Bucket:  "test-bucket",
		Service: "asset-server",
	}}
	h := NewAssetHandler(uc, assetConfig(), discardLogger())

	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, h.Health(e.NewContext(httptest.NewRequest(http.MethodGet, "/assets/health", nil), rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","bucket":"test-bucket","service":"asset-server"}`, rec.Body.String())
}
