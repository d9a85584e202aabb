package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"craftapp/config"
	"craftapp/internal/delivery/http/response"
	"craftapp/internal/usecase"
)

// AssetHandler holds dependencies for asset-related handlers.
type AssetHandler struct {
	uc     usecase.AssetUsecase
	assets *config.AssetsConfig
	logger *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler, injected by Fx.
func NewAssetHandler(uc usecase.AssetUsecase, cfg *config.Config, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		uc:     uc,
		assets: cfg.Assets,
		logger: logger,
	}
}

// GetAsset serves the object at the wildcard path with derived headers.
func (h *AssetHandler) GetAsset(c echo.Context) error {
	return h.serve(c, c.Param("*"))
}

// DefaultLogo is a convenience alias for the shipped logo asset.
func (h *AssetHandler) DefaultLogo(c echo.Context) error {
	return h.serve(c, h.assets.DefaultLogoKey)
}

// DefaultFavicon is a convenience alias for the shipped favicon asset.
func (h *AssetHandler) DefaultFavicon(c echo.Context) error {
	return h.serve(c, h.assets.DefaultFaviconKey)
}

func (h *AssetHandler) serve(c echo.Context, assetPath string) error {
	output, err := h.uc.GetAsset(c.Request().Context(), assetPath)
	if err != nil {
		return errors.WithStack(err)
	}

	header := c.Response().Header()
	header.Set("Cache-Control", output.CacheControl)
	header.Set("Content-Disposition", output.ContentDisposition)
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET")
	header.Set("Access-Control-Allow-Headers", "*")

	return c.Blob(http.StatusOK, output.ContentType, output.Content)
}

// Upload handles an authenticated multipart file upload tagged with a feature
// folder, e.g. POST /assets/upload?folder=profile.
func (h *AssetHandler) Upload(c echo.Context) error {
	folder := c.QueryParam("folder")
	if folder == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'folder' is required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	output, err := h.uc.UploadAsset(c.Request().Context(), &usecase.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Content:     content,
		Folder:      folder,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, output)
}

// Health reports the asset gateway's view of the object store.
func (h *AssetHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Health(c.Request().Context()))
}
