package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"craftapp/config"
	deliverycontext "craftapp/internal/delivery/context"
	domainerrors "craftapp/internal/domain/errors"
	"craftapp/internal/domain/storage"
	"craftapp/internal/usecase"
)

// maxUploadBytes is the upload size ceiling: 50 MiB.
const maxUploadBytes = 50 * 1024 * 1024

// allowedUploadTypes is the fixed MIME allow-list for uploads.
var allowedUploadTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
	"image/gif":       {},
	"video/mp4":       {},
	"video/webm":      {},
	"video/quicktime": {},
	"video/x-msvideo": {},
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/msword": {},
	"text/plain":         {},
}

// assetService implements the AssetUsecase interface.
type assetService struct {
	store  storage.ObjectStore
	assets *config.AssetsConfig
	logger *slog.Logger
}

// AssetServiceParams holds dependencies for assetService, injected by Fx.
type AssetServiceParams struct {
	fx.In

	Store  storage.ObjectStore
	Config *config.Config
	Logger *slog.Logger
}

// NewAssetService is the constructor for assetService.
func NewAssetService(params AssetServiceParams) (usecase.AssetUsecase, error) {
	if params.Config.Assets == nil {
		return nil, errors.New("assets configuration is required")
	}

	return &assetService{
		store:  params.Store,
		assets: params.Config.Assets,
		logger: params.Logger,
	}, nil
}

func (srv *assetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAsset fetches the object at path. The path gate fails closed before the
// store is touched; store failures map onto the error taxonomy by kind.
func (srv *assetService) GetAsset(ctx context.Context, assetPath string) (*usecase.AssetOutput, error) {
	if !ValidAssetPath(assetPath) {
		srv.log(ctx).Warn("Rejected asset path", slog.String("path", assetPath))

		return nil, domainerrors.ErrInvalidAssetPath.WrapMessage("asset fetch rejected")
	}

	obj, err := srv.store.Get(ctx, assetPath)
	if err != nil {
		return nil, mapStoreError(err, assetPath)
	}

	filename := path.Base(assetPath)

	return &usecase.AssetOutput{
		Content:            obj.Content,
		ContentType:        ContentTypeFor(filename),
		CacheControl:       CacheControlFor(assetPath),
		ContentDisposition: fmt.Sprintf("inline; filename=%s", filename),
	}, nil
}

// UploadAsset stores a file under the configured project key space.
func (srv *assetService) UploadAsset(ctx context.Context, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	if _, ok := allowedUploadTypes[input.ContentType]; !ok {
		srv.log(ctx).Warn("Rejected upload content type", slog.String("contentType", input.ContentType))

		return nil, domainerrors.ErrUnsupportedFileType.WrapMessage("upload rejected")
	}

	if len(input.Content) > maxUploadBytes {
		srv.log(ctx).Warn("Rejected oversized upload",
			slog.Int("size", len(input.Content)),
			slog.Int("limit", maxUploadBytes),
		)

		return nil, domainerrors.ErrFileTooLarge.WrapMessage("upload rejected")
	}

	ext := strings.ToLower(path.Ext(input.Filename))
	uniqueFilename := uuid.New().String() + ext

	key := fmt.Sprintf("users/%s/projects/%s/assets/%s_%s",
		srv.assets.ProjectUserID, srv.assets.ProjectID, input.Folder, uniqueFilename)

	err := srv.store.Put(ctx, key, input.Content, storage.PutOptions{
		ContentType:  input.ContentType,
		CacheControl: cacheControlDefault,
	})
	if err != nil {
		return nil, mapStoreError(err, key)
	}

	srv.log(ctx).Info("Asset uploaded",
		slog.String("key", key),
		slog.String("folder", input.Folder),
		slog.Int("size", len(input.Content)),
	)

	return &usecase.UploadOutput{
		Success:   true,
		Message:   "File uploaded successfully",
		S3Path:    key,
		PublicURL: fmt.Sprintf("%s/assets/%s", strings.TrimSuffix(srv.assets.PublicBaseURL, "/"), key),
		Folder:    input.Folder,
	}, nil
}

// Health probes the configured bucket. It reports, never fails.
func (srv *assetService) Health(ctx context.Context) *usecase.HealthOutput {
	exists, err := srv.store.BucketExists(ctx)
	if err != nil {
		srv.log(ctx).Error("Asset health probe failed", slog.Any("error", err))

		return &usecase.HealthOutput{
			Status:  "unhealthy",
			Service: "asset-server",
			Error:   err.Error(),
		}
	}

	if !exists {
		return &usecase.HealthOutput{
			Status:  "unhealthy",
			Service: "asset-server",
			Error:   fmt.Sprintf("bucket %q not found", srv.store.Bucket()),
		}
	}

	return &usecase.HealthOutput{
		Status:  "healthy",
		Bucket:  srv.store.Bucket(),
		Service: "asset-server",
	}
}

// mapStoreError converts the store's error kinds onto the domain taxonomy.
func mapStoreError(err error, key string) error {
	var storeErr *storage.Error
	if !errors.As(err, &storeErr) {
		return domainerrors.NewObjectStoreError(err, key)
	}

	switch storeErr.Kind {
	case storage.KindNotFound:
		return domainerrors.ErrAssetNotFound.WithDetails(fmt.Sprintf("asset not found: %s", key))
	case storage.KindAccessDenied:
		return domainerrors.ErrAssetAccessDenied.WithDetails(key)
	default:
		return domainerrors.NewObjectStoreError(err, key)
	}
}
