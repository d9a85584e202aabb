package usecase

import "context"

// AssetOutput is a served asset with the headers the gateway derived for it.
type AssetOutput struct {
	Content            []byte
	ContentType        string
	CacheControl       string
	ContentDisposition string
}

// UploadInput carries an authenticated file upload.
type UploadInput struct {
	Filename    string
	ContentType string
	Content     []byte
	Folder      string
}

// UploadOutput is the response to a successful upload.
type UploadOutput struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	S3Path    string `json:"s3_path"`
	PublicURL string `json:"public_url"`
	Folder    string `json:"folder"`
}

// HealthOutput reports the asset gateway's view of the object store.
type HealthOutput struct {
	Status  string `json:"status"`
	Bucket  string `json:"bucket,omitempty"`
	Service string `json:"service"`
	Error   string `json:"error,omitempty"`
}

// AssetUsecase validates asset keys, derives content type and cache policy,
// and proxies reads and writes to the object store.
type AssetUsecase interface {
	// GetAsset fetches the object at path. Invalid paths fail closed.
	GetAsset(ctx context.Context, path string) (*AssetOutput, error)

	// UploadAsset stores a file under the configured project key space and
	// returns the storage key plus a publicly resolvable URL.
	UploadAsset(ctx context.Context, input *UploadInput) (*UploadOutput, error)

	// Health probes the object-store container; it reports, never fails.
	Health(ctx context.Context) *HealthOutput
}
