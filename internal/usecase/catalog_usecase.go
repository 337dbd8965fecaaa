package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"andicot_proforma/internal/domain/entities"
	"andicot_proforma/internal/domain/pricing"
	"andicot_proforma/internal/usecase/interfaces"
)

// MaxServiceImageSize bounds admin image uploads.
const MaxServiceImageSize int64 = 5 << 20

var (
	ErrServiceNotFound        = errors.New("service not found")
	ErrInvalidServiceID       = errors.New("invalid service id")
	ErrInvalidServiceTitle    = errors.New("invalid service title")
	ErrInvalidServicePrice    = errors.New("invalid service price")
	ErrInvalidImage           = errors.New("invalid image")
	ErrBlobStoreNotConfigured = errors.New("blob store not configured")
)

// ICatalogUseCase exposes the catalog store: public reads for the site and
// the quote builder, admin writes for the panel.
type ICatalogUseCase interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
	GetBusinessConfig(ctx context.Context) (entities.BusinessConfig, error)
	GetRates(ctx context.Context) (pricing.Rates, error)
	SaveService(ctx context.Context, s entities.Service) (entities.Service, error)
	SaveBusinessConfig(ctx context.Context, cfg entities.BusinessConfig) (entities.BusinessConfig, error)
	UploadServiceImage(ctx context.Context, serviceID string, img ImageUpload) (entities.Service, error)
}

// ImageUpload is an admin-provided service picture.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type CatalogUseCase struct {
	services interfaces.IServiceRepository
	config   interfaces.IBusinessConfigRepository
	blobs    interfaces.IBlobStore
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

// NewCatalogUseCase wires the catalog. blobs may be nil when uploads are not
// configured; UploadServiceImage then fails with ErrBlobStoreNotConfigured.
func NewCatalogUseCase(services interfaces.IServiceRepository, config interfaces.IBusinessConfigRepository, blobs interfaces.IBlobStore) *CatalogUseCase {
	return &CatalogUseCase{services: services, config: config, blobs: blobs}
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.Service, error) {
	list, err := u.services.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return DefaultServices(), nil
	}
	return list, nil
}

func (u *CatalogUseCase) GetService(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	list, err := u.ListServices(ctx)
	if err != nil {
		return entities.Service{}, err
	}
	for _, s := range list {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.Service{}, ErrServiceNotFound
}

func (u *CatalogUseCase) GetBusinessConfig(ctx context.Context) (entities.BusinessConfig, error) {
	cfg, found, err := u.config.Get(ctx)
	if err != nil {
		return entities.BusinessConfig{}, err
	}
	if !found {
		return DefaultBusinessConfig(), nil
	}
	return mergeBusinessConfig(cfg, DefaultBusinessConfig()), nil
}

// GetRates reads the live tax and discount rates. Invalid values fall back to
// the pricing defaults.
func (u *CatalogUseCase) GetRates(ctx context.Context) (pricing.Rates, error) {
	cfg, err := u.GetBusinessConfig(ctx)
	if err != nil {
		return pricing.Rates{}, err
	}
	return pricing.ParseRates(cfg.Finance.TaxRate, cfg.Finance.DiscountRate), nil
}

func (u *CatalogUseCase) SaveService(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.ID = strings.TrimSpace(s.ID)
	s.Title = strings.TrimSpace(s.Title)
	if s.ID == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	if s.Title == "" {
		return entities.Service{}, ErrInvalidServiceTitle
	}
	if s.UnitPrice.IsNegative() {
		return entities.Service{}, ErrInvalidServicePrice
	}
	s.Tags = normalizeTags(s.Tags)

	saved, err := u.services.Save(ctx, s)
	if err != nil {
		slog.Error("[catalog][usecase] save service failed", "service_id", s.ID, "error", err)
		return entities.Service{}, err
	}
	slog.Info("[catalog][usecase] service saved", "service_id", saved.ID)
	return saved, nil
}

func (u *CatalogUseCase) SaveBusinessConfig(ctx context.Context, cfg entities.BusinessConfig) (entities.BusinessConfig, error) {
	cfg.Brands = cleanList(cfg.Brands)
	cfg.Warranty.Items = cleanList(cfg.Warranty.Items)
	cfg.Finance.TaxRate = strings.TrimSpace(cfg.Finance.TaxRate)
	cfg.Finance.DiscountRate = strings.TrimSpace(cfg.Finance.DiscountRate)

	if err := u.config.Save(ctx, cfg); err != nil {
		slog.Error("[catalog][usecase] save business config failed", "error", err)
		return entities.BusinessConfig{}, err
	}
	slog.Info("[catalog][usecase] business config saved",
		"tax_rate", cfg.Finance.TaxRate, "discount_rate", cfg.Finance.DiscountRate)
	return mergeBusinessConfig(cfg, DefaultBusinessConfig()), nil
}

// UploadServiceImage stores the picture under servicios/<id>/imagen_principal
// and points the service at its public URL.
func (u *CatalogUseCase) UploadServiceImage(ctx context.Context, serviceID string, img ImageUpload) (entities.Service, error) {
	if u.blobs == nil {
		return entities.Service{}, ErrBlobStoreNotConfigured
	}
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	if img.Body == nil || img.Size <= 0 || img.Size > MaxServiceImageSize || !strings.HasPrefix(img.ContentType, "image/") {
		return entities.Service{}, ErrInvalidImage
	}

	existing, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Service{}, err
	}
	if existing.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	key := "servicios/" + serviceID + "/imagen_principal" + imageExtension(img.Filename, img.ContentType)
	url, err := u.blobs.Put(ctx, key, img.ContentType, img.Body, img.Size)
	if err != nil {
		slog.Error("[catalog][usecase] image upload failed", "service_id", serviceID, "key", key, "error", err)
		return entities.Service{}, err
	}

	updated, err := u.services.UpdateImage(ctx, serviceID, url)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	slog.Info("[catalog][usecase] service image updated", "service_id", serviceID, "url", url)
	return updated, nil
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// imageExtension prefers the validated content type; the filename only
// counts when its extension is one of the accepted image types.
func imageExtension(filename, contentType string) string {
	if ext, ok := imageExtensions[contentType]; ok {
		return ext
	}
	ext := strings.ToLower(path.Ext(filename))
	for _, known := range imageExtensions {
		if ext == known {
			return ext
		}
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	return ".jpg"
}

// normalizeTags trims each comma-delimited tag and drops empty ones.
func normalizeTags(tags string) string {
	return strings.Join(cleanList(strings.Split(tags, ",")), ", ")
}

func cleanList(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
