package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"andicot_proforma/internal/domain/entities"
	mock_interfaces "andicot_proforma/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_ListServices(t *testing.T) {
	t.Run("empty store falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil, nil)

		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		list, err := uc.ListServices(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 9 || list[0].ID != "cctv-ia" {
			t.Fatalf("expected the nine default services, got %d", len(list))
		}
	})

	t.Run("stored services win", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil, nil)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Service{{ID: "a", Title: "A"}}, nil)

		list, err := uc.ListServices(context.Background())
		if err != nil || len(list) != 1 || list[0].ID != "a" {
			t.Fatalf("unexpected result: %+v, %v", list, err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil, nil)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.ListServices(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCatalogUseCase_GetService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIServiceRepository(ctrl)
	uc := NewCatalogUseCase(repo, nil, nil)

	if _, err := uc.GetService(context.Background(), "  "); !errors.Is(err, ErrInvalidServiceID) {
		t.Fatalf("expected ErrInvalidServiceID, got %v", err)
	}

	repo.EXPECT().List(gomock.Any()).Return(nil, nil).Times(2)

	s, err := uc.GetService(context.Background(), "control-acceso")
	if err != nil || s.Title != "Control de Acceso" {
		t.Fatalf("unexpected result: %+v, %v", s, err)
	}
	if _, err := uc.GetService(context.Background(), "nope"); !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestCatalogUseCase_GetRates(t *testing.T) {
	tests := []struct {
		name         string
		stored       entities.BusinessConfig
		found        bool
		wantTax      string
		wantDiscount string
	}{
		{name: "no document", found: false, wantTax: "15", wantDiscount: "0"},
		{name: "configured", found: true, stored: entities.BusinessConfig{Finance: entities.Finance{TaxRate: "12", DiscountRate: "10"}}, wantTax: "12", wantDiscount: "10"},
		{name: "invalid tax falls back", found: true, stored: entities.BusinessConfig{Finance: entities.Finance{TaxRate: "abc", DiscountRate: "5"}}, wantTax: "15", wantDiscount: "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cfgRepo := mock_interfaces.NewMockIBusinessConfigRepository(ctrl)
			uc := NewCatalogUseCase(nil, cfgRepo, nil)

			cfgRepo.EXPECT().Get(gomock.Any()).Return(tt.stored, tt.found, nil)

			r, err := uc.GetRates(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.TaxRatePercent.String() != tt.wantTax || r.DiscountRatePercent.String() != tt.wantDiscount {
				t.Fatalf("got tax=%s discount=%s", r.TaxRatePercent, r.DiscountRatePercent)
			}
		})
	}
}

func TestCatalogUseCase_GetBusinessConfig_MergesSections(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfgRepo := mock_interfaces.NewMockIBusinessConfigRepository(ctrl)
	uc := NewCatalogUseCase(nil, cfgRepo, nil)

	stored := entities.BusinessConfig{Hero: entities.Hero{Title: "Custom"}}
	cfgRepo.EXPECT().Get(gomock.Any()).Return(stored, true, nil)

	cfg, err := uc.GetBusinessConfig(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := DefaultBusinessConfig()
	if cfg.Hero.Title != "Custom" {
		t.Fatalf("stored hero lost: %+v", cfg.Hero)
	}
	if cfg.Contact != def.Contact || cfg.Finance != def.Finance {
		t.Fatalf("missing sections not defaulted: %+v", cfg)
	}
}

func TestCatalogUseCase_SaveService(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil, nil)
		cases := []struct {
			in   entities.Service
			want error
		}{
			{entities.Service{Title: "x"}, ErrInvalidServiceID},
			{entities.Service{ID: "x"}, ErrInvalidServiceTitle},
			{entities.Service{ID: "x", Title: "x", UnitPrice: decimal.NewFromInt(-1)}, ErrInvalidServicePrice},
		}
		for _, c := range cases {
			if _, err := uc.SaveService(context.Background(), c.in); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		}
	})

	t.Run("normalizes and saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil, nil)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID != "cctv" || s.Title != "CCTV" || s.Tags != "ia, video" {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		_, err := uc.SaveService(context.Background(), entities.Service{
			ID: " cctv ", Title: " CCTV ", Tags: " ia ,, video ", UnitPrice: decimal.NewFromInt(10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_SaveBusinessConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfgRepo := mock_interfaces.NewMockIBusinessConfigRepository(ctrl)
	uc := NewCatalogUseCase(nil, cfgRepo, nil)

	cfgRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cfg entities.BusinessConfig) error {
			if len(cfg.Brands) != 2 || cfg.Brands[1] != "Dahua" {
				t.Fatalf("brands not cleaned: %#v", cfg.Brands)
			}
			if cfg.Finance.TaxRate != "12" {
				t.Fatalf("tax not trimmed: %q", cfg.Finance.TaxRate)
			}
			return nil
		},
	)

	_, err := uc.SaveBusinessConfig(context.Background(), entities.BusinessConfig{
		Brands:  []string{" Hikvision ", "", "Dahua"},
		Finance: entities.Finance{TaxRate: " 12 "},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCatalogUseCase_UploadServiceImage(t *testing.T) {
	img := func() ImageUpload {
		return ImageUpload{Filename: "foto.PNG", ContentType: "image/png", Size: 4, Body: strings.NewReader("data")}
	}

	t.Run("no blob store", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil, nil)
		if _, err := uc.UploadServiceImage(context.Background(), "cctv", img()); !errors.Is(err, ErrBlobStoreNotConfigured) {
			t.Fatalf("expected ErrBlobStoreNotConfigured, got %v", err)
		}
	})

	t.Run("rejects non image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewCatalogUseCase(nil, nil, mock_interfaces.NewMockIBlobStore(ctrl))
		bad := img()
		bad.ContentType = "application/pdf"
		if _, err := uc.UploadServiceImage(context.Background(), "cctv", bad); !errors.Is(err, ErrInvalidImage) {
			t.Fatalf("expected ErrInvalidImage, got %v", err)
		}
	})

	t.Run("rejects oversized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewCatalogUseCase(nil, nil, mock_interfaces.NewMockIBlobStore(ctrl))
		big := img()
		big.Size = MaxServiceImageSize + 1
		if _, err := uc.UploadServiceImage(context.Background(), "cctv", big); !errors.Is(err, ErrInvalidImage) {
			t.Fatalf("expected ErrInvalidImage, got %v", err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo, nil, mock_interfaces.NewMockIBlobStore(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "cctv").Return(entities.Service{}, nil)

		if _, err := uc.UploadServiceImage(context.Background(), "cctv", img()); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("stores under the service key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		blobs := mock_interfaces.NewMockIBlobStore(ctrl)
		uc := NewCatalogUseCase(repo, nil, blobs)

		repo.EXPECT().GetByID(gomock.Any(), "cctv").Return(entities.Service{ID: "cctv"}, nil)
		blobs.EXPECT().Put(gomock.Any(), "servicios/cctv/imagen_principal.png", "image/png", gomock.Any(), int64(4)).
			Return("https://cdn.example/servicios/cctv/imagen_principal.png", nil)
		repo.EXPECT().UpdateImage(gomock.Any(), "cctv", "https://cdn.example/servicios/cctv/imagen_principal.png").
			Return(entities.Service{ID: "cctv", Image: "https://cdn.example/servicios/cctv/imagen_principal.png"}, nil)

		s, err := uc.UploadServiceImage(context.Background(), "cctv", img())
		if err != nil || s.Image == "" {
			t.Fatalf("unexpected result: %+v, %v", s, err)
		}
	})
}

func TestImageExtension(t *testing.T) {
	cases := map[[2]string]string{
		{"a.webp", "image/webp"}:      ".webp",
		{"", "image/jpeg"}:            ".jpg",
		{"", "image/png"}:             ".png",
		{"", "image/x-unknown"}:       ".jpg",
		{"x.html", "image/png"}:       ".png",
		{"x.gif", "image/x-unknown"}:  ".gif",
		{"x.html", "image/x-unknown"}: ".jpg",
	}
	for in, want := range cases {
		if got := imageExtension(in[0], in[1]); got != want {
			t.Fatalf("imageExtension(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}
