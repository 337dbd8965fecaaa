package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	response "andicot_proforma/internal/adapter/http/dto/response"
	"andicot_proforma/internal/adapter/http/handlers/mocks"
	"andicot_proforma/internal/domain/entities"
	"andicot_proforma/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)
	r := newTestRouter()
	r.GET("/v1/catalog/services", h.ListServices)

	uc.EXPECT().ListServices(gomock.Any()).Return([]entities.Service{
		{ID: "cctv-ia", Title: "CCTV con IA", UnitPrice: decimal.NewFromInt(150)},
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/catalog/services", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []response.ServiceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].UnitPrice != "150.00" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestCatalogHandler_GetService(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"found", nil, http.StatusOK, ""},
		{"not found", usecase.ErrServiceNotFound, http.StatusNotFound, "SERVICE_NOT_FOUND"},
		{"internal", errors.New("db"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICatalogUseCase(ctrl)
			h := NewCatalogHandler(uc)
			r := newTestRouter()
			r.GET("/v1/catalog/services/:id", h.GetService)

			uc.EXPECT().GetService(gomock.Any(), "cctv-ia").Return(entities.Service{ID: "cctv-ia"}, tt.err)

			w := doJSON(r, http.MethodGet, "/v1/catalog/services/cctv-ia", "")
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if tt.wantErr != "" && decodeError(t, w).Code != tt.wantErr {
				t.Fatalf("unexpected error body %s", w.Body.String())
			}
		})
	}
}

func TestCatalogHandler_GetBusinessConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)
	r := newTestRouter()
	r.GET("/v1/catalog/config", h.GetBusinessConfig)

	uc.EXPECT().GetBusinessConfig(gomock.Any()).Return(entities.BusinessConfig{
		Finance: entities.Finance{TaxRate: "12", DiscountRate: "abc"},
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/catalog/config", "")
	var got response.BusinessConfigResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Rates.TaxRatePercent != "12" || got.Rates.DiscountRatePercent != "0" {
		t.Fatalf("unexpected rates: %+v", got.Rates)
	}
}

func TestCatalogHandler_SaveService(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewCatalogHandler(mocks.NewMockICatalogUseCase(ctrl))
		r := newTestRouter()
		r.PUT("/v1/admin/services/:id", h.SaveService)

		if w := doJSON(r, http.MethodPut, "/v1/admin/services/x", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("id from path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)
		r := newTestRouter()
		r.PUT("/v1/admin/services/:id", h.SaveService)

		uc.EXPECT().SaveService(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID != "cctv" || s.UnitPrice.StringFixed(2) != "99.90" {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		w := doJSON(r, http.MethodPut, "/v1/admin/services/cctv", `{"title":"CCTV","unit_price":"99.9"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)
		r := newTestRouter()
		r.PUT("/v1/admin/services/:id", h.SaveService)

		uc.EXPECT().SaveService(gomock.Any(), gomock.Any()).Return(entities.Service{}, usecase.ErrInvalidServicePrice)

		w := doJSON(r, http.MethodPut, "/v1/admin/services/cctv", `{"title":"CCTV","unit_price":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func multipartImage(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write(data)
	_ = mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestCatalogHandler_UploadServiceImage(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewCatalogHandler(mocks.NewMockICatalogUseCase(ctrl))
		r := newTestRouter()
		r.PUT("/v1/admin/services/:id/image", h.UploadServiceImage)

		body, ct := multipartImage(t, "other", "a.png", "image/png", []byte("x"))
		req := httptest.NewRequest(http.MethodPut, "/v1/admin/services/cctv/image", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forwards upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)
		r := newTestRouter()
		r.PUT("/v1/admin/services/:id/image", h.UploadServiceImage)

		uc.EXPECT().UploadServiceImage(gomock.Any(), "cctv", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, img usecase.ImageUpload) (entities.Service, error) {
				data, _ := io.ReadAll(img.Body)
				if img.Filename != "foto.png" || img.ContentType != "image/png" || img.Size != 4 || string(data) != "data" {
					t.Fatalf("unexpected upload: %+v %q", img, data)
				}
				return entities.Service{ID: "cctv", Image: "https://cdn/x.png"}, nil
			},
		)

		body, ct := multipartImage(t, "image", "foto.png", "image/png", []byte("data"))
		req := httptest.NewRequest(http.MethodPut, "/v1/admin/services/cctv/image", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("uploads disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)
		r := newTestRouter()
		r.PUT("/v1/admin/services/:id/image", h.UploadServiceImage)

		uc.EXPECT().UploadServiceImage(gomock.Any(), "cctv", gomock.Any()).Return(entities.Service{}, usecase.ErrBlobStoreNotConfigured)

		body, ct := multipartImage(t, "image", "foto.png", "image/png", []byte("data"))
		req := httptest.NewRequest(http.MethodPut, "/v1/admin/services/cctv/image", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_SaveBusinessConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)
	r := newTestRouter()
	r.PUT("/v1/admin/config", h.SaveBusinessConfig)

	uc.EXPECT().SaveBusinessConfig(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cfg entities.BusinessConfig) (entities.BusinessConfig, error) {
			if len(cfg.Brands) != 2 || cfg.Finance.TaxRate != "12" {
				t.Fatalf("unexpected config: %+v", cfg)
			}
			return cfg, nil
		},
	)

	w := doJSON(r, http.MethodPut, "/v1/admin/config", `{"brands_text":"PELCO,BOSCH","finance":{"tax_rate":"12"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
