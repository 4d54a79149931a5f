package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"venue-service/internal/domain"
	"venue-service/internal/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newZoneRouter(svc *MockZoneService) *gin.Engine {
	h := NewZoneHandler(svc)
	r := gin.New()
	r.GET("/api/zones", h.List)
	r.POST("/api/zones", h.Create)
	r.PUT("/api/zones/:id", h.Update)
	r.DELETE("/api/zones/:id", h.Delete)
	return r
}

func TestZoneHandler_List(t *testing.T) {
	svc := NewMockZoneService()
	svc.AddZone(&domain.Zone{ID: 1, Name: "Lobby", Description: "Entrance", IsPrivate: false})
	router := newZoneRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/zones", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var zones []*dto.ZoneResponse
	if err := json.Unmarshal(w.Body.Bytes(), &zones); err != nil {
		t.Fatalf("response is not a bare array: %v", err)
	}
	if len(zones) != 1 || zones[0].IDZona != 1 || zones[0].Nombre != "Lobby" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestZoneHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid zone",
			body:       `{"nombre":"Garden","descripcion":"Open air","esPrivada":true}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing nombre",
			body:       `{"descripcion":"anonymous"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newZoneRouter(NewMockZoneService())

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/api/zones", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus == http.StatusCreated {
				var created struct {
					ID int64 `json:"id"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil || created.ID == 0 {
					t.Errorf("expected created id in body: %s", w.Body.String())
				}
			}
		})
	}
}

func TestZoneHandler_Update(t *testing.T) {
	svc := NewMockZoneService()
	svc.AddZone(&domain.Zone{ID: 1, Name: "Lobby"})
	router := newZoneRouter(svc)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"existing zone", "/api/zones/1", `{"nombre":"Main Lobby"}`, http.StatusOK},
		{"unknown zone", "/api/zones/99", `{"nombre":"Ghost"}`, http.StatusNotFound},
		{"bad id", "/api/zones/abc", `{"nombre":"X"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPut, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestZoneHandler_Delete(t *testing.T) {
	svc := NewMockZoneService()
	svc.AddZone(&domain.Zone{ID: 1, Name: "Lobby"})
	router := newZoneRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/zones/1", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodDelete, "/api/zones/1", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on repeat delete, got %d", w.Code)
	}
}
