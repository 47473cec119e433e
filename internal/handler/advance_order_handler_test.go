package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fishshop-backend/internal/middleware"
	"fishshop-backend/internal/model"
	"fishshop-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

type stubAdvanceOrderService struct {
	orders    []model.AdvanceOrder
	deleteErr error
}

func (s *stubAdvanceOrderService) Create(ctx context.Context, req service.CreateAdvanceOrderRequest) (*model.AdvanceOrder, error) {
	order := model.AdvanceOrder{
		Date:     req.Date,
		Amount:   decimal.NewFromFloat(req.Amount),
		FishType: req.FishType,
		Advance:  decimal.NewFromFloat(req.Advance),
		Name:     req.Name,
		Contact:  req.Contact,
	}
	s.orders = append(s.orders, order)
	return &order, nil
}

func (s *stubAdvanceOrderService) List(ctx context.Context, date string) ([]model.AdvanceOrder, error) {
	return s.orders, nil
}

func (s *stubAdvanceOrderService) Delete(ctx context.Context, id string) error {
	return s.deleteErr
}

func testToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "00000000-0000-0000-0000-000000000001",
		"role": role,
	})
	signed, err := token.SignedString(middleware.GetJWTSecret())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newAdvanceOrderRouter(svc service.AdvanceOrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAdvanceOrderHandler(svc).RegisterRoutes(router.Group(""))
	return router
}

func TestAdvanceOrderListOpen(t *testing.T) {
	svc := &stubAdvanceOrderService{orders: []model.AdvanceOrder{{Name: "Meena", FishType: "Tuna"}}}
	router := newAdvanceOrderRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/advance-orders", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Status string               `json:"status"`
		Data   []model.AdvanceOrder `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "success" || len(body.Data) != 1 {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestAdvanceOrderCreateRequiresAuth(t *testing.T) {
	router := newAdvanceOrderRouter(&stubAdvanceOrderService{})

	payload := `{"date":"2026-03-15","amount":500,"fish_type":"Tuna","name":"Meena"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/advance-orders", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("without token status = %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/advance-orders", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken(t, model.RoleStaff))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Errorf("with token status = %d, want 201: %s", w.Code, w.Body.String())
	}
}

func TestAdvanceOrderCreateRejectsBadPayload(t *testing.T) {
	svc := &stubAdvanceOrderService{}
	router := newAdvanceOrderRouter(svc)

	// amount missing fails binding before the service is reached
	payload := `{"date":"2026-03-15","fish_type":"Tuna","name":"Meena"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/advance-orders", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken(t, model.RoleStaff))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if len(svc.orders) != 0 {
		t.Error("service should not be called for invalid payload")
	}
}

func TestAdvanceOrderDeleteNotFound(t *testing.T) {
	router := newAdvanceOrderRouter(&stubAdvanceOrderService{deleteErr: service.ErrOrderNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/advance-orders/some-id", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, model.RoleStaff))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
