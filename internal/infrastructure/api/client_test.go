package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gestionpyme/ventas-console/internal/config"
	"github.com/gestionpyme/ventas-console/internal/domain/entity"
	"github.com/gestionpyme/ventas-console/pkg/apperror"
	"github.com/gestionpyme/ventas-console/pkg/loading"
	"github.com/google/uuid"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *loading.Gauge) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gauge := &loading.Gauge{}
	client := NewClient(&config.APIConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, gauge)
	return client, gauge
}

func TestClientAttachesBearerToken(t *testing.T) {
	var authHeader string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})
	client.SetToken("abc123")

	customers := NewCustomerAPI(client)
	if _, err := customers.Search(context.Background(), "maría"); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if authHeader != "Bearer abc123" {
		t.Fatalf("expected bearer header, got %q", authHeader)
	}
}

func TestCustomerSearchFiltersInactive(t *testing.T) {
	client, gauge := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search"); got != "mar" {
			t.Errorf("expected search query %q, got %q", "mar", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": uuid.NewString(), "nombre": "María Fernanda Ruiz", "identificacion": "1034567890", "estado": 1},
				{"id": uuid.NewString(), "nombre": "Almacén La Esquina", "identificacion": "900123456", "estado": 0},
			},
			"current_page": 1,
			"last_page":    1,
		})
	})

	customers, err := NewCustomerAPI(client).Search(context.Background(), "mar")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(customers) != 1 || customers[0].Name != "María Fernanda Ruiz" {
		t.Fatalf("inactive customers must be filtered out, got %v", customers)
	}
	if gauge.Busy() {
		t.Fatalf("gauge must be idle after the request completes")
	}
}

func TestCreateSalePayloadShape(t *testing.T) {
	customerID := uuid.New()
	productID := uuid.New()

	var body map[string]json.RawMessage
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/ventas" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Venta registrada exitosamente.",
			"data":    map[string]any{"id": "V-a1b2c3d4", "total": "37000"},
		})
	})

	sale, err := NewSaleAPI(client).Create(context.Background(), customerID, []entity.SaleDetailInput{
		{ProductID: productID, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if sale.ID != "V-a1b2c3d4" {
		t.Fatalf("expected the created sale back, got %+v", sale)
	}

	var gotCustomer string
	if err := json.Unmarshal(body["customer_id"], &gotCustomer); err != nil || gotCustomer != customerID.String() {
		t.Fatalf("expected customer_id %s on the wire, got %s", customerID, body["customer_id"])
	}
	var detalles []map[string]any
	if err := json.Unmarshal(body["detalles"], &detalles); err != nil || len(detalles) != 1 {
		t.Fatalf("expected one detalles entry, got %s", body["detalles"])
	}
	if detalles[0]["producto_id"] != productID.String() || detalles[0]["cantidad"] != float64(2) {
		t.Fatalf("unexpected detalles payload: %v", detalles[0])
	}
}

func TestStockConflictResponseIsTyped(t *testing.T) {
	client, gauge := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Validation failed",
			"errors": map[string][]string{
				"stock": {"Cantidad insuficiente de stock para Café Molido 500g. Disponible: 1"},
			},
		})
	})

	_, err := NewSaleAPI(client).Create(context.Background(), uuid.New(), []entity.SaleDetailInput{
		{ProductID: uuid.New(), Quantity: 5},
	})
	if !apperror.IsStockConflict(err) {
		t.Fatalf("expected a stock conflict, got %v", err)
	}
	if apperror.IsTransport(err) {
		t.Fatalf("a validation failure must not read as a transport error")
	}
	if gauge.Busy() {
		t.Fatalf("gauge must be idle after a failed request")
	}
}

func TestServerFailureIsTransport(t *testing.T) {
	client, gauge := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := NewSaleAPI(client).List(context.Background())
	if !apperror.IsTransport(err) {
		t.Fatalf("expected a transport error for a 5xx response, got %v", err)
	}
	if apperror.IsStockConflict(err) {
		t.Fatalf("a server failure must not read as a stock conflict")
	}
	if gauge.Busy() {
		t.Fatalf("gauge must be idle after a failed request")
	}
}

func TestUnreachableBackendIsTransport(t *testing.T) {
	gauge := &loading.Gauge{}
	client := NewClient(&config.APIConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, gauge)

	_, err := NewCustomerAPI(client).Search(context.Background(), "maría")
	if !apperror.IsTransport(err) {
		t.Fatalf("expected a transport error, got %v", err)
	}
	if gauge.Busy() {
		t.Fatalf("gauge must be idle after a failed request")
	}
}

func TestLoginStoresTokenOnClient(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "session-token",
			"user":  map[string]any{"id": uuid.NewString(), "nombre": "Operador", "email": "operador@gestionpyme.com"},
		})
	})

	session, err := NewSessionAPI(client).Login(context.Background(), "operador@gestionpyme.com", "operador123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.User.Email != "operador@gestionpyme.com" {
		t.Fatalf("unexpected session user: %+v", session.User)
	}
	if client.Token() != "session-token" {
		t.Fatalf("login must store the bearer token on the client")
	}
}

func TestLoginRejectionIsAppError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"message": "Invalid email or password"})
	})

	_, err := NewSessionAPI(client).Login(context.Background(), "operador@gestionpyme.com", "wrong")
	appErr := apperror.GetAppError(err)
	if appErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (%v)", appErr.Code, err)
	}
	if client.Token() != "" {
		t.Fatalf("a failed login must not store a token")
	}
}
