package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rsaliba/exchange-service/internal/delivery/http/middleware"
	"github.com/rsaliba/exchange-service/internal/domain"
	transactiondto "github.com/rsaliba/exchange-service/internal/usecase/dto/transaction"
)

type fakeTransactionUsecase struct {
	trx  *domain.Transaction
	trxs []*domain.Transaction
	err  error

	createInput *transactiondto.CreateTransactionInput
}

func (f *fakeTransactionUsecase) CreateTransaction(caller domain.Caller, input *transactiondto.CreateTransactionInput) (*domain.Transaction, error) {
	f.createInput = input
	if f.err != nil {
		return nil, f.err
	}
	return f.trx, nil
}

func (f *fakeTransactionUsecase) ListTransactions(caller domain.Caller) ([]*domain.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.trxs, nil
}

func newTransactionTestRouter(uc *fakeTransactionUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTransactionHandler(uc)
	authed := middleware.AuthRequired(testTokens)
	router.POST("/transaction", authed, h.CreateTransaction)
	router.GET("/transaction", authed, h.GetTransactions)
	return router
}

func TestCreateTransactionMissingDirectionFlag(t *testing.T) {
	uc := &fakeTransactionUsecase{}
	router := newTransactionTestRouter(uc)

	rec := doRequest(t, router, http.MethodPost, "/transaction", `{"lbp_amount":90000,"usd_amount":1}`, tellerCaller)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing usd_to_lbp, got %d", rec.Code)
	}
	if uc.createInput != nil {
		t.Fatalf("malformed payload must not reach the usecase")
	}
}

func TestCreateTransactionFalseDirectionIsValid(t *testing.T) {
	uc := &fakeTransactionUsecase{trx: &domain.Transaction{ID: "t1", TellerID: "teller-a"}}
	router := newTransactionTestRouter(uc)

	// usd_to_lbp=false must bind: absent and false are different things.
	rec := doRequest(t, router, http.MethodPost, "/transaction", `{"lbp_amount":90000,"usd_amount":1,"usd_to_lbp":false}`, tellerCaller)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if uc.createInput == nil || uc.createInput.UsdToLbp {
		t.Fatalf("direction flag not forwarded: %+v", uc.createInput)
	}
}

func TestCreateTransactionNonTellerMapsTo403(t *testing.T) {
	uc := &fakeTransactionUsecase{err: domain.ErrForbidden}
	router := newTransactionTestRouter(uc)

	rec := doRequest(t, router, http.MethodPost, "/transaction", `{"lbp_amount":90000,"usd_amount":1,"usd_to_lbp":true}`, userCaller)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestGetTransactionsSerializesNullUser(t *testing.T) {
	own := "user-1"
	uc := &fakeTransactionUsecase{trxs: []*domain.Transaction{
		{ID: "t1", UserID: &own, TellerID: "teller-a", UsdAmount: 100, LbpAmount: 90, UsdToLbp: true},
		{ID: "t2", UserID: nil, TellerID: "teller-a"},
	}}
	router := newTransactionTestRouter(uc)

	rec := doRequest(t, router, http.MethodGet, "/transaction", "", tellerCaller)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body []struct {
		ID     string  `json:"id"`
		UserID *string `json:"user_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(body))
	}
	for _, trx := range body {
		if trx.ID == "t1" && (trx.UserID == nil || *trx.UserID != "user-1") {
			t.Fatalf("expected market transaction to carry its user")
		}
		if trx.ID == "t2" && trx.UserID != nil {
			t.Fatalf("manual transaction user must serialize as null")
		}
	}
}

func TestGetTransactionsRequiresToken(t *testing.T) {
	uc := &fakeTransactionUsecase{}
	router := newTransactionTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/transaction", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without token, got %d", rec.Code)
	}
}
