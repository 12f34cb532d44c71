package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"
	"getunlocked-be/pkg/paypal"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newPayPalStub serves the order lifecycle endpoints the client hits.
func newPayPalStub(t *testing.T, verificationStatus string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "stub-token",
			"expires_in":   3600,
		})
	})

	mux.HandleFunc("/v2/checkout/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stub-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "ORDER-123",
			"status": "CREATED",
			"links": []map[string]string{
				{"rel": "self", "href": "https://paypal.test/orders/ORDER-123"},
				{"rel": "approve", "href": "https://paypal.test/approve/ORDER-123"},
			},
		})
	})

	mux.HandleFunc("/v2/checkout/orders/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/capture") {
			http.NotFound(w, r)
			return
		}
		orderId := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v2/checkout/orders/"), "/capture")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     orderId,
			"status": "COMPLETED",
		})
	})

	mux.HandleFunc("/v1/notifications/verify-webhook-signature", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"verification_status": verificationStatus})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newPaymentTestService(t *testing.T, verificationStatus string) (IPaymentService, IEntitlementService, *gorm.DB, uuid.UUID) {
	factory, db := newTestFactory(t)
	entitlements := NewEntitlementService(factory, testLogger)

	stub := newPayPalStub(t, verificationStatus)
	client := paypal.NewClient(stub.URL, "client-id", "client-secret")

	svc := NewPaymentService(factory, client, "WH-1", "https://app.example.com", entitlements, nil, nil, testLogger)

	userId := seedUser(t, db, "payer@example.com")
	seedProfile(t, db, userId, "Payer")

	return svc, entitlements, db, userId
}

func TestPaymentService_CreatePaymentUnknownPlan(t *testing.T) {
	svc, _, _, userId := newPaymentTestService(t, "SUCCESS")

	_, err := svc.CreatePayment(context.Background(), userId, "gold-tier")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown plan")
}

func TestPaymentService_CreatePaymentStoresPendingOrder(t *testing.T) {
	svc, _, db, userId := newPaymentTestService(t, "SUCCESS")

	res, err := svc.CreatePayment(context.Background(), userId, entity.PlanPlus)

	require.NoError(t, err)
	assert.Equal(t, "ORDER-123", res.OrderId)
	assert.Equal(t, "https://paypal.test/approve/ORDER-123", res.ApprovalUrl)
	assert.Equal(t, "12.00", res.Amount)
	assert.Equal(t, "USD", res.Currency)

	var row model.PayPalPayment
	require.NoError(t, db.Where("pay_pal_order_id = ?", "ORDER-123").First(&row).Error)
	assert.Equal(t, userId, row.UserId)
	assert.Equal(t, entity.PlanPlus, row.PlanName)
	assert.Equal(t, string(entity.PaymentStatusPending), row.Status)
}

func TestPaymentService_CapturePaymentActivatesSubscription(t *testing.T) {
	svc, entitlements, db, userId := newPaymentTestService(t, "SUCCESS")

	created, err := svc.CreatePayment(context.Background(), userId, entity.PlanPlus)
	require.NoError(t, err)

	res, err := svc.CapturePayment(context.Background(), userId, created.OrderId)

	require.NoError(t, err)
	assert.Equal(t, string(entity.PaymentStatusCompleted), res.Status)

	var sub model.Subscriber
	require.NoError(t, db.Where("user_id = ?", userId).First(&sub).Error)
	assert.True(t, sub.Subscribed)
	assert.Equal(t, entity.PlanPlus, sub.SubscriptionTier)

	ent := entitlements.Resolve(context.Background(), userId)
	assert.Equal(t, entity.TierPlus, ent.Tier)
}

func TestPaymentService_CapturePaymentForeignOrder(t *testing.T) {
	svc, _, db, userId := newPaymentTestService(t, "SUCCESS")

	otherId := seedUser(t, db, "someone-else@example.com")
	_, err := svc.CreatePayment(context.Background(), otherId, entity.PlanPlus)
	require.NoError(t, err)

	_, err = svc.CapturePayment(context.Background(), userId, "ORDER-123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPaymentService_HandleWebhookRejectsBadSignature(t *testing.T) {
	svc, _, _, _ := newPaymentTestService(t, "FAILURE")

	body := []byte(`{"id":"WH-EVT-1","event_type":"PAYMENT.CAPTURE.COMPLETED","resource":{"id":"ORDER-123"}}`)

	err := svc.HandleWebhook(context.Background(), paypal.WebhookHeaders{TransmissionID: "t-1"}, body)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature")
}

func TestPaymentService_HandleWebhookCaptureCompleted(t *testing.T) {
	svc, _, db, userId := newPaymentTestService(t, "SUCCESS")

	_, err := svc.CreatePayment(context.Background(), userId, entity.PlanBeyond)
	require.NoError(t, err)

	body := []byte(`{"id":"WH-EVT-2","event_type":"PAYMENT.CAPTURE.COMPLETED","resource":{"id":"ORDER-123"}}`)

	err = svc.HandleWebhook(context.Background(), paypal.WebhookHeaders{TransmissionID: "t-2"}, body)

	require.NoError(t, err)

	var payment model.PayPalPayment
	require.NoError(t, db.Where("pay_pal_order_id = ?", "ORDER-123").First(&payment).Error)
	assert.Equal(t, string(entity.PaymentStatusCompleted), payment.Status)
	require.NotNil(t, payment.CompletedAt)

	var sub model.Subscriber
	require.NoError(t, db.Where("user_id = ?", userId).First(&sub).Error)
	assert.True(t, sub.Subscribed)
	assert.Equal(t, entity.PlanBeyond, sub.SubscriptionTier)
}

func TestPaymentService_HandleWebhookSubscriptionCancelled(t *testing.T) {
	svc, entitlements, db, userId := newPaymentTestService(t, "SUCCESS")

	subId := "I-SUB123"
	require.NoError(t, db.Create(&model.PayPalPayment{
		Id:                   uuid.New(),
		UserId:               userId,
		PlanName:             entity.PlanPlus,
		PayPalOrderId:        "ORDER-SUB",
		PayPalSubscriptionId: &subId,
		Amount:               "12.00",
		Currency:             "USD",
		Status:               string(entity.PaymentStatusCompleted),
	}).Error)
	seedSubscriber(t, db, userId, entity.PlanPlus)

	body := []byte(fmt.Sprintf(`{"id":"WH-EVT-3","event_type":"BILLING.SUBSCRIPTION.CANCELLED","resource":{"id":"%s"}}`, subId))

	err := svc.HandleWebhook(context.Background(), paypal.WebhookHeaders{TransmissionID: "t-3"}, body)

	require.NoError(t, err)

	var sub model.Subscriber
	require.NoError(t, db.Where("user_id = ?", userId).First(&sub).Error)
	assert.False(t, sub.Subscribed)

	ent := entitlements.Resolve(context.Background(), userId)
	assert.Equal(t, entity.TierFree, ent.Tier)
}

func TestPaymentService_CheckSubscription(t *testing.T) {
	svc, _, db, userId := newPaymentTestService(t, "SUCCESS")
	seedSubscriber(t, db, userId, entity.PlanPlus)

	status, err := svc.CheckSubscription(context.Background(), userId)

	require.NoError(t, err)
	assert.True(t, status.Subscribed)
	assert.Equal(t, entity.PlanPlus, status.SubscriptionTier)
}
