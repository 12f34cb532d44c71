package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"getunlocked-be/internal/dto"
	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/pkg/logger"
	"getunlocked-be/internal/pkg/mailer"
	"getunlocked-be/internal/repository/specification"
	"getunlocked-be/internal/repository/unitofwork"
	"getunlocked-be/pkg/events"
	pktNats "getunlocked-be/pkg/nats"
	"getunlocked-be/pkg/paypal"

	"github.com/google/uuid"
)

// planPricing mirrors the checkout pricing table. Every plan is created as
// a one-time CAPTURE order; PayPal subscription plans would need to be
// pre-created in the provider dashboard.
type planPricing struct {
	Amount    string
	Currency  string
	Recurring bool
	Period    string
}

var planCatalog = map[string]planPricing{
	entity.PlanPlus:         {Amount: "12.00", Currency: "USD", Recurring: true, Period: "monthly"},
	entity.PlanBeyond:       {Amount: "39.00", Currency: "USD", Recurring: true, Period: "yearly"},
	entity.PlanEchoMonthly:  {Amount: "4.00", Currency: "USD", Recurring: true, Period: "monthly"},
	entity.PlanEchoLifetime: {Amount: "12.00", Currency: "USD", Recurring: false},
}

type IPaymentService interface {
	CreatePayment(ctx context.Context, userId uuid.UUID, planName string) (*dto.CreatePaymentResponse, error)
	CapturePayment(ctx context.Context, userId uuid.UUID, orderId string) (*dto.PaymentResponse, error)
	HandleWebhook(ctx context.Context, headers paypal.WebhookHeaders, body []byte) error
	CheckSubscription(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error)
	ListPayments(ctx context.Context, userId uuid.UUID) ([]*entity.PayPalPayment, error)
}

type paymentService struct {
	uowFactory         unitofwork.RepositoryFactory
	paypalClient       *paypal.Client
	webhookID          string
	clientURL          string
	entitlementService IEntitlementService
	eventPublisher     *pktNats.Publisher
	emailService       mailer.IEmailService
	logger             logger.ILogger
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	paypalClient *paypal.Client,
	webhookID string,
	clientURL string,
	entitlementService IEntitlementService,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	sysLogger logger.ILogger,
) IPaymentService {
	return &paymentService{
		uowFactory:         uowFactory,
		paypalClient:       paypalClient,
		webhookID:          webhookID,
		clientURL:          clientURL,
		entitlementService: entitlementService,
		eventPublisher:     eventPublisher,
		emailService:       emailService,
		logger:             sysLogger,
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, userId uuid.UUID, planName string) (*dto.CreatePaymentResponse, error) {
	pricing, ok := planCatalog[planName]
	if !ok {
		return nil, fmt.Errorf("unknown plan %q", planName)
	}

	order, err := s.paypalClient.CreateOrder(ctx, paypal.OrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []paypal.PurchaseUnit{{
			Amount: paypal.Amount{
				CurrencyCode: pricing.Currency,
				Value:        pricing.Amount,
			},
			Description: fmt.Sprintf("GetUnlocked - %s", planName),
		}},
		ApplicationContext: paypal.ApplicationContext{
			BrandName:   "GetUnlocked",
			LandingPage: "NO_PREFERENCE",
			UserAction:  "PAY_NOW",
			ReturnURL:   fmt.Sprintf("%s/payment-success", s.clientURL),
			CancelURL:   fmt.Sprintf("%s/pricing", s.clientURL),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create PayPal order: %w", err)
	}

	payment := &entity.PayPalPayment{
		Id:            uuid.New(),
		UserId:        userId,
		PlanName:      planName,
		PayPalOrderId: order.ID,
		Amount:        pricing.Amount,
		Currency:      pricing.Currency,
		Status:        entity.PaymentStatusPending,
		// One-time CAPTURE orders only; recurring plans are not pre-created.
		IsRecurring: false,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SubscriptionRepository().CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to store payment record: %w", err)
	}

	return &dto.CreatePaymentResponse{
		PaymentId:   payment.Id,
		OrderId:     order.ID,
		ApprovalUrl: order.ApprovalURL(),
		Amount:      pricing.Amount,
		Currency:    pricing.Currency,
	}, nil
}

// HandleWebhook verifies the event signature against PayPal's verification
// endpoint before trusting anything in the body.
// CapturePayment finalizes an approved order when the buyer returns from
// PayPal. The webhook remains the source of truth, so a capture already
// processed there is treated as success.
func (s *paymentService) CapturePayment(ctx context.Context, userId uuid.UUID, orderId string) (*dto.PaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	payment, err := uow.SubscriptionRepository().FindPaymentByOrderId(ctx, orderId)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.UserId != userId {
		return nil, errors.New("payment not found")
	}

	if payment.Status != entity.PaymentStatusCompleted {
		order, err := s.paypalClient.CaptureOrder(ctx, orderId)
		if err != nil {
			return nil, fmt.Errorf("failed to capture order: %w", err)
		}
		if order.Status != "COMPLETED" {
			return nil, errors.New("payment not completed")
		}

		if err := uow.SubscriptionRepository().MarkPaymentCompleted(ctx, orderId, order.ID, time.Now()); err != nil {
			return nil, err
		}
		if err := s.activateSubscription(ctx, payment.UserId, payment.PlanName); err != nil {
			return nil, err
		}

		payment, err = uow.SubscriptionRepository().FindPaymentByOrderId(ctx, orderId)
		if err != nil || payment == nil {
			return nil, errors.New("payment not found")
		}
	}

	res := dto.PaymentResponseFrom(payment)
	return &res, nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, headers paypal.WebhookHeaders, body []byte) error {
	valid, err := s.paypalClient.VerifyWebhookSignature(ctx, s.webhookID, headers, body)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}
	if !valid {
		return fmt.Errorf("invalid webhook signature")
	}

	event, err := paypal.ParseWebhookEvent(body)
	if err != nil {
		return err
	}

	s.logger.Info("payment", "PayPal webhook received", map[string]interface{}{
		"event_type": event.EventType,
		"event_id":   event.ID,
	})

	switch event.EventType {
	case paypal.EventPaymentCaptureCompleted:
		return s.handlePaymentCompleted(ctx, event)
	case paypal.EventSubscriptionActivated:
		return s.handleSubscriptionActivated(ctx, event)
	case paypal.EventSubscriptionCancelled:
		return s.handleSubscriptionCancelled(ctx, event)
	case paypal.EventSubscriptionPaymentFailed:
		s.logger.Warn("payment", "Subscription payment failed", map[string]interface{}{
			"resource_id": event.ResourceID(),
		})
		return nil
	default:
		s.logger.Info("payment", "Unhandled webhook event type", map[string]interface{}{
			"event_type": event.EventType,
		})
		return nil
	}
}

func (s *paymentService) handlePaymentCompleted(ctx context.Context, event *paypal.WebhookEvent) error {
	orderId := event.ResourceID()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SubscriptionRepository().MarkPaymentCompleted(ctx, orderId, orderId, time.Now()); err != nil {
		return err
	}

	payment, err := uow.SubscriptionRepository().FindPaymentByOrderId(ctx, orderId)
	if err != nil {
		return err
	}
	if payment == nil {
		s.logger.Warn("payment", "Completed capture for unknown order", map[string]interface{}{
			"order_id": orderId,
		})
		return nil
	}

	return s.activateSubscription(ctx, payment.UserId, payment.PlanName)
}

func (s *paymentService) handleSubscriptionActivated(ctx context.Context, event *paypal.WebhookEvent) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	payment, err := uow.SubscriptionRepository().FindPaymentBySubscriptionId(ctx, event.ResourceID())
	if err != nil || payment == nil {
		return err
	}
	return s.activateSubscription(ctx, payment.UserId, payment.PlanName)
}

func (s *paymentService) handleSubscriptionCancelled(ctx context.Context, event *paypal.WebhookEvent) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	payment, err := uow.SubscriptionRepository().FindPaymentBySubscriptionId(ctx, event.ResourceID())
	if err != nil || payment == nil {
		return err
	}

	if err := uow.SubscriptionRepository().DeactivateSubscription(ctx, payment.UserId, time.Now()); err != nil {
		return err
	}
	s.entitlementService.Invalidate(payment.UserId)

	if s.eventPublisher != nil {
		busEvent := events.BaseEvent{
			Type:       events.TypeSubscriptionDeactivated,
			Data:       map[string]interface{}{"user_id": payment.UserId},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, busEvent); err != nil {
			s.logger.Warn("payment", "Failed to publish subscription deactivated event", map[string]interface{}{
				"user_id": payment.UserId,
				"error":   err.Error(),
			})
		}
	}
	return nil
}

func (s *paymentService) activateSubscription(ctx context.Context, userId uuid.UUID, planName string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SubscriptionRepository().ActivateSubscription(ctx, userId, planName, "paypal", time.Now()); err != nil {
		return err
	}
	s.entitlementService.Invalidate(userId)

	if s.eventPublisher != nil {
		busEvent := events.BaseEvent{
			Type: events.TypeSubscriptionActivated,
			Data: map[string]interface{}{
				"user_id": userId,
				"plan":    planName,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, busEvent); err != nil {
			s.logger.Warn("payment", "Failed to publish subscription activated event", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}

	if s.emailService != nil {
		go s.sendThanksEmail(userId, planName)
	}

	s.logger.Info("payment", "Subscription activated", map[string]interface{}{
		"user_id": userId,
		"plan":    planName,
	})
	return nil
}

func (s *paymentService) sendThanksEmail(userId uuid.UUID, planName string) {
	ctx := context.Background()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return
	}
	if emailErr := s.emailService.SendSubscriptionThanks(user.Email, user.FullName, planName); emailErr != nil {
		s.logger.Warn("payment", "Failed to send subscription email", map[string]interface{}{
			"user_id": userId,
			"error":   emailErr.Error(),
		})
	}
}

func (s *paymentService) CheckSubscription(ctx context.Context, userId uuid.UUID) (*dto.SubscriptionStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindSubscriber(ctx, userId)
	if err != nil {
		// Degrade to unsubscribed rather than erroring the status widget.
		s.logger.Warn("payment", "Subscriber read failed, reporting unsubscribed", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return &dto.SubscriptionStatusResponse{Subscribed: false}, nil
	}
	if sub == nil {
		return &dto.SubscriptionStatusResponse{Subscribed: false}, nil
	}

	return &dto.SubscriptionStatusResponse{
		Subscribed:       sub.Subscribed,
		SubscriptionTier: sub.SubscriptionTier,
		SubscriptionEnd:  sub.SubscriptionEnd,
	}, nil
}

func (s *paymentService) ListPayments(ctx context.Context, userId uuid.UUID) ([]*entity.PayPalPayment, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SubscriptionRepository().FindPaymentsByUser(ctx, userId)
}
