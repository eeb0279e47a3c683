package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockSupplierAPIForTest creates a MockSupplierAPI wired to the test's
// lifecycle so expectations are verified automatically.
func NewMockSupplierAPIForTest(t *testing.T) *MockSupplierAPI {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSupplierAPI(ctrl)
}

// NewMockPromoAPIForTest creates a MockPromoAPI wired to the test's lifecycle.
func NewMockPromoAPIForTest(t *testing.T) *MockPromoAPI {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPromoAPI(ctrl)
}

// NewMockLoyaltyAPIForTest creates a MockLoyaltyAPI wired to the test's lifecycle.
func NewMockLoyaltyAPIForTest(t *testing.T) *MockLoyaltyAPI {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockLoyaltyAPI(ctrl)
}

// NewMockPaymentsAPIForTest creates a MockPaymentsAPI wired to the test's lifecycle.
func NewMockPaymentsAPIForTest(t *testing.T) *MockPaymentsAPI {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPaymentsAPI(ctrl)
}

// NewMockCRSAPIForTest creates a MockCRSAPI wired to the test's lifecycle.
func NewMockCRSAPIForTest(t *testing.T) *MockCRSAPI {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCRSAPI(ctrl)
}

// NewMockWhatsAppAPIForTest creates a MockWhatsAppAPI wired to the test's lifecycle.
func NewMockWhatsAppAPIForTest(t *testing.T) *MockWhatsAppAPI {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockWhatsAppAPI(ctrl)
}

// NewMockNotificationQueueForTest creates a MockNotificationQueue wired to the
// test's lifecycle.
func NewMockNotificationQueueForTest(t *testing.T) *MockNotificationQueue {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockNotificationQueue(ctrl)
}

// NewMockImageUploaderForTest creates a MockImageUploader wired to the test's
// lifecycle.
func NewMockImageUploaderForTest(t *testing.T) *MockImageUploader {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockImageUploader(ctrl)
}

// NewMockRateServiceForTest creates a MockRateService wired to the test's lifecycle.
func NewMockRateServiceForTest(t *testing.T) *MockRateService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRateService(ctrl)
}

// NewMockBookingServiceForTest creates a MockBookingService wired to the test's lifecycle.
func NewMockBookingServiceForTest(t *testing.T) *MockBookingService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockBookingService(ctrl)
}

// NewMockPromoServiceForTest creates a MockPromoService wired to the test's lifecycle.
func NewMockPromoServiceForTest(t *testing.T) *MockPromoService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPromoService(ctrl)
}

// NewMockLoyaltyServiceForTest creates a MockLoyaltyService wired to the test's lifecycle.
func NewMockLoyaltyServiceForTest(t *testing.T) *MockLoyaltyService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockLoyaltyService(ctrl)
}

// NewMockReservationServiceForTest creates a MockReservationService wired to
// the test's lifecycle.
func NewMockReservationServiceForTest(t *testing.T) *MockReservationService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockReservationService(ctrl)
}

// NewMockClientServiceForTest creates a MockClientService wired to the test's lifecycle.
func NewMockClientServiceForTest(t *testing.T) *MockClientService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockClientService(ctrl)
}

// NewMockInvoiceServiceForTest creates a MockInvoiceService wired to the test's lifecycle.
func NewMockInvoiceServiceForTest(t *testing.T) *MockInvoiceService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockInvoiceService(ctrl)
}

// NewMockAnalyticsServiceForTest creates a MockAnalyticsService wired to the
// test's lifecycle.
func NewMockAnalyticsServiceForTest(t *testing.T) *MockAnalyticsService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockAnalyticsService(ctrl)
}

// NewMockInboxServiceForTest creates a MockInboxService wired to the test's lifecycle.
func NewMockInboxServiceForTest(t *testing.T) *MockInboxService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockInboxService(ctrl)
}

// NewMockBlogServiceForTest creates a MockBlogService wired to the test's lifecycle.
func NewMockBlogServiceForTest(t *testing.T) *MockBlogService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockBlogService(ctrl)
}

// NewMockEmailServiceForTest creates a MockEmailService wired to the test's lifecycle.
func NewMockEmailServiceForTest(t *testing.T) *MockEmailService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEmailService(ctrl)
}

// NewMockNotificationServiceForTest creates a MockNotificationService wired to
// the test's lifecycle.
func NewMockNotificationServiceForTest(t *testing.T) *MockNotificationService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockNotificationService(ctrl)
}

// NewMockPaymentWebhookServiceForTest creates a MockPaymentWebhookService wired
// to the test's lifecycle.
func NewMockPaymentWebhookServiceForTest(t *testing.T) *MockPaymentWebhookService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPaymentWebhookService(ctrl)
}

// NewMockCurrencyServiceForTest creates a MockCurrencyService wired to the
// test's lifecycle.
func NewMockCurrencyServiceForTest(t *testing.T) *MockCurrencyService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCurrencyService(ctrl)
}

// NewMockEventBroadcasterForTest creates a MockEventBroadcaster wired to the
// test's lifecycle.
func NewMockEventBroadcasterForTest(t *testing.T) *MockEventBroadcaster {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEventBroadcaster(ctrl)
}
