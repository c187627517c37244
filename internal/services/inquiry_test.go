package services

import (
	"fmt"
	"testing"

	"github.com/Mo2025mo/la-automotive/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInquiries() *InquiryService {
	return NewInquiryService(testConfig(), nil)
}

func TestSubmitAndList(t *testing.T) {
	inquiries := newTestInquiries()

	submitted := inquiries.Submit(ContactInquiry("Jane Doe", "jane@example.com", "07700 900123", "Do you fit brake pads?"))
	assert.NotEmpty(t, submitted.ID)
	assert.Equal(t, models.InquiryNew, submitted.Status)
	assert.False(t, submitted.Timestamp.IsZero())

	list := inquiries.List()
	require.Len(t, list, 1)
	assert.Equal(t, submitted.ID, list[0].ID)
	assert.Equal(t, models.InquiryNew, list[0].Status)
	assert.Equal(t, "General Enquiry from Jane Doe", list[0].Subject)
}

func TestMarkRead(t *testing.T) {
	inquiries := newTestInquiries()

	first := inquiries.Submit(ContactInquiry("A", "a@example.com", "", "first"))
	second := inquiries.Submit(ContactInquiry("B", "b@example.com", "", "second"))

	require.NoError(t, inquiries.MarkRead(first.ID))

	byID := make(map[string]models.Inquiry)
	for _, inquiry := range inquiries.List() {
		byID[inquiry.ID] = inquiry
	}
	assert.Equal(t, models.InquiryRead, byID[first.ID].Status)
	assert.Equal(t, models.InquiryNew, byID[second.ID].Status)

	// Idempotent: marking again is a no-op, not an error.
	require.NoError(t, inquiries.MarkRead(first.ID))
	for _, inquiry := range inquiries.List() {
		if inquiry.ID == first.ID {
			assert.Equal(t, models.InquiryRead, inquiry.Status)
		}
	}

	assert.ErrorIs(t, inquiries.MarkRead("no-such-id"), ErrNotFound)
}

func TestDelete(t *testing.T) {
	inquiries := newTestInquiries()

	first := inquiries.Submit(ContactInquiry("A", "a@example.com", "", "first"))
	inquiries.Submit(ContactInquiry("B", "b@example.com", "", "second"))

	require.NoError(t, inquiries.Delete(first.ID))
	list := inquiries.List()
	require.Len(t, list, 1)
	assert.NotEqual(t, first.ID, list[0].ID)

	assert.ErrorIs(t, inquiries.Delete(first.ID), ErrNotFound)
}

func TestQueueCapacity(t *testing.T) {
	inquiries := newTestInquiries()

	oldest := inquiries.Submit(ContactInquiry("Customer 0", "c0@example.com", "", "message 0"))
	for i := 1; i <= 1000; i++ {
		inquiries.Submit(ContactInquiry(fmt.Sprintf("Customer %d", i), "c@example.com", "", "message"))
	}

	assert.Equal(t, 1000, inquiries.Count())
	for _, inquiry := range inquiries.List() {
		assert.NotEqual(t, oldest.ID, inquiry.ID, "the oldest inquiry must have been trimmed")
	}
}

func TestProducerMapping(t *testing.T) {
	t.Run("service request", func(t *testing.T) {
		inquiry := ServiceRequestInquiry(
			"John Smith", "07700 900456", "john@example.com",
			"AB12 CDE", "Ford", "Focus", "2018",
			"Brakes", "Grinding noise when braking", "phone",
		)
		assert.Equal(t, "New Brakes Request from John Smith", inquiry.Subject)
		assert.Equal(t, "Brakes", inquiry.ServiceType)
		assert.Equal(t, "Ford Focus (2018) - AB12 CDE", inquiry.VehicleDetails)
		assert.Equal(t, "phone", inquiry.ContactMethod)
	})

	t.Run("price match", func(t *testing.T) {
		inquiry := PriceMatchInquiry("Brake discs", "45.99", "Hastings Auto Parts", "c@example.com", "")
		assert.Equal(t, "Price Match Request - Brake discs", inquiry.Subject)
		assert.Contains(t, inquiry.Message, "£45.99")
		assert.Contains(t, inquiry.Message, "Hastings Auto Parts")
		assert.Equal(t, "Price Match", inquiry.ServiceType)
	})
}
