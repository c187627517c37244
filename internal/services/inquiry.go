package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Mo2025mo/la-automotive/internal/config"
	"github.com/Mo2025mo/la-automotive/internal/models"

	"github.com/google/uuid"
)

// InquiryService ingests customer submissions from the three public forms
// and exposes the triage operations used by the dashboard. The queue is
// process-local; capacity trimming happens in the same critical section as
// the append so listing stays a pure read.
type InquiryService struct {
	mu        sync.Mutex
	inquiries []models.Inquiry

	maxRetained int
	notifier    *Notifier
}

func NewInquiryService(cfg *config.Config, notifier *Notifier) *InquiryService {
	return &InquiryService{
		maxRetained: cfg.Retention.MaxInquiries,
		notifier:    notifier,
	}
}

// Submit normalizes an inquiry into the queue: assigns a surrogate id,
// stamps the submission time and sets status to new. Structural validation
// happens at the HTTP boundary; Submit never rejects.
func (s *InquiryService) Submit(inquiry models.Inquiry) models.Inquiry {
	inquiry.ID = uuid.NewString()
	inquiry.Timestamp = time.Now()
	inquiry.Status = models.InquiryNew

	s.mu.Lock()
	s.inquiries = append(s.inquiries, inquiry)
	if len(s.inquiries) > s.maxRetained {
		s.inquiries = s.inquiries[len(s.inquiries)-s.maxRetained:]
	}
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.InquirySubmitted(inquiry)
	}

	return inquiry
}

// List returns all retained inquiries, newest first.
func (s *InquiryService) List() []models.Inquiry {
	s.mu.Lock()
	out := make([]models.Inquiry, len(s.inquiries))
	copy(out, s.inquiries)
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Count returns the number of retained inquiries.
func (s *InquiryService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inquiries)
}

// MarkRead transitions an inquiry from new to read. Already-read or
// responded inquiries are left untouched; marking them again is a no-op,
// not an error.
func (s *InquiryService) MarkRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inquiries {
		if s.inquiries[i].ID != id {
			continue
		}
		if s.inquiries[i].Status == models.InquiryNew {
			s.inquiries[i].Status = models.InquiryRead
		}
		return nil
	}
	return ErrNotFound
}

// Delete removes an inquiry by id.
func (s *InquiryService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inquiries {
		if s.inquiries[i].ID == id {
			s.inquiries = append(s.inquiries[:i], s.inquiries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ContactInquiry builds an inquiry from the general contact form.
func ContactInquiry(name, email, phone, message string) models.Inquiry {
	return models.Inquiry{
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		Subject:       fmt.Sprintf("General Enquiry from %s", name),
		Message:       message,
	}
}

// ServiceRequestInquiry builds an inquiry from the service request form.
func ServiceRequestInquiry(fullName, phone, email, plate, carMake, carModel, carYear, issueCategory, issueDescription, contactMethod string) models.Inquiry {
	vehicle := fmt.Sprintf("%s %s (%s) - %s", carMake, carModel, carYear, plate)
	return models.Inquiry{
		CustomerName:   fullName,
		CustomerEmail:  email,
		CustomerPhone:  phone,
		Subject:        fmt.Sprintf("New %s Request from %s", issueCategory, fullName),
		Message:        issueDescription,
		ServiceType:    issueCategory,
		VehicleDetails: vehicle,
		ContactMethod:  contactMethod,
	}
}

// PriceMatchInquiry builds an inquiry from the price match form.
func PriceMatchInquiry(partName, competitorPrice, storeName, email, phone string) models.Inquiry {
	message := fmt.Sprintf("Part: %s\nCompetitor Price: £%s\nStore: %s", partName, competitorPrice, storeName)
	return models.Inquiry{
		CustomerName:  "Price Match Customer",
		CustomerEmail: email,
		CustomerPhone: phone,
		Subject:       fmt.Sprintf("Price Match Request - %s", partName),
		Message:       message,
		ServiceType:   "Price Match",
	}
}
