package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"ltg-admin/internal/insight"
	"ltg-admin/internal/logger"
	"ltg-admin/internal/model"
	"ltg-admin/internal/store"
)

const dateLayout = "2006-01-02"

type CertificateService struct {
	store  store.Store
	notify *NotificationService
}

func NewCertificateService(st store.Store, notify *NotificationService) *CertificateService {
	return &CertificateService{store: st, notify: notify}
}

func (s *CertificateService) List(ctx context.Context) []model.Certificate {
	var certs []model.Certificate
	if err := s.store.Find(ctx, store.Certificates, &certs); err != nil {
		logger.Err("certificate.list failed", err)
		return []model.Certificate{}
	}
	return certs
}

// Create issues a certificate: generates the certificate id and verification
// code, derives the grade from the (clamped) score, sets expiry to issue date
// plus two years, and uploads the optional document first so its URL lands on
// the stored record.
func (s *CertificateService) Create(ctx context.Context, cert *model.Certificate, document *FileUpload) error {
	now := time.Now()
	cert.ObjectID = ""
	cert.CompletionScore = insight.ClampScore(cert.CompletionScore)
	cert.Grade = insight.Grade(cert.CompletionScore)
	if cert.IssueDate == "" {
		cert.IssueDate = now.Format(dateLayout)
	}
	issued, err := time.Parse(dateLayout, cert.IssueDate)
	if err != nil {
		return fmt.Errorf("create certificate: bad issueDate %q: %w", cert.IssueDate, err)
	}
	cert.ExpiryDate = issued.AddDate(2, 0, 0).Format(dateLayout)
	if cert.Status == "" {
		cert.Status = "pending"
	}

	year := issued.Year()
	cert.CertificateID = fmt.Sprintf("LTG-%d-%03d", year, s.nextSequence(ctx, year))
	cert.VerificationCode = fmt.Sprintf("VER-%03d-%d", rand.Intn(1000), year)

	if document != nil {
		url, err := s.store.Upload(ctx, "certificates", cert.CertificateID+"_"+document.Filename, document.Reader)
		if err != nil {
			return fmt.Errorf("upload certificate document: %w", err)
		}
		cert.DocumentURL = url
	}

	if err := s.store.Save(ctx, store.Certificates, cert); err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}
	logger.Info("certificate.create.ok", "id", cert.ObjectID, "certificateId", cert.CertificateID)
	s.notify.Notify(ctx, "success", "Certificate Created",
		fmt.Sprintf("Certificate for %s in %s", cert.InternName, cert.CourseName), "certificate", cert.ObjectID)
	return nil
}

// Update re-derives the grade so score edits can never leave a stale letter.
// Identity fields (certificateId, verificationCode) are never regenerated.
func (s *CertificateService) Update(ctx context.Context, cert *model.Certificate) error {
	if cert.ObjectID == "" {
		return fmt.Errorf("update certificate: missing objectId")
	}
	cert.CompletionScore = insight.ClampScore(cert.CompletionScore)
	cert.Grade = insight.Grade(cert.CompletionScore)
	if err := s.store.Save(ctx, store.Certificates, cert); err != nil {
		return fmt.Errorf("update certificate %s: %w", cert.ObjectID, err)
	}
	logger.Info("certificate.update.ok", "id", cert.ObjectID)
	return nil
}

func (s *CertificateService) Delete(ctx context.Context, id string) error {
	if err := s.store.Remove(ctx, store.Certificates, id); err != nil {
		return fmt.Errorf("delete certificate %s: %w", id, err)
	}
	logger.Info("certificate.delete.ok", "id", id)
	return nil
}

// nextSequence scans existing certificate ids for the year and returns the
// next 1-based sequence. A failed read starts the year at 1, which only risks
// an id collision the store's unique index will reject.
func (s *CertificateService) nextSequence(ctx context.Context, year int) int {
	var certs []model.Certificate
	if err := s.store.Find(ctx, store.Certificates, &certs); err != nil {
		logger.Warn("certificate.sequence read failed", "err", err)
		return 1
	}
	prefix := fmt.Sprintf("LTG-%d-", year)
	max := 0
	for _, c := range certs {
		if !strings.HasPrefix(c.CertificateID, prefix) {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(strings.TrimPrefix(c.CertificateID, prefix), "%d", &n); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}
