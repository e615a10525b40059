package qrcode

import (
	"net/url"
	"strings"

	"cleanbite/config"
	"cleanbite/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:8080"

	// ShareParam is the query parameter the viewer reads on page load.
	ShareParam = "establishment"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              *url.URL
}

// NewQRCodeService creates a share code service from the qrcode config section
func NewQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	size, level, base := defaultSize, "M", defaultBaseURL
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
		if cfg.QRCode.BaseURL != "" {
			base = cfg.QRCode.BaseURL
		}
	}

	return New(size, level, base)
}

// New creates a share code service with explicit settings
func New(size int, errorCorrectionLevel, baseURL string) (service.QRCodeService, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse share base url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("share base url must be absolute: %q", baseURL)
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              u,
	}, nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ShareURL returns the viewer link a share code encodes
func (s *qrcodeService) ShareURL(establishmentID string) string {
	u := *s.baseURL
	if u.Path == "" {
		u.Path = "/"
	}
	q := url.Values{}
	q.Set(ShareParam, establishmentID)
	u.RawQuery = q.Encode()

	return u.String()
}

// GenerateEstablishmentQR renders the establishment's share link as a PNG
func (s *qrcodeService) GenerateEstablishmentQR(establishmentID string) ([]byte, error) {
	if establishmentID == "" {
		return nil, errors.New("establishment id is empty")
	}

	qrCode, err := qrcode.New(s.ShareURL(establishmentID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseEstablishmentQR reads the establishment id back out of a scanned share link
func (s *qrcodeService) ParseEstablishmentQR(content string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(content))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse share link")
	}

	if !strings.EqualFold(u.Host, s.baseURL.Host) {
		return "", errors.Errorf("share link host %q is not %q", u.Host, s.baseURL.Host)
	}

	id := u.Query().Get(ShareParam)
	if id == "" {
		return "", errors.Errorf("share link has no %s parameter", ShareParam)
	}

	return id, nil
}
