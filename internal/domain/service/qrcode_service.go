package service

// QRCodeService defines the interface for share code generation and parsing
type QRCodeService interface {
	// GenerateEstablishmentQR renders a PNG share code pointing at an establishment
	GenerateEstablishmentQR(establishmentID string) ([]byte, error)

	// ParseEstablishmentQR extracts the establishment id from share code content
	ParseEstablishmentQR(content string) (string, error)
}
