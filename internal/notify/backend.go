package notify

import "fmt"

// Backend names accepted by NewSender.
const (
	BackendLog     = "log"
	BackendEmailJS = "emailjs"
	BackendDesktop = "desktop"
)

// NewSender picks a Sender by backend name. The EmailJS settings are only
// used by the emailjs backend.
func NewSender(backend string, emailJS EmailJS) (Sender, error) {
	switch backend {
	case BackendLog, "":
		return LogOnly{}, nil
	case BackendEmailJS:
		ej := emailJS
		return &ej, nil
	case BackendDesktop:
		return Desktop{}, nil
	default:
		return nil, fmt.Errorf("unknown notify backend %q", backend)
	}
}
