package resolver

import (
	"strings"

	"github.com/mileusna/useragent"
	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
)

// ClassifyDevice maps a User-Agent header to a device class.
// Anything not recognized as a tablet or phone, including empty headers and
// bots, is a desktop.
func ClassifyDevice(userAgent string) domain.DeviceClass {
	if strings.TrimSpace(userAgent) == "" {
		return domain.DeviceDesktop
	}
	ua := useragent.Parse(userAgent)
	switch {
	case ua.Tablet:
		return domain.DeviceTablet
	case ua.Mobile:
		return domain.DeviceMobile
	default:
		return domain.DeviceDesktop
	}
}
