package share

import (
	"Digital-Menu-Builder/domain"
	"Digital-Menu-Builder/internal/utils/mailing"
	"Digital-Menu-Builder/pkg/style"
	"context"
	"fmt"
	"html"
	"strings"
)

type (
	ShareService interface {
		ShareMenu(ctx context.Context, req domain.ShareMenuRequest) error
		MenuURL() string
	}

	shareService struct {
		mailer     mailing.Mailer
		appURL     string
		styleStore style.StyleStore
	}
)

// NewShareService answers ErrMailDisabled when mailer is nil.
func NewShareService(mailer mailing.Mailer, appURL string, styleStore style.StyleStore) ShareService {
	return &shareService{
		mailer:     mailer,
		appURL:     strings.TrimRight(appURL, "/"),
		styleStore: styleStore,
	}
}

func (s *shareService) MenuURL() string {
	return s.appURL + "/menu"
}

func (s *shareService) ShareMenu(ctx context.Context, req domain.ShareMenuRequest) error {
	if s.mailer == nil {
		return domain.ErrMailDisabled
	}

	name := s.styleStore.QRCardStyle().RestaurantName
	subject := fmt.Sprintf("%s menu", name)
	body := fmt.Sprintf(
		`<p>Here is the menu of <strong>%s</strong>:</p><p><a href="%s">%s</a></p>`,
		html.EscapeString(name), s.MenuURL(), s.MenuURL(),
	)
	return s.mailer.SendMail(req.Email, subject, body)
}
