package share

import (
	"context"
	"fmt"

	lerrors "github.com/iim-amit/AmitKumar-Lumio/pkg/errors"
	"github.com/iim-amit/AmitKumar-Lumio/pkg/logging"
)

// Service validates share requests and dispatches them through a Mailer.
type Service struct {
	mailer Mailer
	sender string
	log    logging.Logger
}

// NewService creates a share Service. The sender is the fixed From address
// for all outgoing summaries.
func NewService(mailer Mailer, sender string, log logging.Logger) *Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Service{mailer: mailer, sender: sender, log: log}
}

// Share validates the request and sends one email to all recipients.
// Validation failures return ErrValidation; transport failures return
// ErrTransport wrapping the underlying error.
func (s *Service) Share(ctx context.Context, req Request) (*Result, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	email := Compose(req)
	if err := s.mailer.Send(ctx, s.sender, email); err != nil {
		s.log.WithContext(ctx).Error("share send failed",
			logging.Err(err),
			logging.F("recipients", len(req.Recipients)),
		)
		return nil, fmt.Errorf("%w: %v", lerrors.ErrTransport, err)
	}

	s.log.WithContext(ctx).Info("summary shared",
		logging.F("recipients", len(req.Recipients)),
		logging.F("format", req.Format),
	)

	return &Result{
		Success:    true,
		Message:    fmt.Sprintf("Summary sent to %d recipient(s)", len(req.Recipients)),
		Recipients: len(req.Recipients),
		Format:     req.Format,
	}, nil
}
