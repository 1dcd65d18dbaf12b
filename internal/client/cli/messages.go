package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/edushare/internal/client/api"
	"github.com/dmitrijs2005/edushare/internal/client/models"
	"github.com/dmitrijs2005/edushare/internal/client/services"
)

// User-facing messages.
const (
	msgLoginOK    = "Login successful!"
	msgRegisterOK = "Registration successful! Please login."
	msgLogoutOK   = "Logged out."
	msgUploadOK   = "Resource uploaded successfully! It will be available after approval."
	msgDeleteOK   = "Resource deleted successfully!"
	msgApproveOK  = "Resource approved."
	msgConfirmDel = "Are you sure you want to delete this resource?"
)

// failure builds the message shown for a failed action: the backend's detail
// or a local validation message after "<action> failed: ", and a generic
// retry hint for everything else (transport errors included).
func failure(action string, err error) string {
	var apiErr *api.Error
	var valErr *models.ValidationError
	switch {
	case errors.As(err, &apiErr):
		return action + " failed: " + apiErr.Detail
	case errors.As(err, &valErr):
		return action + " failed: " + valErr.Error()
	case errors.Is(err, services.ErrLoginRequired), errors.Is(err, services.ErrForbidden):
		return action + " failed: " + err.Error()
	default:
		return action + " failed. Please try again."
	}
}

// reportFailure logs err and shows the failure notification.
func (a *App) reportFailure(ctx context.Context, action string, err error) {
	a.log.Warn(ctx, "action failed", "action", action, "err", err)
	a.notifier.Error(failure(action, err))
}
