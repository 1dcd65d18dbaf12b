package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/edushare/internal/client/models"
	"github.com/dmitrijs2005/edushare/internal/client/session"
	"github.com/dmitrijs2005/edushare/internal/client/ui"
	"github.com/dmitrijs2005/edushare/internal/common"
)

// getSimpleText, getPassword, getChoice and confirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getChoice     = GetChoice
	confirm       = Confirm
)

// Login opens the login overlay, prompts for credentials and authenticates.
//
// On success the session is stored, "Login successful!" is shown and, after
// config.RedirectDelay, the landing view for the user's role is rendered:
// teachers get their own uploads, everyone else the student search view.
// On failure the stored session is left untouched. A login submitted while
// another is in flight is ignored.
func (a *App) Login(ctx context.Context) error {
	submit := a.submits[submitLogin]
	if submit.Disabled() {
		return ui.ErrBusy
	}

	a.overlays.Open(ui.OverlayLogin)
	defer a.overlays.Close()

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var sess *models.Session
	err = submit.Submit(ctx, func(ctx context.Context) error {
		a.println(submit.Label())
		var err error
		sess, err = a.auth.Login(ctx, username, string(password))
		return err
	})
	if errors.Is(err, ui.ErrBusy) {
		return nil
	}
	if err != nil {
		a.reportFailure(ctx, "Login", err)
		return err
	}

	a.log.Info(ctx, "logged in", "user", sess.User.Username, "role", sess.User.Role)
	a.notifier.Success(msgLoginOK)
	a.overlays.Close()

	if err := wait(ctx, a.config.RedirectDelay); err != nil {
		return err
	}
	return a.land(ctx, sess)
}

// land renders the view a freshly logged-in user starts on.
func (a *App) land(ctx context.Context, sess *models.Session) error {
	if sess.HasRole(models.RoleTeacher) {
		return a.Mine(ctx)
	}
	return a.browse(ctx, nil)
}

// Register opens the register overlay and creates an account. On success the
// login overlay is opened in its place.
func (a *App) Register(ctx context.Context) error {
	submit := a.submits[submitRegister]
	if submit.Disabled() {
		return ui.ErrBusy
	}

	a.overlays.Open(ui.OverlayRegister)
	defer func() {
		if a.overlays.IsOpen(ui.OverlayRegister) {
			a.overlays.Close()
		}
	}()

	req, err := a.readRegisterForm()
	if err != nil {
		a.println("Error:", err)
		return err
	}

	err = submit.Submit(ctx, func(ctx context.Context) error {
		a.println(submit.Label())
		_, err := a.auth.Register(ctx, req)
		return err
	})
	if errors.Is(err, ui.ErrBusy) {
		return nil
	}
	if err != nil {
		a.reportFailure(ctx, "Registration", err)
		return err
	}

	a.notifier.Success(msgRegisterOK)
	return a.Login(ctx)
}

func (a *App) readRegisterForm() (models.RegisterRequest, error) {
	var req models.RegisterRequest

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return req, err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return req, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return req, err
	}
	role, err := getChoice(a.reader, "Role", []string{string(models.RoleStudent), string(models.RoleTeacher)}, string(models.RoleStudent), a.out)
	if err != nil {
		return req, err
	}
	phone, err := getSimpleText(a.reader, "Phone number (optional)", a.out)
	if err != nil {
		return req, err
	}
	country, err := getSimpleText(a.reader, "Country (optional)", a.out)
	if err != nil {
		return req, err
	}

	req = models.RegisterRequest{
		Username:           username,
		Email:              email,
		Password:           string(password),
		Role:               models.Role(role),
		PhoneNumber:        models.OptionalString(phone),
		Country:            models.OptionalString(country),
		LanguagePreference: models.DefaultLanguagePreference,
	}
	common.WipeByteArray(password)
	return req, nil
}

// Logout forgets the stored session and returns to the home view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.reportFailure(ctx, "Logout", err)
		return err
	}
	for _, v := range a.views {
		v.Clear()
	}
	a.notifier.Info(msgLogoutOK)
	return a.Home(ctx)
}

// WhoAmI prints the cached user. When the token is a JWT its subject and
// expiry are shown too; they are decoded without verification.
func (a *App) WhoAmI(ctx context.Context) error {
	sess := a.session(ctx)
	if sess == nil {
		a.println("Not logged in.")
		return session.ErrNoSession
	}

	u := sess.User
	a.println(fmt.Sprintf("User:  %s (id %d)", ui.Sanitize(u.Username), u.ID))
	a.println(fmt.Sprintf("Role:  %s", ui.Sanitize(string(u.Role))))
	if u.Email != "" {
		a.println(fmt.Sprintf("Email: %s", ui.Sanitize(u.Email)))
	}

	if info, ok := session.InspectToken(sess.Token); ok {
		if info.Subject != "" {
			a.println(fmt.Sprintf("Token subject: %s", ui.Sanitize(info.Subject)))
		}
		if !info.ExpiresAt.IsZero() {
			state := "valid until"
			if info.Expired(time.Now()) {
				state = "expired at"
			}
			a.println(fmt.Sprintf("Token %s %s", state, info.ExpiresAt.Local().Format(time.RFC1123)))
		}
	}
	return nil
}
