package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/edushare/internal/client/models"
	"github.com/dmitrijs2005/edushare/internal/client/ui"
)

// Upload prompts for the upload form and sends it. On success the teacher
// view is refreshed.
func (a *App) Upload(ctx context.Context) error {
	submit := a.submits[submitUpload]
	if submit.Disabled() {
		return ui.ErrBusy
	}

	req, err := a.readUploadForm()
	if err != nil {
		a.println("Error:", err)
		return err
	}

	err = submit.Submit(ctx, func(ctx context.Context) error {
		a.println(submit.Label())
		_, err := a.resources.Upload(ctx, req)
		return err
	})
	if errors.Is(err, ui.ErrBusy) {
		return nil
	}
	if err != nil {
		a.reportFailure(ctx, "Upload", err)
		return err
	}

	a.notifier.Success(msgUploadOK)
	return a.Mine(ctx)
}

func (a *App) readUploadForm() (models.UploadRequest, error) {
	var req models.UploadRequest

	fileTypes := make([]string, 0, len(models.FileTypes))
	for _, ft := range models.FileTypes {
		fileTypes = append(fileTypes, string(ft))
	}

	for _, field := range []struct {
		prompt string
		dst    *string
	}{
		{"Title", &req.Title},
		{"Description (optional)", &req.Description},
	} {
		v, err := getSimpleText(a.reader, field.prompt, a.out)
		if err != nil {
			return req, err
		}
		*field.dst = v
	}

	ft, err := getChoice(a.reader, "File type", fileTypes, "", a.out)
	if err != nil {
		return req, err
	}
	req.FileType = models.FileType(ft)

	for _, field := range []struct {
		prompt string
		dst    *string
	}{
		{"Subject", &req.Subject},
		{"Grade level", &req.GradeLevel},
		{"Country", &req.Country},
		{"Language", &req.Language},
		{"Tags (optional, comma separated)", &req.Tags},
		{"File path (optional)", &req.FilePath},
	} {
		v, err := getSimpleText(a.reader, field.prompt, a.out)
		if err != nil {
			return req, err
		}
		*field.dst = v
	}

	if req.FilePath != "" {
		st, err := os.Stat(req.FilePath)
		if err != nil {
			return req, err
		}
		if st.IsDir() {
			return req, errors.New(req.FilePath + " is a directory")
		}
	}
	return req, nil
}

// Delete asks for confirmation and deletes one of the user's resources.
// Declining sends nothing.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.parseID(args, "delete <id>")
	if err != nil {
		return err
	}

	ok, err := confirm(a.reader, msgConfirmDel, a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.resources.Delete(ctx, id); err != nil {
		a.reportFailure(ctx, "Delete", err)
		return err
	}

	a.notifier.Success(msgDeleteOK)
	return a.Mine(ctx)
}

// Approve marks a resource as approved (admins only).
func (a *App) Approve(ctx context.Context, args []string) error {
	id, err := a.parseID(args, "approve <id>")
	if err != nil {
		return err
	}

	r, err := a.resources.Approve(ctx, id)
	if err != nil {
		a.reportFailure(ctx, "Approve", err)
		return err
	}

	a.notifier.Success(msgApproveOK)
	return a.renderer.Detail(a.out, *r)
}
