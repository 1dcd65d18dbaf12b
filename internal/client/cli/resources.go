package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/edushare/internal/client/models"
	"github.com/dmitrijs2005/edushare/internal/client/render"
	"github.com/dmitrijs2005/edushare/internal/client/services"
	"github.com/dmitrijs2005/edushare/internal/client/view"
	"github.com/dmitrijs2005/edushare/internal/filex"
)

var errUsage = errors.New("usage")

// showView refreshes the list of variant v with fetch and renders it. A
// refresh overtaken by a newer one renders nothing.
func (a *App) showView(ctx context.Context, v render.Variant, fetch view.Fetcher) error {
	a.current = v

	snap, err := a.views[v].Refresh(ctx, fetch)
	if errors.Is(err, view.ErrStale) {
		a.log.Debug(ctx, "stale refresh dropped", "view", v.String())
		return nil
	}
	if err != nil {
		a.reportFailure(ctx, "Loading resources", err)
		return err
	}
	return snap.Render(a.out, a.renderer)
}

// Home renders the featured catalog.
func (a *App) Home(ctx context.Context) error {
	return a.showView(ctx, render.Catalog, a.resources.Catalog)
}

// browse renders the student view for f.
func (a *App) browse(ctx context.Context, f models.Filters) error {
	return a.showView(ctx, render.Student, func(ctx context.Context) ([]models.Resource, error) {
		return a.resources.List(ctx, f)
	})
}

// Search prompts for the student search form and renders the matches.
// Every field is optional; the free-text query replaces the subject.
func (a *App) Search(ctx context.Context) error {
	var q services.SearchQuery
	for _, field := range []struct {
		prompt string
		dst    *string
	}{
		{"Search (optional)", &q.Query},
		{"Subject (optional)", &q.Subject},
		{"Grade level (optional)", &q.GradeLevel},
		{"Country (optional)", &q.Country},
	} {
		v, err := getSimpleText(a.reader, field.prompt, a.out)
		if err != nil {
			return err
		}
		*field.dst = v
	}

	return a.showView(ctx, render.Student, func(ctx context.Context) ([]models.Resource, error) {
		return a.resources.Search(ctx, q)
	})
}

// Mine renders the session user's own uploads.
func (a *App) Mine(ctx context.Context) error {
	return a.showView(ctx, render.Teacher, a.resources.Mine)
}

// Show renders the details of one resource.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.parseID(args, "show <id>")
	if err != nil {
		return err
	}

	r, err := a.resources.Get(ctx, id)
	if err != nil {
		a.reportFailure(ctx, "Loading resource", err)
		return err
	}
	return a.renderer.Detail(a.out, *r)
}

// Export writes the current view's snapshot to a standalone HTML file.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: export <file.html>")
		return errUsage
	}
	path := args[0]

	snap := a.views[a.current].Snapshot()

	var buf bytes.Buffer
	if err := snap.Render(&buf, render.HTMLRenderer{}); err != nil {
		a.reportFailure(ctx, "Export", err)
		return err
	}
	if err := filex.EnsureParentDir(path); err != nil {
		a.reportFailure(ctx, "Export", err)
		return err
	}
	if err := filex.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		a.reportFailure(ctx, "Export", err)
		return err
	}

	a.notifier.Success(fmt.Sprintf("Exported %d resources to %s", snap.Len(), path))
	return nil
}

func (a *App) parseID(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		a.println("Usage:", usage)
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		a.println("Invalid resource id:", args[0])
		return 0, errUsage
	}
	return id, nil
}
