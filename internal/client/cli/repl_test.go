package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/edushare/internal/client/models"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	role  models.Role
	calls []string
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.role != "" }
func (f *fakeExec) hasRole(_ context.Context, r models.Role) bool {
	return f.role != "" && f.role == r
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return nil
}

func (f *fakeExec) Register(context.Context) error { return f.record("register") }
func (f *fakeExec) Login(context.Context) error {
	f.role = models.RoleTeacher
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.role = ""
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(context.Context) error { return f.record("whoami") }
func (f *fakeExec) Home(context.Context) error { return f.record("home") }
func (f *fakeExec) Search(context.Context) error { return f.record("search") }
func (f *fakeExec) Show(_ context.Context, a []string) error { return f.record("show", a...) }
func (f *fakeExec) Export(_ context.Context, a []string) error { return f.record("export", a...) }
func (f *fakeExec) Mine(context.Context) error { return f.record("mine") }
func (f *fakeExec) Upload(context.Context) error { return f.record("upload") }
func (f *fakeExec) Delete(_ context.Context, a []string) error { return f.record("delete", a...) }
func (f *fakeExec) Approve(_ context.Context, a []string) error { return f.record("approve", a...) }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	lines := &[]string{}
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			parts = append(parts, strings.TrimSpace(strings.ReplaceAll(toString(v), "\n", " ")))
		}
		*lines = append(*lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return lines
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func input(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestRunREPL_RoleGating(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, input(
		"upload",
		"mine",
		"delete 3",
		"login",
		"mine",
		"delete 3",
		"approve 3",
		"logout",
		"exit",
	))

	assert.Equal(t, []string{"login", "mine", "delete 3", "logout"}, exec.calls)
	assert.Contains(t, *out, `Command "upload" is only available to teacher accounts.`)
	assert.Contains(t, *out, `Command "approve" is only available to admin accounts.`)
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_Dispatch(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, input(
		"",
		"catalog",
		"home",
		"SEARCH",
		"show 12",
		"export out.html",
		"register",
		"whoami",
	))

	assert.Equal(t, []string{"home", "home", "search", "show 12", "export out.html", "register", "whoami"}, exec.calls)
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("catalog")))
	assert.Equal(t, []string{"home"}, exec.calls)
}

func TestRunREPL_UnknownAndCancelled(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, input("foobar", "quit"))
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Empty(t, exec.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runREPL(ctx, exec, func() string { return "s" }, input("catalog"))
	assert.Empty(t, exec.calls)
}

func TestHelpText(t *testing.T) {
	ctx := context.Background()

	loggedOut := helpText(ctx, &fakeExec{})
	assert.Contains(t, loggedOut, "login")
	assert.NotContains(t, loggedOut, "upload")
	assert.NotContains(t, loggedOut, "logout")

	st := helpText(ctx, &fakeExec{role: models.RoleStudent})
	assert.Contains(t, st, "logout")
	assert.NotContains(t, st, "upload")
	assert.NotContains(t, st, "login,")

	te := helpText(ctx, &fakeExec{role: models.RoleTeacher})
	assert.Contains(t, te, "mine, upload, delete <id>")
	assert.NotContains(t, te, "approve")

	ad := helpText(ctx, &fakeExec{role: models.RoleAdmin})
	assert.Contains(t, ad, "approve <id>")
	assert.NotContains(t, ad, "upload")
}
