package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/edushare/internal/client/config"
	"github.com/dmitrijs2005/edushare/internal/client/models"
	"github.com/dmitrijs2005/edushare/internal/client/services"
	"github.com/dmitrijs2005/edushare/internal/logging"
)

// ------------ fakes ------------

type fakeAuth struct {
	mu sync.Mutex

	sess *models.Session

	loginSess *models.Session
	loginErr  error
	loginUser string
	loginPass string
	logins    int
	// loginHook runs inside Login, e.g. to submit again while in flight.
	loginHook func()

	regReq  *models.RegisterRequest
	regErr  error
	logouts int
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) Login(_ context.Context, username, password string) (*models.Session, error) {
	f.mu.Lock()
	f.logins++
	f.loginUser, f.loginPass = username, password
	hook := f.loginHook
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.mu.Lock()
	f.sess = f.loginSess
	f.mu.Unlock()
	return f.loginSess, nil
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) (*models.User, error) {
	f.regReq = &req
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &models.User{ID: 99, Username: req.Username, Role: req.Role}, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts++
	f.sess = nil
	return nil
}

func (f *fakeAuth) Current(context.Context) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sess, nil
}

type fakeRes struct {
	catalog []models.Resource
	list    []models.Resource
	mine    []models.Resource
	res     *models.Resource
	err     error

	catalogCalls int
	listFilters  []models.Filters
	searches     []services.SearchQuery
	mineCalls    int
	gets         []int64
	uploads      []models.UploadRequest
	deletes      []int64
	approves     []int64
}

var _ services.ResourceService = (*fakeRes)(nil)

func (f *fakeRes) Catalog(context.Context) ([]models.Resource, error) {
	f.catalogCalls++
	return f.catalog, nil
}

func (f *fakeRes) Search(_ context.Context, q services.SearchQuery) ([]models.Resource, error) {
	f.searches = append(f.searches, q)
	return f.list, f.err
}

func (f *fakeRes) List(_ context.Context, filters models.Filters) ([]models.Resource, error) {
	f.listFilters = append(f.listFilters, filters)
	return f.list, nil
}

func (f *fakeRes) Mine(context.Context) ([]models.Resource, error) {
	f.mineCalls++
	return f.mine, nil
}

func (f *fakeRes) Get(_ context.Context, id int64) (*models.Resource, error) {
	f.gets = append(f.gets, id)
	return f.res, f.err
}

func (f *fakeRes) Upload(_ context.Context, req models.UploadRequest) (*models.Resource, error) {
	f.uploads = append(f.uploads, req)
	return f.res, f.err
}

func (f *fakeRes) Delete(_ context.Context, id int64) error {
	f.deletes = append(f.deletes, id)
	return f.err
}

func (f *fakeRes) Approve(_ context.Context, id int64) (*models.Resource, error) {
	f.approves = append(f.approves, id)
	return f.res, f.err
}

// ------------ helpers ------------

func teacher() *models.Session {
	return &models.Session{Token: "t", User: models.User{ID: 7, Username: "tina", Role: models.RoleTeacher}}
}

func student() *models.Session {
	return &models.Session{Token: "s", User: models.User{ID: 3, Username: "sam", Role: models.RoleStudent}}
}

func testConfig() *config.Config {
	var c config.Config
	c.LoadDefaults()
	c.NotificationTTL = 0
	return &c
}

func newTestApp(auth *fakeAuth, res *fakeRes) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	a := newApp(testConfig(), auth, res, logging.Nop(), bufio.NewReader(strings.NewReader("")), &out)
	return a, &out
}

// stubText answers getSimpleText prompts from answers, in order.
func stubText(t *testing.T, answers ...string) *[]string {
	t.Helper()
	prompts := &[]string{}
	orig := getSimpleText
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		*prompts = append(*prompts, prompt)
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
	return prompts
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func stubChoice(t *testing.T, answer string) {
	t.Helper()
	orig := getChoice
	getChoice = func(_ *bufio.Reader, _ string, options []string, _ string, _ io.Writer) (string, error) {
		for _, o := range options {
			if o == answer {
				return answer, nil
			}
		}
		return "", ErrInvalidChoice
	}
	t.Cleanup(func() { getChoice = orig })
}

func stubConfirm(t *testing.T, answer bool) *int {
	t.Helper()
	asked := new(int)
	orig := confirm
	confirm = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		*asked++
		return answer, nil
	}
	t.Cleanup(func() { confirm = orig })
	return asked
}

// stubWait records requested delays instead of sleeping.
func stubWait(t *testing.T, err error) *[]time.Duration {
	t.Helper()
	delays := &[]time.Duration{}
	orig := wait
	wait = func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return err
	}
	t.Cleanup(func() { wait = orig })
	return delays
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

var errBoom = errors.New("boom")
