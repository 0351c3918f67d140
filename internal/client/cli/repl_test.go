package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(format string, args ...any) error {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) SignUp(context.Context) error { return f.record("signup") }
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(context.Context) error { return f.record("whoami") }
func (f *fakeExec) ListUsers(_ context.Context, page, size int) error {
	return f.record("users %d %d", page, size)
}
func (f *fakeExec) ShowUser(_ context.Context, key string) error { return f.record("user %s", key) }
func (f *fakeExec) AddUser(context.Context) error               { return f.record("adduser") }
func (f *fakeExec) EditUser(_ context.Context, key string) error {
	return f.record("edituser %s", key)
}
func (f *fakeExec) DeleteUser(_ context.Context, key string) error {
	return f.record("deluser %s", key)
}
func (f *fakeExec) ListVehicles(_ context.Context, page, size int) error {
	return f.record("vehicles %d %d", page, size)
}
func (f *fakeExec) ShowVehicle(_ context.Context, key string) error {
	return f.record("vehicle %s", key)
}
func (f *fakeExec) AddVehicle(context.Context) error { return f.record("addvehicle") }
func (f *fakeExec) EditVehicle(_ context.Context, key string) error {
	return f.record("editvehicle %s", key)
}
func (f *fakeExec) DeleteVehicle(_ context.Context, key string) error {
	return f.record("delvehicle %s", key)
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"whoami",
		"users",
		"users 2",
		"users 1 5",
		"user u-1",
		"adduser",
		"edituser u-1",
		"deluser u-1",
		"vehicles 0 20",
		"vehicle v-9",
		"addvehicle",
		"editvehicle v-9",
		"delvehicle v-9",
		"",
		"signup",
		"logout",
		"exit",
		"users",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login", "whoami",
		"users 0 0", "users 2 0", "users 1 5",
		"user u-1", "adduser", "edituser u-1", "deluser u-1",
		"vehicles 0 20", "vehicle v-9", "addvehicle", "editvehicle v-9", "delvehicle v-9",
		"signup", "logout",
	}, exec.calls)
}

func TestRunREPL_UsageErrorsDoNotDispatch(t *testing.T) {
	out := capturePrintln(t)

	input := "user\ndelvehicle\nusers x\nvehicles 1 2 3\nusers -1\nfoobar\nquit\n"
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Usage: user <key>")
	assert.Contains(t, *out, "Usage: delvehicle <key>")
	assert.Contains(t, *out, "Usage: users [page] [size]")
	assert.Contains(t, *out, "Usage: vehicles [page] [size]")
	assert.Contains(t, *out, "Unknown command:foobar")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(anonymous)" },
		bufio.NewReader(strings.NewReader("help\nlogin\nhelp\n")))

	assert.Contains(t, *out, "vh> (anonymous) > ")
	assert.Contains(t, *out, helpAnonymous)
	assert.Contains(t, *out, helpLoggedIn)
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("whoami")))

	assert.Equal(t, []string{"whoami"}, exec.calls)
}

func TestParsePaging(t *testing.T) {
	tests := []struct {
		args       []string
		page, size int
		wantErr    bool
	}{
		{args: nil},
		{args: []string{"3"}, page: 3},
		{args: []string{"3", "25"}, page: 3, size: 25},
		{args: []string{"a"}, wantErr: true},
		{args: []string{"1", "-5"}, wantErr: true},
		{args: []string{"1", "2", "3"}, wantErr: true},
	}
	for _, tt := range tests {
		page, size, err := parsePaging(tt.args)
		if tt.wantErr {
			assert.Error(t, err, tt.args)
			continue
		}
		assert.NoError(t, err, tt.args)
		assert.Equal(t, tt.page, page, tt.args)
		assert.Equal(t, tt.size, size, tt.args)
	}
}
