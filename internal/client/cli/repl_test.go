package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                     { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error   { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error      { return s.record("login") }
func (s *stubExec) Refresh(ctx context.Context) error    { return s.record("refresh") }
func (s *stubExec) Logout(ctx context.Context) error     { return s.record("logout") }
func (s *stubExec) Posts(ctx context.Context) error      { return s.record("posts") }
func (s *stubExec) AddPost(ctx context.Context) error    { return s.record("addpost") }
func (s *stubExec) Comments(ctx context.Context) error   { return s.record("comments") }
func (s *stubExec) AddComment(ctx context.Context) error { return s.record("addcomment") }

func runWithInput(t *testing.T, a execIface, input string) []string {
	t.Helper()

	var printed []string
	old := printlnFn
	printlnFn = func(args ...any) (int, error) {
		line := ""
		for _, arg := range args {
			if line != "" {
				line += " "
			}
			line += toString(arg)
		}
		printed = append(printed, line)
		return 0, nil
	}
	defer func() { printlnFn = old }()

	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), a, func() string { return "" }, scanner)
	return printed
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	s := &stubExec{loggedIn: true}

	runWithInput(t, s, "posts\naddpost\nrefresh\nlogout\nexit\n")

	assert.Equal(t, []string{"posts", "addpost", "refresh", "logout"}, s.calls)
}

func TestRunREPL_ShortAliases(t *testing.T) {
	s := &stubExec{}

	runWithInput(t, s, "p\nquit\n")

	assert.Equal(t, []string{"posts"}, s.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	s := &stubExec{}

	printed := runWithInput(t, s, "frobnicate\nexit\n")

	assert.Empty(t, s.calls)

	found := false
	for _, line := range printed {
		if strings.Contains(line, "Unknown command") {
			found = true
		}
	}
	assert.True(t, found, "expected an unknown-command message")
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	s := &stubExec{}

	runWithInput(t, s, "")

	assert.Empty(t, s.calls)
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	anon := &stubExec{}
	printedAnon := runWithInput(t, anon, "help\nexit\n")

	authed := &stubExec{loggedIn: true}
	printedAuthed := runWithInput(t, authed, "help\nexit\n")

	assert.NotEqual(t, printedAnon, printedAuthed)
}
