package cli

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-process stand-in for the session API.
type fakeAPI struct {
	registered map[string]client.RegisterRequest
	session    string
	lastReg    client.RegisterRequest
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{registered: map[string]client.RegisterRequest{}}
}

func (f *fakeAPI) Register(_ context.Context, r client.RegisterRequest) (*client.User, error) {
	f.lastReg = r
	if _, ok := f.registered[r.Email]; ok {
		return nil, &client.APIError{StatusCode: http.StatusBadRequest, Detail: "Email already registered"}
	}
	f.registered[r.Email] = r
	return &client.User{UserName: r.UserName, Email: r.Email, OrganisationName: r.OrganisationName}, nil
}

func (f *fakeAPI) Login(_ context.Context, email, password string) error {
	r, ok := f.registered[email]
	if !ok || r.Password != password {
		return &client.APIError{StatusCode: http.StatusUnauthorized, Detail: "Incorrect username or password"}
	}
	f.session = email
	return nil
}

func (f *fakeAPI) Me(context.Context) (*client.Session, error) {
	if f.session == "" {
		return nil, &client.APIError{StatusCode: http.StatusUnauthorized, Detail: "Not authenticated"}
	}
	return &client.Session{UserName: f.session, Message: "User is logged in"}, nil
}

func (f *fakeAPI) Logout(context.Context) error {
	f.session = ""
	return nil
}

// stubPasswords feeds passwords in order instead of reading the terminal.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) {
		require.NotEmpty(t, pws, "unexpected password prompt")
		pw := pws[0]
		pws = pws[1:]
		return []byte(pw), nil
	}
}

func TestApp_FullSession(t *testing.T) {
	api := newFakeAPI()
	stubPasswords(t, "Abc123!x", "Abc123!x", "Abc123!x")

	input := strings.Join([]string{
		"register",
		"alice",
		"alice@example.com",
		"Acme",
		"login",
		"alice@example.com",
		"me",
		"logout",
		"me",
		"exit",
	}, "\n") + "\n"

	var out bytes.Buffer
	app := newApp(api, strings.NewReader(input), &out)
	app.Run(context.Background())

	assert.Equal(t, client.RegisterRequest{
		UserName:         "alice",
		Email:            "alice@example.com",
		OrganisationName: "Acme",
		Password:         "Abc123!x",
		ConfirmPassword:  "Abc123!x",
	}, api.lastReg)

	s := out.String()
	assert.Contains(t, s, "Registered alice@example.com")
	assert.Contains(t, s, "Login successful")
	assert.Contains(t, s, "gophauth (alice@example.com)> ")
	assert.Contains(t, s, "User is logged in: alice@example.com")
	assert.Contains(t, s, "Logout successful")
	assert.Contains(t, s, "Not logged in: Not authenticated")
	assert.False(t, app.isLoggedIn())
}

func TestApp_LoginFailureKeepsAnonymous(t *testing.T) {
	api := newFakeAPI()
	stubPasswords(t, "Wrong123!")

	var out bytes.Buffer
	app := newApp(api, strings.NewReader("nobody@example.com\n"), &out)

	err := app.Login(context.Background())
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Login unsuccessful: Incorrect username or password")
}

func TestApp_RegisterConflict(t *testing.T) {
	api := newFakeAPI()
	api.registered["alice@example.com"] = client.RegisterRequest{}
	stubPasswords(t, "Abc123!x", "Abc123!x")

	var out bytes.Buffer
	app := newApp(api, strings.NewReader("alice\nalice@example.com\n\n"), &out)

	err := app.Register(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "Registration failed: Email already registered")
	assert.False(t, app.isLoggedIn())
}
