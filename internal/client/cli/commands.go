package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readSecret reads a password and returns it as a string, wiping the raw bytes.
func (a *App) readSecret(prompt string) (string, error) {
	pw, err := getPassword(a.out, prompt)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Register prompts for the account fields and creates the account. It does
// not log in.
func (a *App) Register(ctx context.Context) error {
	var req client.RegisterRequest
	var err error

	if req.UserName, err = getSimpleText(a.reader, "Enter user name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if req.OrganisationName, err = getSimpleText(a.reader, "Enter organisation name (optional)", a.out); err != nil {
		return err
	}
	if req.Password, err = a.readSecret("Enter password: "); err != nil {
		return err
	}
	if req.ConfirmPassword, err = a.readSecret("Confirm password: "); err != nil {
		return err
	}

	u, err := a.api.Register(ctx, req)
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Registered %s. Use 'login' to start a session.\n", u.Email)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := a.readSecret("Enter password: ")
	if err != nil {
		return err
	}

	if err := a.api.Login(ctx, email, password); err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", err)
		return err
	}

	a.userName = email
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Me asks the server who the current session belongs to.
func (a *App) Me(ctx context.Context) error {
	s, err := a.api.Me(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.userName = ""
		}
		fmt.Fprintf(a.out, "Not logged in: %s\n", err)
		return err
	}

	a.userName = s.UserName
	fmt.Fprintf(a.out, "%s: %s\n", s.Message, s.UserName)
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %s\n", err)
		return err
	}

	a.userName = ""
	fmt.Fprintln(a.out, "Logout successful")
	return nil
}
