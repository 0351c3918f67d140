package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vehiclehub/internal/client/api"
	"github.com/dmitrijs2005/vehiclehub/internal/client/models"
	"github.com/dmitrijs2005/vehiclehub/internal/client/session"
)

// Login prompts for a login id and password and signs in.
//
// On success the session is persisted and a greeting is printed. A failed
// sign-in prints the server's message and returns the error; the session
// stays anonymous.
func (a *App) Login(ctx context.Context) error {
	loginID, err := getSimpleText(a.reader, "Enter login id", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	resp, err := a.session.Login(ctx, loginID, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", api.Message(err))
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", displayName(resp.Profile()))
	return nil
}

// SignUp prompts for a login id, password and any extra registration fields
// (name=value lines) and submits them. The session is not changed; the user
// logs in afterwards.
func (a *App) SignUp(ctx context.Context) error {
	loginID, err := getSimpleText(a.reader, "Enter login id", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	lines, err := getFields(a.reader, a.out)
	if err != nil {
		return err
	}
	fields, err := models.FieldsFromLines(lines)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	payload := make(map[string]string, len(fields)+2)
	for k, v := range fields {
		payload[k] = v
	}
	payload["loginId"] = loginID
	payload["password"] = password

	if _, err := a.session.SignUp(ctx, payload); err != nil {
		fmt.Fprintf(a.out, "Sign-up failed: %s\n", api.Message(err))
		return err
	}

	fmt.Fprintln(a.out, "Success! You can now log in.")
	return nil
}

// Logout forgets the session in memory and on disk.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the signed-in identity and, when the token is a JWT, its
// unverified claims.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}

	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "Login: %s\nName: %s\nType: %s\n", u.LoginID, u.Name, u.UserType)
	} else {
		fmt.Fprintln(a.out, "Signed in (profile unavailable)")
	}

	claims, err := a.session.Claims()
	if err != nil {
		if !errors.Is(err, session.ErrNotJWT) {
			return err
		}
		return nil
	}
	if claims.Subject != "" {
		fmt.Fprintf(a.out, "Subject: %s\n", claims.Subject)
	}
	if claims.Issuer != "" {
		fmt.Fprintf(a.out, "Issuer: %s\n", claims.Issuer)
	}
	if !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "Expires: %s\n", claims.ExpiresAt.Local().Format(time.RFC3339))
	}
	return nil
}
