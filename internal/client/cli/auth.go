package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/ctibook/internal/client/api"
	"github.com/dmitrijs2005/ctibook/internal/client/validate"
	"github.com/dmitrijs2005/ctibook/internal/models"
)

// getSimpleText and getPassword are indirections for interactive input,
// swapped out in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. A 401 is presented as
// a wrong-credentials message and the session stays anonymous; the user
// stays in the shell to try again.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	creds := models.Credentials{Username: username, Password: password}
	if errs := validate.Credentials(creds); errs != nil {
		fmt.Fprintln(a.out, errorLine(errs.Error()))
		return errs
	}

	if err := a.session.Login(ctx, creds); err != nil {
		if api.IsUnauthorized(err) {
			fmt.Fprintln(a.out, errorLine("Invalid username or password"))
			return err
		}
		return a.fail(err)
	}

	fmt.Fprintln(a.out, okLine("Logged in as "+a.session.User().Username))
	return nil
}

// Register collects a new-account form and creates the account. It does
// not log the new user in; a separate 'login' is required afterwards.
// Validation failures keep the entered values and re-offer the form.
func (a *App) Register(ctx context.Context) error {
	reg, ok, err := a.registrationForm(a.reader, a.out)
	if err != nil || !ok {
		return err
	}

	user, err := a.session.Register(ctx, reg)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, okLine(fmt.Sprintf("Account %q created. Use 'login' to sign in.", user.Username)))
	return nil
}

// registrationForm loops until the form validates or the user cancels.
func (a *App) registrationForm(r *bufio.Reader, w io.Writer) (models.Registration, bool, error) {
	var reg models.Registration
	for {
		var err error
		if reg.Username, err = GetField(r, "Username", reg.Username, w); err != nil {
			return reg, false, err
		}
		if reg.Email, err = GetField(r, "Email", reg.Email, w); err != nil {
			return reg, false, err
		}
		if reg.Username == cancelWord || reg.Email == cancelWord {
			return reg, false, nil
		}
		if reg.Password, err = getPassword("Password", w); err != nil {
			return reg, false, err
		}

		errs := validate.Registration(reg)
		if errs == nil {
			return reg, true, nil
		}
		printFieldErrors(w, errs)
		fmt.Fprintln(w, mutedStyle.Render("Correct the fields above (Enter keeps the shown value, '"+cancelWord+"' discards the form)."))
	}
}

// Logout clears the session and the stored token. Always succeeds.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	fmt.Fprintln(a.out, okLine("Logged out."))
	return nil
}

// WhoAmI prints the current user.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", u.Username, u.Email)
	return nil
}
