package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/rescuemap/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login renders the login view: prompts for credentials, validates the
// form fields, and on success adopts the session.
//
// A failed credential check prints one generic notice; whether the email
// is unknown or the password wrong is deliberately not revealed.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		fmt.Println(err.Error())
		return nil
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		fmt.Println(err.Error())
		return nil
	}

	user, err := a.validator.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Println("Invalid email or password.")
			return nil
		}
		a.log.Error(ctx, "login failed", "error", err)
		fmt.Println("Something went wrong, please try again.")
		return nil
	}

	if err := a.sessions.Login(ctx, user); err != nil {
		a.log.Error(ctx, "session persist failed", "error", err)
		fmt.Println("Something went wrong, please try again.")
		return nil
	}

	fmt.Printf("Welcome back, %s!\n", user.Name)
	return nil
}

// Signup renders the registration view. A successful registration logs
// the new user in immediately, like the login view does.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Println("Name is required.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		fmt.Println(err.Error())
		return nil
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		fmt.Println(err.Error())
		return nil
	}

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	if password != confirm {
		fmt.Println(errPasswordMismatch.Error())
		return nil
	}

	user, err := a.validator.Register(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			fmt.Println("An account with this email already exists.")
			return nil
		}
		a.log.Error(ctx, "registration failed", "error", err)
		fmt.Println("Something went wrong, please try again.")
		return nil
	}

	if err := a.sessions.Login(ctx, user); err != nil {
		a.log.Error(ctx, "session persist failed", "error", err)
		fmt.Println("Something went wrong, please try again.")
		return nil
	}

	fmt.Printf("Account created. Welcome, %s!\n", user.Name)
	return nil
}

// Logout clears the persisted session and returns to the public views.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		fmt.Println("Something went wrong, please try again.")
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
