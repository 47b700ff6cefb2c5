package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.api.Register(ctx, name, email, password)
	if err != nil {
		printlnFn(fmt.Sprintf("Registration failed: %v", err))
		return err
	}

	a.startSession(res.User.Name, res.Token)
	printlnFn(fmt.Sprintf("Registered and logged in as %s", res.User.Email))
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.api.Login(ctx, email, password)
	if err != nil {
		printlnFn(fmt.Sprintf("Login failed: %v", err))
		return err
	}

	a.startSession(res.User.Name, res.Token)
	printlnFn(fmt.Sprintf("Logged in as %s", res.User.Email))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.endSession()
	printlnFn("Logged out, back to the local store")
	return nil
}

func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.api.ForgotPassword(ctx, email)
	if err != nil {
		printlnFn(fmt.Sprintf("Request failed: %v", err))
		return err
	}

	printlnFn(msg)
	return nil
}
