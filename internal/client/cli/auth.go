package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/blogd-io/blogd/internal/client/api"
	"github.com/blogd-io/blogd/internal/cryptox"
)

func (a *App) Register(ctx context.Context) error {

	req := api.SignUpRequest{}

	var err error
	if req.FirstName, err = GetSimpleText(a.reader, "Enter first name", os.Stdout); err != nil {
		return err
	}
	if req.LastName, err = GetSimpleText(a.reader, "Enter last name", os.Stdout); err != nil {
		return err
	}
	if req.Email, err = GetSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if req.UserName, err = GetSimpleText(a.reader, "Enter user name", os.Stdout); err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	req.Password = string(password)
	cryptox.WipeByteArray(password)

	user, accessToken, err := a.api.SignUp(ctx, req)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.user = user
	a.accessToken = accessToken
	a.refreshToken = ""

	fmt.Printf("Account %s created. Use 'login' to start a session.\n", user.UserName)
	return nil
}

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	plaintext := string(password)
	cryptox.WipeByteArray(password)

	user, pair, err := a.api.Login(ctx, email, plaintext)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.user = user
	a.accessToken = pair.AccessToken
	a.refreshToken = pair.RefreshToken

	fmt.Printf("Logged in as %s\n", user.UserName)
	return nil
}

// Refresh rotates the stored refresh token and replaces both tokens with the
// freshly issued pair.
func (a *App) Refresh(ctx context.Context) error {
	if a.refreshToken == "" {
		fmt.Println("Not logged in")
		return nil
	}

	pair, err := a.api.Refresh(ctx, a.refreshToken)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.accessToken = pair.AccessToken
	a.refreshToken = pair.RefreshToken

	fmt.Println("Session refreshed")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}

	if err := a.api.Logout(ctx, a.accessToken, a.refreshToken); err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.user = nil
	a.accessToken = ""
	a.refreshToken = ""

	fmt.Println("Logged out")
	return nil
}
