package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// promptNewCredentials asks for a username and a password typed twice.
// Password bytes are wiped before returning.
func (a *App) promptNewCredentials() (string, string, error) {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return "", "", err
	}

	password, err := getPassword("Choose a password", os.Stdout)
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		return "", "", errors.New("passwords do not match")
	}
	return username, string(password), nil
}

// Register prompts for new credentials and creates an account. The new user
// still has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	username, password, err := a.promptNewCredentials()
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	user, err := a.users.Register(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			fmt.Println("Username already exists. Please choose another one.")
			return err
		}
		fmt.Println("Registration failed.")
		return err
	}

	fmt.Printf("Account created successfully! You can now log in as %s\n", user.Username)
	return nil
}

// Login prompts for credentials and authenticates. On success the session is
// reset so the chat starts on a clean slate.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.users.Authenticate(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			fmt.Println("Invalid username or password")
			return err
		}
		fmt.Println("Login failed.")
		return err
	}

	a.userID = user.ID
	a.username = user.Username
	a.resetSession()
	fmt.Printf("Welcome back, %s!\n", user.Username)
	return nil
}

// Logout drops the authenticated identity and the current session.
func (a *App) Logout(ctx context.Context) {
	a.userID = ""
	a.username = ""
	a.resetSession()
	fmt.Println("Logged out.")
}
