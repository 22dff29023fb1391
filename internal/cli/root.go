package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if a.username != "" {
		s = a.username + " "
	}
	if a.model != "" {
		s = s + a.model
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// firstRunSetup creates the initial account when the user table is empty and
// logs it in right away.
func (a *App) firstRunSetup(ctx context.Context) error {
	n, err := a.users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	fmt.Println("No accounts found. Let's create the first one.")
	username, password, err := a.promptNewCredentials()
	if err != nil {
		return err
	}
	user, err := a.users.Register(ctx, username, password)
	if err != nil {
		return err
	}
	a.userID = user.ID
	a.username = user.Username
	fmt.Printf("Account created. Welcome, %s!\n", user.Username)
	return nil
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the chatbot CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if err := a.firstRunSetup(ctx); err != nil {
		log.Printf("First-run setup failed: %s", err.Error())
	}

	for {
		fmt.Printf("chat %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: model <name>, models, history, summary [all|current], clear, logout, exit")
				fmt.Println("Anything else is sent to the model as a chat message.")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "model":
			if len(args) == 0 {
				fmt.Printf("Current model: %s\n", a.model)
				continue
			}
			a.SwitchModel(args[0])
		case "models":
			a.ListModels()
		case "clear":
			a.ClearChat()
		case "history":
			a.History(ctx)
		case "summary":
			a.Summarize(ctx, args)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			if !a.isLoggedIn() {
				fmt.Println("Please log in first (type 'login' or 'register').")
				continue
			}
			a.Chat(ctx, line)
		}
	}

}
