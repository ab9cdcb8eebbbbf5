// Command userctl is a small administrative client for the userhub REST API.
//
// Usage:
//
//	userctl [-s http://host:port] [-t token] <command> [command flags]
//
// Commands:
//
//	register  -email ... -nickname ... -password ... [-name ...]
//	login     -email ... -password ...
//	list      [-page N] [-size N]
//	get       <user-id>
//	delete    <user-id>
//	verify    <user-id>
//
// The server address and bearer token can also be provided via the
// USERHUB_SERVER and USERHUB_TOKEN environment variables.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/mkarev/userhub/internal/adapter"
	"github.com/mkarev/userhub/models"
)

func main() {
	serverURL := flag.String("s", envOr("USERHUB_SERVER", "http://localhost:8080"), "userhub server base URL")
	token := flag.String("t", os.Getenv("USERHUB_TOKEN"), "bearer token for authenticated commands")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	if flag.NArg() < 1 {
		fail("no command given; expected one of: register, login, list, get, delete, verify")
	}

	client := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *serverURL,
		Token:   *token,
		Timeout: *timeout,
	})

	ctx := context.Background()
	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "register":
		runRegister(ctx, client, args)
	case "login":
		runLogin(ctx, client, args)
	case "list":
		runList(ctx, client, args)
	case "get":
		runGet(ctx, client, args)
	case "delete":
		runDelete(ctx, client, args)
	case "verify":
		runVerify(ctx, client, args)
	default:
		fail(fmt.Sprintf("unknown command %q", command))
	}
}

func runRegister(ctx context.Context, client adapter.ServerAdapter, args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	nickname := fs.String("nickname", "", "account nickname")
	password := fs.String("password", "", "account password")
	fullName := fs.String("name", "", "full name (optional)")
	fs.Parse(args)

	user, err := client.Register(ctx, models.CreateUserRequest{
		Email:    *email,
		Nickname: *nickname,
		Password: *password,
		FullName: *fullName,
	})
	if err != nil {
		fail(err.Error())
	}

	printJSON(user)
}

func runLogin(ctx context.Context, client adapter.ServerAdapter, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	token, err := client.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		fail(err.Error())
	}

	printJSON(token)
}

func runList(ctx context.Context, client adapter.ServerAdapter, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", 10, "page size")
	fs.Parse(args)

	list, err := client.ListUsers(ctx, models.UserListRequest{Page: *page, Size: *size})
	if err != nil {
		fail(err.Error())
	}

	printJSON(list)
}

func runGet(ctx context.Context, client adapter.ServerAdapter, args []string) {
	user, err := client.GetUser(ctx, parseIDArg(args, "get"))
	if err != nil {
		fail(err.Error())
	}

	printJSON(user)
}

func runDelete(ctx context.Context, client adapter.ServerAdapter, args []string) {
	id := parseIDArg(args, "delete")
	if err := client.DeleteUser(ctx, id); err != nil {
		fail(err.Error())
	}

	fmt.Printf("user %s deleted\n", id)
}

func runVerify(ctx context.Context, client adapter.ServerAdapter, args []string) {
	id := parseIDArg(args, "verify")
	if err := client.VerifyUser(ctx, id); err != nil {
		fail(err.Error())
	}

	fmt.Printf("user %s verified\n", id)
}

func parseIDArg(args []string, command string) uuid.UUID {
	if len(args) < 1 {
		fail(fmt.Sprintf("usage: userctl %s <user-id>", command))
	}

	id, err := uuid.Parse(args[0])
	if err != nil {
		fail(fmt.Sprintf("invalid user id %q: %v", args[0], err))
	}

	return id
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fail(err.Error())
	}

	fmt.Println(string(out))
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
