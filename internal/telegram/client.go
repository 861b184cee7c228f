package telegram

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gotd/td/session"
	tgclient "github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
)

// Credentials identifies the MTProto application and the account to sign
// in as.
type Credentials struct {
	AppID   int
	AppHash string
	Phone   string
}

// NewClient builds an MTProto client persisting its authorization in store.
// The update subsystem stays off; every call this tool makes is a plain RPC.
func NewClient(creds Credentials, store session.Storage) *tgclient.Client {
	return tgclient.NewClient(creds.AppID, creds.AppHash, tgclient.Options{
		SessionStorage: store,
		NoUpdates:      true,
	})
}

// SignIn runs the interactive login flow unless the stored session is
// already authorized. The verification code and any two-step password are
// read from the terminal.
func SignIn(ctx context.Context, client *tgclient.Client, phone string) error {
	flow := auth.NewFlow(termAuth{phone: phone}, auth.SendCodeOptions{})
	if err := client.Auth().IfNecessary(ctx, flow); err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	return nil
}

// termAuth supplies login credentials from the controlling terminal.
// Prompts go to stderr so stdout stays reserved for the run summary.
type termAuth struct {
	phone string
}

func (a termAuth) Phone(_ context.Context) (string, error) {
	if a.phone != "" {
		return a.phone, nil
	}
	return prompt("Phone number (international format): ")
}

func (a termAuth) Password(_ context.Context) (string, error) {
	return prompt("Two-step verification password: ")
}

func (a termAuth) Code(_ context.Context, _ *tg.AuthSentCode) (string, error) {
	return prompt("Verification code: ")
}

func (a termAuth) SignUp(_ context.Context) (auth.UserInfo, error) {
	return auth.UserInfo{}, fmt.Errorf("account sign-up is not supported")
}

func (a termAuth) AcceptTermsOfService(_ context.Context, _ tg.HelpTermsOfService) error {
	return nil
}

func prompt(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
