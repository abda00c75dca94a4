package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/viant/repline/model/interpreter"
	"github.com/viant/scy/cred/secret"
	"golang.org/x/crypto/ssh"
)

// SSH runs the interpreter on a remote host inside an ssh session with a
// requested pty. Credentials are resolved through scy secrets, matching the
// local/remote split used for system command execution elsewhere in the
// viant stack.
type SSH struct {
	host        string // host or host:port
	credentials string // scy secret resource
	mux         sync.Mutex
	client      *ssh.Client
}

// NewSSH creates a remote backend for the supplied host; credentials names
// the scy secret resource holding the SSH identity.
func NewSSH(host, credentials string) *SSH {
	return &SSH{host: host, credentials: credentials}
}

func (b *SSH) connect(ctx context.Context) (*ssh.Client, error) {
	b.mux.Lock()
	defer b.mux.Unlock()
	if b.client != nil {
		return b.client, nil
	}
	credentials := b.credentials
	if credentials == "" {
		credentials = "localhost"
	}
	secrets := secret.New()
	generic, err := secrets.GetCredentials(ctx, credentials)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ssh credentials: %w", err)
	}
	config, err := generic.SSH.Config(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build ssh config: %w", err)
	}
	address := b.host
	if !strings.Contains(address, ":") {
		address += ":22"
	}
	client, err := ssh.Dial("tcp", address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", address, err)
	}
	b.client = client
	return client, nil
}

// Run opens an ssh session, requests a pty sized to the companion pane,
// starts the interpreter and feeds the input followed by one EOT.
func (b *SSH) Run(ctx context.Context, descriptor *interpreter.Descriptor, input string, width int) (string, error) {
	client, err := b.connect(ctx)
	if err != nil {
		return "", err
	}
	session, err := client.NewSession()
	if err != nil {
		return "", err
	}
	defer session.Close()

	columns := width
	if columns <= 0 {
		columns = 80
	}
	modes := ssh.TerminalModes{
		ssh.ECHO:          1,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err = session.RequestPty("xterm", 24, columns, modes); err != nil {
		return "", fmt.Errorf("failed to request pty: %w", err)
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		return "", err
	}
	var captured bytes.Buffer
	session.Stdout = &captured
	session.Stderr = &captured

	command := strings.TrimSpace(descriptor.Env + " " + descriptor.Bin)
	if err = session.Start(command); err != nil {
		return "", err
	}
	if !strings.HasSuffix(input, "\n") {
		input += "\n"
	}
	_, _ = io.WriteString(stdin, input)
	_, _ = io.WriteString(stdin, endOfTransmission)
	_ = stdin.Close()

	if err = session.Wait(); err != nil {
		// interpreters may exit non-zero after EOT; the transcript is
		// still usable
		var exitErr *ssh.ExitError
		if !errors.As(err, &exitErr) {
			return "", err
		}
	}
	return captured.String(), nil
}

// Close drops the cached ssh connection.
func (b *SSH) Close() error {
	b.mux.Lock()
	defer b.mux.Unlock()
	if b.client == nil {
		return nil
	}
	err := b.client.Close()
	b.client = nil
	return err
}
